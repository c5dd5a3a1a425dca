package listener

import (
	"context"

	"github.com/fatflowers/marketlink/internal/platform/marketpay"
)

// handleTransferFunds alerts the operator when a fund transfer between two
// ledger accounts failed. Source and destination holders are resolved
// independently; either lookup failing aborts the handler.
func (l *Listener) handleTransferFunds(ctx context.Context, n *marketpay.TransferFundsNotification) error {
	if n.Content.Status.StatusCode != marketpay.PayoutStatusFailed {
		return nil
	}

	source, err := l.accounts.GetByAccountCode(ctx, n.Content.SourceAccountCode)
	if err != nil {
		return err
	}
	destination, err := l.accounts.GetByAccountCode(ctx, n.Content.DestinationAccountCode)
	if err != nil {
		return err
	}

	return l.mail.SendOperatorTransferFundsFailure(ctx,
		source.AccountHolderCode,
		destination.AccountHolderCode,
		n.Content.Amount,
		n.Content.TransferCode,
		n.Content.Status.Message,
	)
}
