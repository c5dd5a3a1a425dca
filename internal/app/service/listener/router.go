package listener

import (
	"context"

	"github.com/fatflowers/marketlink/internal/platform/marketpay"
)

// process dispatches a decoded notification to its per-kind handler. Kinds
// this connector does not recognize are a deliberate no-op so newly
// introduced platform event types never break processing.
func (l *Listener) process(ctx context.Context, notification marketpay.GenericNotification) error {
	switch n := notification.(type) {
	case *marketpay.VerificationNotification:
		return l.handleVerification(ctx, n)
	case *marketpay.StatusChangeNotification:
		return l.handleStatusChange(ctx, n)
	case *marketpay.PayoutNotification:
		return l.handlePayout(ctx, n)
	case *marketpay.TransferFundsNotification:
		return l.handleTransferFunds(ctx, n)
	case *marketpay.CompensateNegativeBalanceNotification:
		return l.handleCompensation(ctx, n)
	default:
		l.log.Infow("ignoring unrecognized notification kind", "psp_reference", notification.Reference())
		return nil
	}
}
