package listener

import (
	"context"

	"github.com/fatflowers/marketlink/internal/platform/marketpay"
)

// handlePayout alerts the operator when a seller payout failed. Every other
// payout status needs no reaction.
func (l *Listener) handlePayout(ctx context.Context, n *marketpay.PayoutNotification) error {
	if n.Content.Status.StatusCode != marketpay.PayoutStatusFailed {
		return nil
	}

	shop, err := l.getShop(ctx, n.Content.AccountHolderCode)
	if err != nil {
		return err
	}
	return l.mail.SendOperatorPayoutFailure(ctx, shop, n.Content.Status.Message)
}
