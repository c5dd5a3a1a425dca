package listener

import (
	"context"

	"github.com/fatflowers/marketlink/internal/platform/marketpay"
)

// handleStatusChange reacts to a payout-permission transition. Both flags
// are tri-state: only an explicit false-to-true or true-to-false transition
// triggers anything; an unset side means the platform did not report the
// flag and nothing happens.
func (l *Listener) handleStatusChange(ctx context.Context, n *marketpay.StatusChangeNotification) error {
	oldAllowed := n.Content.OldStatus.PayoutState.AllowPayout
	newAllowed := n.Content.NewStatus.PayoutState.AllowPayout
	holderCode := n.Content.AccountHolderCode

	switch {
	case isFalse(oldAllowed) && isTrue(newAllowed):
		shop, err := l.getShop(ctx, holderCode)
		if err != nil {
			return err
		}
		if err := l.mail.SendShopEmail(ctx, shop, defaultLocale, templateNowPayable, subjectNowPayable); err != nil {
			return err
		}
		// Now that payouts are allowed again, re-submit anything that
		// failed while they were blocked.
		return l.payoutRetry.RetryFailedPayouts(ctx, holderCode)

	case isTrue(oldAllowed) && isFalse(newAllowed):
		shop, err := l.getShop(ctx, holderCode)
		if err != nil {
			return err
		}
		return l.mail.SendShopEmail(ctx, shop, defaultLocale, templatePayoutRevoked, subjectPayoutRevoked)
	}

	return nil
}

func isTrue(b *bool) bool  { return b != nil && *b }
func isFalse(b *bool) bool { return b != nil && !*b }
