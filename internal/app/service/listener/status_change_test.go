package listener

import (
	"context"
	"testing"

	"github.com/fatflowers/marketlink/internal/platform/marketpay"
	"github.com/fatflowers/marketlink/internal/platform/mirakl"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func statusChangeNotification(holderCode string, oldAllowed, newAllowed *bool) *marketpay.StatusChangeNotification {
	return &marketpay.StatusChangeNotification{
		PspReference: "psp-2",
		Content: marketpay.StatusChangeContent{
			AccountHolderCode: holderCode,
			OldStatus:         marketpay.HolderStatus{PayoutState: marketpay.PayoutState{AllowPayout: oldAllowed}},
			NewStatus:         marketpay.HolderStatus{PayoutState: marketpay.PayoutState{AllowPayout: newAllowed}},
		},
	}
}

func TestHandleStatusChange_BecamePayable(t *testing.T) {
	f := newFixture()
	f.shops.shops["SHOP1"] = mirakl.Shop{ID: "SHOP1"}

	err := f.listener.handleStatusChange(context.Background(),
		statusChangeNotification("SHOP1", lo.ToPtr(false), lo.ToPtr(true)))
	require.NoError(t, err)

	require.Len(t, f.mail.shopEmails, 1)
	require.Equal(t, templateNowPayable, f.mail.shopEmails[0].Template)
	require.Equal(t, []string{"SHOP1"}, f.retry.calls)
}

func TestHandleStatusChange_PayoutRevoked(t *testing.T) {
	f := newFixture()
	f.shops.shops["SHOP1"] = mirakl.Shop{ID: "SHOP1"}

	err := f.listener.handleStatusChange(context.Background(),
		statusChangeNotification("SHOP1", lo.ToPtr(true), lo.ToPtr(false)))
	require.NoError(t, err)

	require.Len(t, f.mail.shopEmails, 1)
	require.Equal(t, templatePayoutRevoked, f.mail.shopEmails[0].Template)
	require.Empty(t, f.retry.calls)
}

func TestHandleStatusChange_UnsetOldTriggersNothing(t *testing.T) {
	f := newFixture()

	err := f.listener.handleStatusChange(context.Background(),
		statusChangeNotification("SHOP1", nil, lo.ToPtr(true)))
	require.NoError(t, err)

	require.Empty(t, f.mail.shopEmails)
	require.Empty(t, f.retry.calls)
	require.Empty(t, f.shops.calls)
}

func TestHandleStatusChange_UnchangedTriggersNothing(t *testing.T) {
	f := newFixture()

	err := f.listener.handleStatusChange(context.Background(),
		statusChangeNotification("SHOP1", lo.ToPtr(true), lo.ToPtr(true)))
	require.NoError(t, err)

	require.Empty(t, f.mail.shopEmails)
	require.Empty(t, f.retry.calls)
}
