package listener

import (
	"testing"

	"github.com/fatflowers/marketlink/internal/platform/marketpay"
	"github.com/stretchr/testify/require"
)

func TestResolveTemplateAndSubject_AwaitingIdentity(t *testing.T) {
	ts, err := resolveTemplateAndSubject(marketpay.CheckTypeIdentityVerification, marketpay.CheckStatusAwaitingData)
	require.NoError(t, err)
	require.Equal(t, "accountHolderAwaitingIdentityEmail", ts.Template)
	require.Equal(t, "email.account.verification.awaiting.id.title", ts.Subject)
}

func TestResolveTemplateAndSubject_InvalidCompany(t *testing.T) {
	ts, err := resolveTemplateAndSubject(marketpay.CheckTypeCompanyVerification, marketpay.CheckStatusInvalidData)
	require.NoError(t, err)
	require.Equal(t, "companyInvalidIdData", ts.Template)
	require.Equal(t, "email.company.verification.invalid.id.title", ts.Subject)
}

func TestResolveTemplateAndSubject_UnpopulatedPairsFail(t *testing.T) {
	// Anything outside the six populated pairs must error, never default.
	unpopulated := []struct {
		checkType marketpay.CheckType
		status    marketpay.CheckStatus
	}{
		{marketpay.CheckTypeBankAccountVerification, marketpay.CheckStatusAwaitingData},
		{marketpay.CheckTypeIdentityVerification, marketpay.CheckStatusPassed},
		{marketpay.CheckTypeCompanyVerification, marketpay.CheckStatusRetryLimitReached},
		{marketpay.CheckTypeNonprofitVerification, marketpay.CheckStatusInvalidData},
	}
	for _, pair := range unpopulated {
		_, err := resolveTemplateAndSubject(pair.checkType, pair.status)
		require.Error(t, err, "expected error for %s/%s", pair.checkType, pair.status)
	}
}
