package listener

import (
	"context"
	"errors"
	"testing"

	"github.com/fatflowers/marketlink/internal/platform/marketpay"
	"github.com/fatflowers/marketlink/internal/platform/mirakl"
	"github.com/stretchr/testify/require"
)

func verificationNotification(checkType marketpay.CheckType, status marketpay.CheckStatus, holderCode, shareholderCode string) *marketpay.VerificationNotification {
	return &marketpay.VerificationNotification{
		PspReference: "psp-1",
		Content: marketpay.VerificationContent{
			AccountHolderCode:  holderCode,
			ShareholderCode:    shareholderCode,
			VerificationType:   checkType,
			VerificationStatus: status,
		},
	}
}

func TestHandleVerification_BankRetryLimitReached(t *testing.T) {
	f := newFixture()
	f.shops.shops["SHOP1"] = mirakl.Shop{ID: "SHOP1", Contact: mirakl.ShopContact{Email: "seller@example.com"}}

	err := f.listener.handleVerification(context.Background(),
		verificationNotification(marketpay.CheckTypeBankAccountVerification, marketpay.CheckStatusRetryLimitReached, "SHOP1", ""))
	require.NoError(t, err)

	require.Len(t, f.mail.shopEmails, 1)
	require.Equal(t, templateBankVerification, f.mail.shopEmails[0].Template)
	require.Equal(t, subjectBankVerification, f.mail.shopEmails[0].Subject)
	// The dedicated bank branch never queries the account holder.
	require.Empty(t, f.accounts.holderCalls)
}

func TestHandleVerification_BusinessShareholderAwaitingData(t *testing.T) {
	f := newFixture()
	f.accounts.byHolderCode["SHOP1"] = &marketpay.AccountHolder{
		AccountHolderCode: "SHOP1",
		LegalEntity:       marketpay.LegalEntityBusiness,
		Shareholders: []marketpay.ShareholderContact{
			{ShareholderCode: "SH-1", Name: marketpay.Name{FirstName: "Ada", LastName: "Laurent"}, Email: "ada@example.com"},
			{ShareholderCode: "SH-2", Name: marketpay.Name{FirstName: "Ben", LastName: "Okafor"}, Email: "ben@example.com"},
		},
	}

	err := f.listener.handleVerification(context.Background(),
		verificationNotification(marketpay.CheckTypeIdentityVerification, marketpay.CheckStatusAwaitingData, "SHOP1", "SH-2"))
	require.NoError(t, err)

	require.Len(t, f.mail.namedEmails, 1)
	sent := f.mail.namedEmails[0]
	require.Equal(t, "ben@example.com", sent.Email)
	require.Equal(t, "Ben", sent.Name.FirstName)
	require.Equal(t, "accountHolderAwaitingIdentityEmail", sent.Template)
}

func TestHandleVerification_BusinessShareholderNotFound(t *testing.T) {
	f := newFixture()
	f.accounts.byHolderCode["SHOP1"] = &marketpay.AccountHolder{
		AccountHolderCode: "SHOP1",
		LegalEntity:       marketpay.LegalEntityBusiness,
		Shareholders: []marketpay.ShareholderContact{
			{ShareholderCode: "SH-1", Email: "ada@example.com"},
		},
	}

	err := f.listener.handleVerification(context.Background(),
		verificationNotification(marketpay.CheckTypeIdentityVerification, marketpay.CheckStatusAwaitingData, "SHOP1", "SH-404"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDataInconsistency))
	require.Empty(t, f.mail.namedEmails)
	require.Empty(t, f.mail.shopEmails)
}

func TestHandleVerification_IndividualInvalidPassport(t *testing.T) {
	f := newFixture()
	f.accounts.byHolderCode["SHOP1"] = &marketpay.AccountHolder{
		AccountHolderCode: "SHOP1",
		LegalEntity:       marketpay.LegalEntityIndividual,
		Email:             "owner@example.com",
		IndividualName:    marketpay.Name{FirstName: "Mara", LastName: "Silva"},
	}

	err := f.listener.handleVerification(context.Background(),
		verificationNotification(marketpay.CheckTypePassportVerification, marketpay.CheckStatusInvalidData, "SHOP1", ""))
	require.NoError(t, err)

	require.Len(t, f.mail.namedEmails, 1)
	sent := f.mail.namedEmails[0]
	require.Equal(t, "owner@example.com", sent.Email)
	require.Equal(t, "accountHolderInvalidPassportEmail", sent.Template)
}

func TestHandleVerification_CompanyAwaitingData(t *testing.T) {
	f := newFixture()
	f.shops.shops["SHOP1"] = mirakl.Shop{ID: "SHOP1"}

	err := f.listener.handleVerification(context.Background(),
		verificationNotification(marketpay.CheckTypeCompanyVerification, marketpay.CheckStatusAwaitingData, "SHOP1", ""))
	require.NoError(t, err)

	require.Len(t, f.mail.shopEmails, 1)
	require.Equal(t, "companyAwaitingIdData", f.mail.shopEmails[0].Template)
	require.Empty(t, f.accounts.holderCalls)
}

func TestHandleVerification_PassedIdentityBusinessRemovesShareholderMedia(t *testing.T) {
	f := newFixture()
	f.accounts.byHolderCode["SHOP1"] = &marketpay.AccountHolder{
		AccountHolderCode: "SHOP1",
		LegalEntity:       marketpay.LegalEntityBusiness,
	}

	err := f.listener.handleVerification(context.Background(),
		verificationNotification(marketpay.CheckTypeIdentityVerification, marketpay.CheckStatusPassed, "SHOP1", "SH-1"))
	require.NoError(t, err)

	require.Equal(t, []string{"SH-1"}, f.docs.shareholder)
	require.Empty(t, f.mail.shopEmails)
	require.Empty(t, f.mail.namedEmails)
}

func TestHandleVerification_PassedPassportIndividualRemovesIndividualMedia(t *testing.T) {
	f := newFixture()
	f.accounts.byHolderCode["SHOP1"] = &marketpay.AccountHolder{
		AccountHolderCode: "SHOP1",
		LegalEntity:       marketpay.LegalEntityIndividual,
	}

	err := f.listener.handleVerification(context.Background(),
		verificationNotification(marketpay.CheckTypePassportVerification, marketpay.CheckStatusPassed, "SHOP1", ""))
	require.NoError(t, err)

	require.Equal(t, []string{"SHOP1"}, f.docs.individual)
}

func TestHandleVerification_PassedBankRemovesBankProof(t *testing.T) {
	f := newFixture()

	err := f.listener.handleVerification(context.Background(),
		verificationNotification(marketpay.CheckTypeBankAccountVerification, marketpay.CheckStatusPassed, "SHOP1", ""))
	require.NoError(t, err)

	require.Equal(t, []string{"SHOP1"}, f.docs.bankProof)
}

func TestHandleVerification_UnmatchedCombinationIsNoop(t *testing.T) {
	f := newFixture()

	err := f.listener.handleVerification(context.Background(),
		verificationNotification(marketpay.CheckTypeIdentityVerification, marketpay.CheckStatusPending, "SHOP1", ""))
	require.NoError(t, err)

	require.Empty(t, f.mail.shopEmails)
	require.Empty(t, f.mail.namedEmails)
	require.Empty(t, f.accounts.holderCalls)
	require.Empty(t, f.shops.calls)
}

func TestHandleVerification_ShopMissingIsDataInconsistency(t *testing.T) {
	f := newFixture()

	err := f.listener.handleVerification(context.Background(),
		verificationNotification(marketpay.CheckTypeBankAccountVerification, marketpay.CheckStatusRetryLimitReached, "SHOP-404", ""))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDataInconsistency))
	require.Empty(t, f.mail.shopEmails)
}
