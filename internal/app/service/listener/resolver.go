package listener

import (
	"fmt"

	"github.com/fatflowers/marketlink/internal/platform/marketpay"
)

// Template/subject keys for the fixed (non-resolver) emails.
const (
	templateBankVerification = "bankAccountVerificationEmail"
	subjectBankVerification  = "email.bank.verification.title"

	templateNowPayable = "nowPayable"
	subjectNowPayable  = "email.account.status.now.true.title"

	templatePayoutRevoked = "payoutRevoked"
	subjectPayoutRevoked  = "email.account.status.now.false.title"
)

type checkKey struct {
	Type   marketpay.CheckType
	Status marketpay.CheckStatus
}

type templateAndSubject struct {
	Template string
	Subject  string
}

// templateKeys maps the six populated (check type, check status) pairs to
// their seller email template and subject key. Every other pair is an
// undefined lookup and must error, never default.
var templateKeys = map[checkKey]templateAndSubject{
	{marketpay.CheckTypeIdentityVerification, marketpay.CheckStatusAwaitingData}: {
		Template: "accountHolderAwaitingIdentityEmail",
		Subject:  "email.account.verification.awaiting.id.title",
	},
	{marketpay.CheckTypePassportVerification, marketpay.CheckStatusAwaitingData}: {
		Template: "accountHolderAwaitingPassportEmail",
		Subject:  "email.account.verification.awaiting.passport.title",
	},
	{marketpay.CheckTypeCompanyVerification, marketpay.CheckStatusAwaitingData}: {
		Template: "companyAwaitingIdData",
		Subject:  "email.company.verification.awaiting.id.title",
	},
	{marketpay.CheckTypeIdentityVerification, marketpay.CheckStatusInvalidData}: {
		Template: "accountHolderInvalidIdentityEmail",
		Subject:  "email.account.verification.invalid.id.title",
	},
	{marketpay.CheckTypePassportVerification, marketpay.CheckStatusInvalidData}: {
		Template: "accountHolderInvalidPassportEmail",
		Subject:  "email.account.verification.invalid.passport.title",
	},
	{marketpay.CheckTypeCompanyVerification, marketpay.CheckStatusInvalidData}: {
		Template: "companyInvalidIdData",
		Subject:  "email.company.verification.invalid.id.title",
	},
}

// resolveTemplateAndSubject returns the seller email template and subject
// for a verification outcome.
func resolveTemplateAndSubject(checkType marketpay.CheckType, status marketpay.CheckStatus) (templateAndSubject, error) {
	ts, ok := templateKeys[checkKey{Type: checkType, Status: status}]
	if !ok {
		return templateAndSubject{}, fmt.Errorf("no email template registered for verification %s/%s", checkType, status)
	}
	return ts, nil
}
