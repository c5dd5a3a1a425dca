package mail

// subjects maps the subject keys used by the listener to rendered subject
// lines. Unknown keys fall back to the key itself so a missing translation
// never blocks an otherwise valid send.
var subjects = map[string]string{
	"email.account.verification.awaiting.id.title":       "Action required: identity verification",
	"email.account.verification.awaiting.passport.title": "Action required: passport verification",
	"email.account.verification.invalid.id.title":        "Identity verification data rejected",
	"email.account.verification.invalid.passport.title":  "Passport verification data rejected",
	"email.company.verification.awaiting.id.title":       "Action required: company verification",
	"email.company.verification.invalid.id.title":        "Company verification data rejected",
	"email.bank.verification.title":                      "Bank account verification needs attention",
	"email.account.status.now.true.title":                "Your account is now payable",
	"email.account.status.now.false.title":               "Payouts on your account were suspended",
}

func subjectFor(subjectKey string) string {
	if s, ok := subjects[subjectKey]; ok {
		return s
	}
	return subjectKey
}
