package marketpay

// CheckType is a KYC verification category performed by the payment platform.
type CheckType string

const (
	CheckTypeIdentityVerification    CheckType = "IDENTITY_VERIFICATION"
	CheckTypePassportVerification    CheckType = "PASSPORT_VERIFICATION"
	CheckTypeCompanyVerification     CheckType = "COMPANY_VERIFICATION"
	CheckTypeBankAccountVerification CheckType = "BANK_ACCOUNT_VERIFICATION"
	CheckTypeNonprofitVerification   CheckType = "NONPROFIT_VERIFICATION"
)

// CheckStatus is the outcome state of a single KYC check.
type CheckStatus string

const (
	CheckStatusAwaitingData      CheckStatus = "AWAITING_DATA"
	CheckStatusDataProvided      CheckStatus = "DATA_PROVIDED"
	CheckStatusInvalidData       CheckStatus = "INVALID_DATA"
	CheckStatusPassed            CheckStatus = "PASSED"
	CheckStatusFailed            CheckStatus = "FAILED"
	CheckStatusPending           CheckStatus = "PENDING"
	CheckStatusRetryLimitReached CheckStatus = "RETRY_LIMIT_REACHED"
)

// LegalEntity is the account holder's legal form.
type LegalEntity string

const (
	LegalEntityIndividual LegalEntity = "Individual"
	LegalEntityBusiness   LegalEntity = "Business"
)

// PayoutStatusFailed is the literal status code the platform reports for a
// failed payout or fund transfer.
const PayoutStatusFailed = "Failed"

// Amount is a money amount in minor units.
type Amount struct {
	Value    int64  `json:"value"`
	Currency string `json:"currency"`
}

// Name is a natural person's name as the payment platform records it.
type Name struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender,omitempty"`
}

// ShareholderContact is a natural person attached to a business account
// holder; each must individually pass identity verification.
type ShareholderContact struct {
	ShareholderCode string `json:"shareholderCode"`
	Name            Name   `json:"name"`
	Email           string `json:"email"`
}

// AccountHolder is the payment platform's view of a seller. The connector
// only ever reads it.
type AccountHolder struct {
	AccountHolderCode string               `json:"accountHolderCode"`
	LegalEntity       LegalEntity          `json:"legalEntity"`
	Email             string               `json:"email"`
	IndividualName    Name                 `json:"individualName"`
	Shareholders      []ShareholderContact `json:"shareholders"`
	AllowPayout       bool                 `json:"allowPayout"`
}

// OperationStatus carries the status code and human message of an async
// platform operation (payout, transfer).
type OperationStatus struct {
	StatusCode string `json:"statusCode"`
	Message    string `json:"message"`
}
