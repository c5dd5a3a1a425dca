package listener

import "github.com/fatflowers/marketlink/internal/platform/marketpay"

func isIdentityOrPassport(checkType marketpay.CheckType) bool {
	return checkType == marketpay.CheckTypeIdentityVerification || checkType == marketpay.CheckTypePassportVerification
}

// awaitingDataForIdentityOrPassport reports whether an identity or passport
// check is waiting on the seller to provide data.
func awaitingDataForIdentityOrPassport(status marketpay.CheckStatus, checkType marketpay.CheckType) bool {
	return status == marketpay.CheckStatusAwaitingData && isIdentityOrPassport(checkType)
}

// invalidDataForIdentityOrPassport reports whether an identity or passport
// check rejected the provided data.
func invalidDataForIdentityOrPassport(status marketpay.CheckStatus, checkType marketpay.CheckType) bool {
	return status == marketpay.CheckStatusInvalidData && isIdentityOrPassport(checkType)
}

// invalidOrAwaitingCompanyData reports whether a company check needs new or
// corrected data.
func invalidOrAwaitingCompanyData(status marketpay.CheckStatus, checkType marketpay.CheckType) bool {
	return checkType == marketpay.CheckTypeCompanyVerification &&
		(status == marketpay.CheckStatusInvalidData || status == marketpay.CheckStatusAwaitingData)
}

// passedForIdentityOrPassport reports whether an identity or passport check
// succeeded, which makes previously uploaded proof documents stale.
func passedForIdentityOrPassport(status marketpay.CheckStatus, checkType marketpay.CheckType) bool {
	return status == marketpay.CheckStatusPassed && isIdentityOrPassport(checkType)
}
