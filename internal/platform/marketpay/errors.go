package marketpay

import (
	"errors"
	"fmt"
)

// ErrAccountHolderNotFound is returned when the platform has no account
// holder for the requested holder or account code.
var ErrAccountHolderNotFound = errors.New("account holder not found")

// APIError is a structured rejection from the payment platform API.
type APIError struct {
	Status       int    `json:"status"`
	ErrorCode    string `json:"errorCode"`
	Message      string `json:"message"`
	PspReference string `json:"pspReference,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("marketpay api error: status=%d code=%s message=%s", e.Status, e.ErrorCode, e.Message)
}
