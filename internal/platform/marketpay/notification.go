package marketpay

import (
	"encoding/json"
	"fmt"
)

// Event types the payment platform delivers to the connector webhook.
const (
	EventAccountHolderVerification = "ACCOUNT_HOLDER_VERIFICATION"
	EventAccountHolderStatusChange = "ACCOUNT_HOLDER_STATUS_CHANGE"
	EventAccountHolderPayout       = "ACCOUNT_HOLDER_PAYOUT"
	EventTransferFunds             = "TRANSFER_FUNDS"
	EventCompensateNegativeBalance = "COMPENSATE_NEGATIVE_BALANCE"
)

// GenericNotification is the closed set of decoded notification variants.
// Exactly one concrete variant is produced per inbound payload.
type GenericNotification interface {
	// Reference returns the processor reference correlating this
	// notification with the originating platform operation.
	Reference() string

	isNotification()
}

// Envelope is the raw wire shape of an inbound notification.
type Envelope struct {
	EventType    string          `json:"eventType"`
	EventDate    string          `json:"eventDate,omitempty"`
	PspReference string          `json:"pspReference"`
	Live         bool            `json:"live,omitempty"`
	Content      json.RawMessage `json:"content"`
}

type VerificationNotification struct {
	PspReference string              `json:"pspReference"`
	Content      VerificationContent `json:"content"`
}

type VerificationContent struct {
	AccountHolderCode  string      `json:"accountHolderCode"`
	ShareholderCode    string      `json:"shareholderCode,omitempty"`
	VerificationType   CheckType   `json:"verificationType"`
	VerificationStatus CheckStatus `json:"verificationStatus"`
}

type StatusChangeNotification struct {
	PspReference string              `json:"pspReference"`
	Content      StatusChangeContent `json:"content"`
}

type StatusChangeContent struct {
	AccountHolderCode string       `json:"accountHolderCode"`
	OldStatus         HolderStatus `json:"oldStatus"`
	NewStatus         HolderStatus `json:"newStatus"`
}

type HolderStatus struct {
	PayoutState PayoutState `json:"payoutState"`
}

// PayoutState carries the tri-state payout permission: nil means the
// platform did not report the flag at all.
type PayoutState struct {
	AllowPayout *bool `json:"allowPayout"`
}

type PayoutNotification struct {
	PspReference string        `json:"pspReference"`
	Content      PayoutContent `json:"content"`
}

type PayoutContent struct {
	AccountHolderCode string          `json:"accountHolderCode"`
	AccountCode       string          `json:"accountCode,omitempty"`
	Amounts           []Amount        `json:"amounts,omitempty"`
	Status            OperationStatus `json:"status"`
}

type TransferFundsNotification struct {
	PspReference string               `json:"pspReference"`
	Content      TransferFundsContent `json:"content"`
}

type TransferFundsContent struct {
	SourceAccountCode      string          `json:"sourceAccountCode"`
	DestinationAccountCode string          `json:"destinationAccountCode"`
	Amount                 Amount          `json:"amount"`
	TransferCode           string          `json:"transferCode"`
	Status                 OperationStatus `json:"status"`
}

type CompensateNegativeBalanceNotification struct {
	PspReference string                           `json:"pspReference"`
	Content      CompensateNegativeBalanceContent `json:"content"`
}

type CompensateNegativeBalanceContent struct {
	Records []CompensationRecordContainer `json:"records"`
}

type CompensationRecordContainer struct {
	Record CompensationRecord `json:"compensateNegativeBalanceNotificationRecord"`
}

// CompensationRecord is a single negative-balance correction instruction.
type CompensationRecord struct {
	AccountCode string `json:"accountCode"`
	Amount      Amount `json:"amount"`
}

func (n *VerificationNotification) Reference() string              { return n.PspReference }
func (n *StatusChangeNotification) Reference() string              { return n.PspReference }
func (n *PayoutNotification) Reference() string                    { return n.PspReference }
func (n *TransferFundsNotification) Reference() string             { return n.PspReference }
func (n *CompensateNegativeBalanceNotification) Reference() string { return n.PspReference }

func (*VerificationNotification) isNotification()              {}
func (*StatusChangeNotification) isNotification()              {}
func (*PayoutNotification) isNotification()                    {}
func (*TransferFundsNotification) isNotification()             {}
func (*CompensateNegativeBalanceNotification) isNotification() {}

// DecodeError reports a malformed inbound payload.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode notification: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decode notification: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode parses a raw inbound payload into exactly one typed notification
// variant. Event types the connector does not know yield an UnknownNotification
// rather than an error so new platform event kinds do not break processing.
func Decode(raw []byte) (GenericNotification, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &DecodeError{Reason: "invalid envelope", Err: err}
	}
	if env.EventType == "" {
		return nil, &DecodeError{Reason: "missing eventType"}
	}

	switch env.EventType {
	case EventAccountHolderVerification:
		n := &VerificationNotification{PspReference: env.PspReference}
		if err := json.Unmarshal(env.Content, &n.Content); err != nil {
			return nil, &DecodeError{Reason: "invalid verification content", Err: err}
		}
		return n, nil
	case EventAccountHolderStatusChange:
		n := &StatusChangeNotification{PspReference: env.PspReference}
		if err := json.Unmarshal(env.Content, &n.Content); err != nil {
			return nil, &DecodeError{Reason: "invalid status change content", Err: err}
		}
		return n, nil
	case EventAccountHolderPayout:
		n := &PayoutNotification{PspReference: env.PspReference}
		if err := json.Unmarshal(env.Content, &n.Content); err != nil {
			return nil, &DecodeError{Reason: "invalid payout content", Err: err}
		}
		return n, nil
	case EventTransferFunds:
		n := &TransferFundsNotification{PspReference: env.PspReference}
		if err := json.Unmarshal(env.Content, &n.Content); err != nil {
			return nil, &DecodeError{Reason: "invalid transfer funds content", Err: err}
		}
		return n, nil
	case EventCompensateNegativeBalance:
		n := &CompensateNegativeBalanceNotification{PspReference: env.PspReference}
		if err := json.Unmarshal(env.Content, &n.Content); err != nil {
			return nil, &DecodeError{Reason: "invalid compensation content", Err: err}
		}
		return n, nil
	default:
		return &UnknownNotification{EventType: env.EventType, PspReference: env.PspReference}, nil
	}
}

// UnknownNotification stands in for event types introduced on the platform
// side after this connector was built. The router ignores it.
type UnknownNotification struct {
	EventType    string
	PspReference string
}

func (n *UnknownNotification) Reference() string { return n.PspReference }
func (*UnknownNotification) isNotification()     {}
