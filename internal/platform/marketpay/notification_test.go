package marketpay

import (
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

// encodeEnvelope wraps typed content in the wire envelope the platform sends.
func encodeEnvelope(t *testing.T, eventType, pspReference string, content any) []byte {
	t.Helper()
	raw, err := json.Marshal(content)
	require.NoError(t, err)
	env, err := json.Marshal(Envelope{EventType: eventType, PspReference: pspReference, Content: raw})
	require.NoError(t, err)
	return env
}

func TestDecode_RoundTripPreservesContent(t *testing.T) {
	verification := VerificationContent{
		AccountHolderCode:  "SHOP1",
		ShareholderCode:    "SH-2",
		VerificationType:   CheckTypePassportVerification,
		VerificationStatus: CheckStatusInvalidData,
	}
	decoded, err := Decode(encodeEnvelope(t, EventAccountHolderVerification, "psp-v", verification))
	require.NoError(t, err)
	require.Equal(t, verification, decoded.(*VerificationNotification).Content)

	statusChange := StatusChangeContent{
		AccountHolderCode: "SHOP1",
		OldStatus:         HolderStatus{PayoutState: PayoutState{AllowPayout: lo.ToPtr(false)}},
		NewStatus:         HolderStatus{PayoutState: PayoutState{AllowPayout: lo.ToPtr(true)}},
	}
	decoded, err = Decode(encodeEnvelope(t, EventAccountHolderStatusChange, "psp-s", statusChange))
	require.NoError(t, err)
	require.Equal(t, statusChange, decoded.(*StatusChangeNotification).Content)

	payout := PayoutContent{
		AccountHolderCode: "SHOP1",
		AccountCode:       "ACC-1",
		Amounts:           []Amount{{Value: 9900, Currency: "EUR"}},
		Status:            OperationStatus{StatusCode: PayoutStatusFailed, Message: "Insufficient funds"},
	}
	decoded, err = Decode(encodeEnvelope(t, EventAccountHolderPayout, "psp-p", payout))
	require.NoError(t, err)
	require.Equal(t, payout, decoded.(*PayoutNotification).Content)

	transfer := TransferFundsContent{
		SourceAccountCode:      "ACC-SRC",
		DestinationAccountCode: "ACC-DST",
		Amount:                 Amount{Value: 1250, Currency: "EUR"},
		TransferCode:           "TR-42",
		Status:                 OperationStatus{StatusCode: PayoutStatusFailed, Message: "account closed"},
	}
	decoded, err = Decode(encodeEnvelope(t, EventTransferFunds, "psp-t", transfer))
	require.NoError(t, err)
	require.Equal(t, transfer, decoded.(*TransferFundsNotification).Content)

	compensation := CompensateNegativeBalanceContent{
		Records: []CompensationRecordContainer{
			{Record: CompensationRecord{AccountCode: "ACC-1", Amount: Amount{Value: -500, Currency: "EUR"}}},
		},
	}
	decoded, err = Decode(encodeEnvelope(t, EventCompensateNegativeBalance, "psp-c", compensation))
	require.NoError(t, err)
	require.Equal(t, compensation, decoded.(*CompensateNegativeBalanceNotification).Content)
}

func TestDecode_Verification(t *testing.T) {
	raw := []byte(`{
		"eventType": "ACCOUNT_HOLDER_VERIFICATION",
		"pspReference": "8515-verify",
		"content": {
			"accountHolderCode": "SHOP1",
			"shareholderCode": "SH-2",
			"verificationType": "IDENTITY_VERIFICATION",
			"verificationStatus": "AWAITING_DATA"
		}
	}`)

	decoded, err := Decode(raw)
	require.NoError(t, err)

	n, ok := decoded.(*VerificationNotification)
	require.True(t, ok)
	require.Equal(t, "8515-verify", n.Reference())
	require.Equal(t, "SHOP1", n.Content.AccountHolderCode)
	require.Equal(t, "SH-2", n.Content.ShareholderCode)
	require.Equal(t, CheckTypeIdentityVerification, n.Content.VerificationType)
	require.Equal(t, CheckStatusAwaitingData, n.Content.VerificationStatus)
}

func TestDecode_StatusChangeTriState(t *testing.T) {
	raw := []byte(`{
		"eventType": "ACCOUNT_HOLDER_STATUS_CHANGE",
		"pspReference": "8515-status",
		"content": {
			"accountHolderCode": "SHOP1",
			"oldStatus": {"payoutState": {}},
			"newStatus": {"payoutState": {"allowPayout": true}}
		}
	}`)

	decoded, err := Decode(raw)
	require.NoError(t, err)

	n, ok := decoded.(*StatusChangeNotification)
	require.True(t, ok)
	require.Nil(t, n.Content.OldStatus.PayoutState.AllowPayout)
	require.NotNil(t, n.Content.NewStatus.PayoutState.AllowPayout)
	require.True(t, *n.Content.NewStatus.PayoutState.AllowPayout)
}

func TestDecode_TransferFunds(t *testing.T) {
	raw := []byte(`{
		"eventType": "TRANSFER_FUNDS",
		"pspReference": "8515-transfer",
		"content": {
			"sourceAccountCode": "ACC-SRC",
			"destinationAccountCode": "ACC-DST",
			"amount": {"value": 1250, "currency": "EUR"},
			"transferCode": "TR-42",
			"status": {"statusCode": "Failed", "message": "account closed"}
		}
	}`)

	decoded, err := Decode(raw)
	require.NoError(t, err)

	n, ok := decoded.(*TransferFundsNotification)
	require.True(t, ok)
	require.Equal(t, "ACC-SRC", n.Content.SourceAccountCode)
	require.Equal(t, "ACC-DST", n.Content.DestinationAccountCode)
	require.Equal(t, Amount{Value: 1250, Currency: "EUR"}, n.Content.Amount)
	require.Equal(t, "TR-42", n.Content.TransferCode)
	require.Equal(t, PayoutStatusFailed, n.Content.Status.StatusCode)
}

func TestDecode_CompensationRecords(t *testing.T) {
	raw := []byte(`{
		"eventType": "COMPENSATE_NEGATIVE_BALANCE",
		"pspReference": "8515-comp",
		"content": {
			"records": [
				{"compensateNegativeBalanceNotificationRecord": {"accountCode": "ACC-1", "amount": {"value": -500, "currency": "EUR"}}},
				{"compensateNegativeBalanceNotificationRecord": {"accountCode": "ACC-2", "amount": {"value": -700, "currency": "EUR"}}}
			]
		}
	}`)

	decoded, err := Decode(raw)
	require.NoError(t, err)

	n, ok := decoded.(*CompensateNegativeBalanceNotification)
	require.True(t, ok)
	require.Len(t, n.Content.Records, 2)
	require.Equal(t, "ACC-1", n.Content.Records[0].Record.AccountCode)
	require.Equal(t, int64(-700), n.Content.Records[1].Record.Amount.Value)
}

func TestDecode_UnknownEventType(t *testing.T) {
	raw := []byte(`{"eventType": "ACCOUNT_HOLDER_LIMIT_REACHED", "pspReference": "8515-x", "content": {}}`)

	decoded, err := Decode(raw)
	require.NoError(t, err)

	n, ok := decoded.(*UnknownNotification)
	require.True(t, ok)
	require.Equal(t, "ACCOUNT_HOLDER_LIMIT_REACHED", n.EventType)
	require.Equal(t, "8515-x", n.Reference())
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode([]byte(`{"eventType": }`))
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestDecode_MissingEventType(t *testing.T) {
	_, err := Decode([]byte(`{"pspReference": "8515-x", "content": {}}`))
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, "missing eventType", decodeErr.Reason)
}
