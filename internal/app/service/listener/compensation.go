package listener

import (
	"context"

	"github.com/fatflowers/marketlink/internal/platform/marketpay"
)

type recordOutcome struct {
	accountCode string
	err         error
}

// handleCompensation processes each negative-balance record independently.
// One failing record must not stop the rest, and per-record failures never
// escape: every record is an independently billable correction, so partial
// success is an accepted outcome and the notification counts as handled.
func (l *Listener) handleCompensation(ctx context.Context, n *marketpay.CompensateNegativeBalanceNotification) error {
	reference := n.PspReference

	outcomes := make([]recordOutcome, 0, len(n.Content.Records))
	for _, container := range n.Content.Records {
		record := container.Record
		outcomes = append(outcomes, recordOutcome{
			accountCode: record.AccountCode,
			err:         l.compensateRecord(ctx, record, reference),
		})
	}

	for _, outcome := range outcomes {
		if outcome.err != nil {
			l.log.Errorw("failed processing compensation record",
				"account_code", outcome.accountCode,
				"psp_reference", reference,
				"error", outcome.err.Error(),
			)
		}
	}
	return nil
}

func (l *Listener) compensateRecord(ctx context.Context, record marketpay.CompensationRecord, reference string) error {
	created, err := l.compensation.ProcessRecord(ctx, record, reference)
	if err != nil {
		return err
	}

	if len(created.DocumentReturns) == 0 {
		return nil
	}
	first := created.DocumentReturns[0]
	if len(first.Errors) == 0 {
		return nil
	}
	return l.mail.SendOperatorManualDocumentFailure(ctx, record.AccountCode, record.Amount, reference, first.Errors)
}
