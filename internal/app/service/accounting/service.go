package accounting

import (
	"context"
	"fmt"

	"github.com/fatflowers/marketlink/internal/app/service/listener"
	"github.com/fatflowers/marketlink/internal/platform/marketpay"
	"github.com/fatflowers/marketlink/internal/platform/mirakl"
	"go.uber.org/zap"
)

const creditDocumentType = "CREDIT"

// HolderResolver maps a ledger account code back to its account holder.
type HolderResolver interface {
	GetByAccountCode(ctx context.Context, accountCode string) (*marketpay.AccountHolder, error)
}

// DocumentCreator creates manual accounting documents on the marketplace.
type DocumentCreator interface {
	CreateManualDocument(ctx context.Context, doc mirakl.ManualDocumentRequest) (*mirakl.CreatedManualDocuments, error)
}

// Service turns a negative-balance compensation record into a manual credit
// document against the corresponding shop.
type Service struct {
	accounts    HolderResolver
	marketplace DocumentCreator
	log         *zap.SugaredLogger
}

func New(accounts HolderResolver, marketplace DocumentCreator, log *zap.SugaredLogger) *Service {
	return &Service{accounts: accounts, marketplace: marketplace, log: log}
}

// ProcessRecord creates the credit document for one compensation record.
// Creation errors the marketplace reports inline come back inside the result
// for the caller to inspect; only transport and lookup failures error.
func (s *Service) ProcessRecord(ctx context.Context, record marketpay.CompensationRecord, reference string) (*mirakl.CreatedManualDocuments, error) {
	holder, err := s.accounts.GetByAccountCode(ctx, record.AccountCode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve holder for account %s: %w", record.AccountCode, err)
	}

	s.log.Infow("creating compensation credit document",
		"shop_id", holder.AccountHolderCode,
		"account_code", record.AccountCode,
		"amount", record.Amount.Value,
		"currency", record.Amount.Currency,
		"psp_reference", reference,
	)

	return s.marketplace.CreateManualDocument(ctx, mirakl.ManualDocumentRequest{
		ShopID:       holder.AccountHolderCode,
		DocumentType: creditDocumentType,
		AmountValue:  record.Amount.Value,
		Currency:     record.Amount.Currency,
		Reference:    reference,
	})
}

var _ listener.CompensationGateway = (*Service)(nil)
