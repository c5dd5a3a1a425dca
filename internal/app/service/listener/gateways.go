package listener

import (
	"context"

	"github.com/fatflowers/marketlink/internal/models"
	"github.com/fatflowers/marketlink/internal/platform/marketpay"
	"github.com/fatflowers/marketlink/internal/platform/mirakl"
)

// NotificationStore persists raw inbound notifications. The listener reads a
// row once and deletes it only after a fully successful run.
type NotificationStore interface {
	FindByID(ctx context.Context, id string) (*models.PendingNotification, error)
	Delete(ctx context.Context, id string) error
}

// AccountHolderGateway queries the payment platform's account holder records.
type AccountHolderGateway interface {
	GetByHolderCode(ctx context.Context, holderCode string) (*marketpay.AccountHolder, error)
	GetByAccountCode(ctx context.Context, accountCode string) (*marketpay.AccountHolder, error)
}

// ShopGateway queries marketplace shops. An id absent from the result is not
// an error at this level; the listener decides whether that is fatal.
type ShopGateway interface {
	GetShopsByIDs(ctx context.Context, ids []string) ([]mirakl.Shop, error)
}

// EmailGateway sends seller- and operator-facing mail.
type EmailGateway interface {
	// SendShopEmail renders a template for the shop's own contact.
	SendShopEmail(ctx context.Context, shop *mirakl.Shop, locale, templateKey, subjectKey string) error
	// SendNamedEmail renders a template addressed to a named natural person
	// (a shareholder, or an individual account holder).
	SendNamedEmail(ctx context.Context, name marketpay.Name, shopID, locale, templateKey, subjectKey, email string) error

	SendOperatorPayoutFailure(ctx context.Context, shop *mirakl.Shop, message string) error
	SendOperatorTransferFundsFailure(ctx context.Context, sourceHolderCode, destinationHolderCode string, amount marketpay.Amount, transferCode, message string) error
	SendOperatorManualDocumentFailure(ctx context.Context, accountCode string, amount marketpay.Amount, reference string, errs []mirakl.ManualDocumentError) error
}

// PayoutRetryGateway re-submits previously failed payouts for a holder.
// Calling it when nothing is pending is a no-op.
type PayoutRetryGateway interface {
	RetryFailedPayouts(ctx context.Context, holderCode string) error
}

// DocumentCleanupGateway removes stale uploaded KYC documents once the
// corresponding verification has passed.
type DocumentCleanupGateway interface {
	RemoveShareholderMedia(ctx context.Context, shareholderCode string) error
	RemoveIndividualMedia(ctx context.Context, holderCode string) error
	RemoveBankProofMedia(ctx context.Context, holderCode string) error
}

// CompensationGateway turns a negative-balance compensation record into
// manual accounting documents on the marketplace.
type CompensationGateway interface {
	ProcessRecord(ctx context.Context, record marketpay.CompensationRecord, reference string) (*mirakl.CreatedManualDocuments, error)
}
