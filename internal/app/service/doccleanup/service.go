package doccleanup

import (
	"context"
	"fmt"

	"github.com/fatflowers/marketlink/internal/app/service/listener"
	"github.com/fatflowers/marketlink/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DocumentDeleter removes a document from the marketplace.
type DocumentDeleter interface {
	DeleteDocument(ctx context.Context, documentID string) error
}

// Service deletes stale KYC documents once the verification they were
// uploaded for has passed. The shop_document table maps marketplace document
// ids to the holder or shareholder they belong to.
type Service struct {
	db          *gorm.DB
	marketplace DocumentDeleter
	log         *zap.SugaredLogger
}

func New(db *gorm.DB, marketplace DocumentDeleter, log *zap.SugaredLogger) *Service {
	return &Service{db: db, marketplace: marketplace, log: log}
}

func (s *Service) RemoveShareholderMedia(ctx context.Context, shareholderCode string) error {
	return s.removeMatching(ctx, "shareholder_code = ? AND type_code = ?", shareholderCode, models.ShopDocumentTypeShareholderProof)
}

func (s *Service) RemoveIndividualMedia(ctx context.Context, holderCode string) error {
	return s.removeMatching(ctx, "shop_id = ? AND type_code = ?", holderCode, models.ShopDocumentTypeIdentityProof)
}

func (s *Service) RemoveBankProofMedia(ctx context.Context, holderCode string) error {
	return s.removeMatching(ctx, "shop_id = ? AND type_code = ?", holderCode, models.ShopDocumentTypeBankProof)
}

// removeMatching deletes every matching document on the marketplace first
// and only then drops the local row, so a failed remote delete is retried on
// the next passed-verification notification.
func (s *Service) removeMatching(ctx context.Context, query string, args ...any) error {
	var rows []*models.ShopDocument
	if err := s.db.WithContext(ctx).Where(query, args...).Find(&rows).Error; err != nil {
		return fmt.Errorf("failed to load shop documents: %w", err)
	}

	for _, row := range rows {
		if err := s.marketplace.DeleteDocument(ctx, row.MarketplaceDocID); err != nil {
			return err
		}
		if err := s.db.WithContext(ctx).Delete(&models.ShopDocument{}, "id = ?", row.ID).Error; err != nil {
			return fmt.Errorf("failed to delete shop document row %s: %w", row.ID, err)
		}
		s.log.Infow("removed stale document", "shop_id", row.ShopID, "type_code", row.TypeCode, "marketplace_doc_id", row.MarketplaceDocID)
	}
	return nil
}

var _ listener.DocumentCleanupGateway = (*Service)(nil)
