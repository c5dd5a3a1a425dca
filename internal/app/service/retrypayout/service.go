package retrypayout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fatflowers/marketlink/internal/app/service/listener"
	"github.com/fatflowers/marketlink/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PayoutSubmitter re-submits a stored payout request to the payment platform.
type PayoutSubmitter interface {
	SubmitPayout(ctx context.Context, request json.RawMessage) error
}

// Service re-submits payouts that failed while an account holder was not
// payable. Safe to invoke for holders with nothing pending.
type Service struct {
	db       *gorm.DB
	payments PayoutSubmitter
	log      *zap.SugaredLogger
}

func New(db *gorm.DB, payments PayoutSubmitter, log *zap.SugaredLogger) *Service {
	return &Service{db: db, payments: payments, log: log}
}

// RetryFailedPayouts loads every stored failed payout for the holder and
// re-submits each one. Rows whose re-submission is accepted are deleted;
// rows that fail again stay for the next trigger.
func (s *Service) RetryFailedPayouts(ctx context.Context, holderCode string) error {
	var rows []*models.FailedPayout
	if err := s.db.WithContext(ctx).Where("account_holder_code = ?", holderCode).Find(&rows).Error; err != nil {
		return fmt.Errorf("failed to load failed payouts for %s: %w", holderCode, err)
	}
	if len(rows) == 0 {
		return nil
	}

	s.log.Infow("retrying failed payouts", "account_holder_code", holderCode, "count", len(rows))

	for _, row := range rows {
		if err := s.payments.SubmitPayout(ctx, json.RawMessage(row.RawRequest)); err != nil {
			s.log.Errorw("payout retry failed",
				"account_holder_code", holderCode,
				"failed_payout_id", row.ID,
				"error", err.Error(),
			)
			continue
		}
		if err := s.db.WithContext(ctx).Delete(&models.FailedPayout{}, "id = ?", row.ID).Error; err != nil {
			s.log.Errorw("failed to delete retried payout", "failed_payout_id", row.ID, "error", err.Error())
		}
	}
	return nil
}

var _ listener.PayoutRetryGateway = (*Service)(nil)
