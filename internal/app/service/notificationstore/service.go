package notificationstore

import (
	"context"
	"fmt"
	"time"

	"github.com/fatflowers/marketlink/internal/app/service/listener"
	"github.com/fatflowers/marketlink/internal/models"
	"github.com/fatflowers/marketlink/pkg/tool"
	"github.com/fatflowers/marketlink/pkg/types"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service persists raw inbound notifications. It backs both the webhook
// ingestion boundary (Create) and the listener (FindByID/Delete).
type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func New(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

// Create stores a raw payload and returns the trigger id assigned to it.
func (s *Service) Create(ctx context.Context, eventType, pspReference string, raw []byte) (string, error) {
	row := &models.PendingNotification{
		ID:           tool.GenerateUUIDV7(),
		EventType:    eventType,
		PspReference: pspReference,
		RawPayload:   datatypes.JSON(raw),
		ReceivedAt:   time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return "", fmt.Errorf("failed to store pending notification: %w", err)
	}
	return row.ID, nil
}

func (s *Service) FindByID(ctx context.Context, id string) (*models.PendingNotification, error) {
	var row models.PendingNotification
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to load pending notification %s: %w", id, err)
	}
	return &row, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Delete(&models.PendingNotification{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete pending notification %s: %w", id, err)
	}
	return nil
}

// filtersAnd is a helper to combine multiple CommonFilter into a single clause.Expression
type filtersAnd struct{ filters []*types.CommonFilter }

func (w filtersAnd) Build(builder clause.Builder) {
	if len(w.filters) == 0 {
		builder.WriteString("1=1")
		return
	}
	exprs := make([]clause.Expression, 0, len(w.filters))
	for _, f := range w.filters {
		exprs = append(exprs, f)
	}
	clause.And(exprs...).Build(builder)
}

// ScanRetainedRequest filters the retained notification backlog.
type ScanRetainedRequest struct {
	Filters []*types.CommonFilter `json:"filters"`
	From    int                   `json:"from"`
	Size    int                   `json:"size"`
}

type ScanRetainedResponse struct {
	Items []*models.PendingNotification `json:"items"`
	Total int64                         `json:"total"`
}

// ScanRetained lists rows still awaiting (re)processing, newest first.
func (s *Service) ScanRetained(ctx context.Context, req *ScanRetainedRequest) (*ScanRetainedResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}
	if req.Size <= 0 {
		req.Size = 20
	}
	if req.From < 0 {
		req.From = 0
	}

	tx := s.db.WithContext(ctx).Model(&models.PendingNotification{})
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: req.Filters}}})
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending notifications: %w", err)
	}

	var rows []*models.PendingNotification
	q := tx.Order("received_at DESC").Limit(req.Size)
	if req.From > 0 {
		q = q.Offset(req.From)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending notifications: %w", err)
	}
	return &ScanRetainedResponse{Items: rows, Total: total}, nil
}

var _ listener.NotificationStore = (*Service)(nil)
