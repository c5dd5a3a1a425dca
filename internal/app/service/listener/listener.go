package listener

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fatflowers/marketlink/internal/platform/marketpay"
	"github.com/fatflowers/marketlink/internal/platform/mirakl"
	"go.uber.org/zap"
)

// defaultLocale is used for seller emails; shop-specific locales override it
// inside the mail gateway when present.
const defaultLocale = "en_US"

// Listener is the notification reaction core. It loads a pending
// notification by trigger id, decodes it, dispatches to the per-kind
// handler, and deletes the row only on a fully clean run. Any escaping error
// retains the row for operator-triggered reprocessing.
type Listener struct {
	store        NotificationStore
	accounts     AccountHolderGateway
	shops        ShopGateway
	mail         EmailGateway
	payoutRetry  PayoutRetryGateway
	docs         DocumentCleanupGateway
	compensation CompensationGateway
	log          *zap.SugaredLogger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func New(store NotificationStore,
	accounts AccountHolderGateway,
	shops ShopGateway,
	mail EmailGateway,
	payoutRetry PayoutRetryGateway,
	docs DocumentCleanupGateway,
	compensation CompensationGateway,
	log *zap.SugaredLogger) *Listener {
	return &Listener{
		store:        store,
		accounts:     accounts,
		shops:        shops,
		mail:         mail,
		payoutRetry:  payoutRetry,
		docs:         docs,
		compensation: compensation,
		log:          log,
		inFlight:     make(map[string]struct{}),
	}
}

// Handle processes one inbound trigger. Side effects only; the retained row
// itself is the failure signal.
func (l *Listener) Handle(ctx context.Context, id string) {
	if !l.claim(id) {
		l.log.Warnw("notification already in flight, skipping", "id", id)
		return
	}
	defer l.release(id)

	l.log.Infow("received notification trigger", "id", id)

	pending, err := l.store.FindByID(ctx, id)
	if err != nil {
		l.log.Errorw("failed to load pending notification", "id", id, "error", err.Error())
		return
	}

	decoded, err := marketpay.Decode(pending.RawPayload)
	if err != nil {
		l.log.Errorw("failed to decode notification", "id", id, "error", err.Error())
		return
	}

	if err := l.process(ctx, decoded); err != nil {
		var apiErr *marketpay.APIError
		if errors.As(err, &apiErr) {
			l.log.Errorw("failed processing notification",
				"id", id,
				"psp_reference", decoded.Reference(),
				"status", apiErr.Status,
				"error_code", apiErr.ErrorCode,
				"message", apiErr.Message,
			)
		} else {
			l.log.Errorw("failed processing notification",
				"id", id,
				"psp_reference", decoded.Reference(),
				"error", err.Error(),
			)
		}
		return
	}

	if err := l.store.Delete(ctx, id); err != nil {
		l.log.Errorw("failed to delete handled notification", "id", id, "error", err.Error())
		return
	}
	l.log.Infow("notification handled", "id", id, "psp_reference", decoded.Reference())
}

// claim marks a trigger id as in flight. A second delivery of the same id
// while the first is still running is rejected rather than processed twice.
func (l *Listener) claim(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, busy := l.inFlight[id]; busy {
		return false
	}
	l.inFlight[id] = struct{}{}
	return true
}

func (l *Listener) release(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inFlight, id)
}

// getShop loads a single shop and treats an empty result as a data
// inconsistency, since every notification-referenced holder code must have a
// marketplace shop behind it.
func (l *Listener) getShop(ctx context.Context, shopID string) (*mirakl.Shop, error) {
	shops, err := l.shops.GetShopsByIDs(ctx, []string{shopID})
	if err != nil {
		return nil, err
	}
	if len(shops) == 0 {
		return nil, fmt.Errorf("%w: cannot find shop %s", ErrDataInconsistency, shopID)
	}
	return &shops[0], nil
}
