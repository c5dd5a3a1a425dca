package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/fatflowers/marketlink/internal/app/service/notificationstore"
	"github.com/fatflowers/marketlink/internal/platform/bus"
	"github.com/fatflowers/marketlink/internal/platform/marketpay"
	"github.com/fatflowers/marketlink/pkg/logctx"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// notificationAccepted is the acknowledgment body the payment platform
// expects before it stops re-delivering a notification.
var notificationAccepted = gin.H{"notificationResponse": "[accepted]"}

// @Summary      Payment platform webhook
// @Description  Receives an asynchronous platform notification, persists it and enqueues a processing trigger.
// @Tags         Webhook
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1/notifications/webhook [post]
// ApiNotificationWebhook ingests a raw platform notification. The payload is
// persisted before any interpretation: malformed content is the listener's
// problem, not the ingestion boundary's.
func ApiNotificationWebhook(store *notificationstore.Service, publisher *bus.Publisher, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logctx.FromGin(c, log)

		raw, err := io.ReadAll(c.Request.Body)
		if err != nil || len(raw) == 0 {
			reqLog.Errorw("webhook_read_error")
			c.JSON(http.StatusBadRequest, gin.H{"error": "empty body"})
			return
		}

		// Envelope metadata is best effort; the raw payload is what counts.
		var env marketpay.Envelope
		_ = json.Unmarshal(raw, &env)

		id, err := store.Create(c.Request.Context(), env.EventType, env.PspReference, raw)
		if err != nil {
			reqLog.Errorw("webhook_store_error", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store notification"})
			return
		}

		if err := publisher.PublishTrigger(c.Request.Context(), id); err != nil {
			// Row stays retained; operators can republish the trigger.
			reqLog.Errorw("webhook_publish_error", "id", id, "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to enqueue trigger"})
			return
		}

		reqLog.Infow("webhook_accepted", "id", id, "event_type", env.EventType, "psp_reference", env.PspReference)
		c.JSON(http.StatusOK, notificationAccepted)
	}
}

func RegisterWebhookRoutes(r gin.IRouter, store *notificationstore.Service, publisher *bus.Publisher, log *zap.SugaredLogger) {
	r.POST("/webhook", ApiNotificationWebhook(store, publisher, log))
}
