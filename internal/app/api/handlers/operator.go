package handlers

import (
	"net/http"

	"github.com/fatflowers/marketlink/internal/app/service/notificationstore"
	"github.com/fatflowers/marketlink/internal/platform/bus"
	"github.com/fatflowers/marketlink/pkg/logctx"
	"github.com/fatflowers/marketlink/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @Summary      Scan pending notifications
// @Description  Lists retained notifications awaiting (re)processing, newest first, with optional filters.
// @Tags         Operator
// @Accept       json
// @Produce      json
// @Param        request body notificationstore.ScanRetainedRequest true "Scan request"
// @Success      200  {object}  handlers.RespScanRetained
// @Router       /api/v1/operator/notifications/scan [post]
func ApiScanPendingNotifications(store *notificationstore.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req notificationstore.ScanRetainedRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}

		res, err := store.ScanRetained(c.Request.Context(), &req)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Reprocess a notification
// @Description  Republishes the processing trigger for a retained notification.
// @Tags         Operator
// @Produce      json
// @Param        id  path  string  true  "pending notification id"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/operator/notifications/{id}/reprocess [post]
func ApiReprocessNotification(store *notificationstore.Service, publisher *bus.Publisher, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if _, err := store.FindByID(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		if err := publisher.PublishTrigger(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}

		logctx.FromGin(c, log).Infow("notification_reprocess_triggered", "id", id)
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

func RegisterOperatorRoutes(r gin.IRouter, store *notificationstore.Service, publisher *bus.Publisher, log *zap.SugaredLogger) {
	r.POST("/notifications/scan", ApiScanPendingNotifications(store))
	r.POST("/notifications/:id/reprocess", ApiReprocessNotification(store, publisher, log))
}
