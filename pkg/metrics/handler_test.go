package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestPrometheusHandler_ServesExposition(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/metrics", prometheusHandler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "go_goroutines")
}

func TestComputeApproximateRequestSize(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "http://example.com/api/v1/notifications/webhook", strings.NewReader(`{"eventType":"ACCOUNT_HOLDER_PAYOUT"}`))
	req.Header.Set("Content-Type", "application/json")

	size := computeApproximateRequestSize(req)

	// request line + host + header + body length
	minimum := len(http.MethodPost) + len("/api/v1/notifications/webhook") + len("example.com") + int(req.ContentLength)
	require.GreaterOrEqual(t, size, minimum)
}

func TestComputeApproximateRequestSize_NoContentLength(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.ContentLength = -1

	size := computeApproximateRequestSize(req)
	require.Equal(t, len(http.MethodGet)+len("/healthz")+len(req.Proto)+len(req.Host), size)
}

func TestMillisecondsSince(t *testing.T) {
	start := time.Now().Add(-250 * time.Millisecond)
	elapsed := MillisecondsSince(start)
	require.GreaterOrEqual(t, elapsed, 250.0)
	require.Less(t, elapsed, 10_000.0)
}
