package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fatflowers/marketlink/docs"
	"github.com/fatflowers/marketlink/internal/app/api/handlers"
	"github.com/fatflowers/marketlink/internal/app/service/notificationstore"
	"github.com/fatflowers/marketlink/internal/platform/bus"
	cfgpkg "github.com/fatflowers/marketlink/pkg/config"

	mw "github.com/fatflowers/marketlink/internal/app/api/middleware"

	metrics "github.com/fatflowers/marketlink/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	// Request tracing only; request logger & access log are attached per group in registerRoutes
	r.Use(mw.TraceMiddleware())
	return r
}

func registerRoutes(r *gin.Engine, log *zap.SugaredLogger, store *notificationstore.Service, publisher *bus.Publisher, cfg *cfgpkg.Config) {
	// Prometheus metrics
	if cfg != nil && cfg.MetricsAddr != "" {
		p := metrics.NewPrometheus(metrics.NewPrometheusOptions{
			ReqCntURLLabelMappingFn: func(c *gin.Context) string {
				if fp := c.FullPath(); fp != "" {
					return fp
				}
				return c.Request.URL.Path
			},
			Logger: log,
		})
		p.SetListenAddress(cfg.MetricsAddr)
		p.Use(r)

		log.Infow("metrics started", "addr", cfg.MetricsAddr)
	}

	// Public group: request logger + access log
	pub := r.Group("/")
	pub.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware())
	handlers.RegisterHealthRoutes(pub)
	// Swagger UI
	docs.SwaggerInfo.BasePath = "/"
	pub.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Webhook ingestion, basic auth as agreed with the payment platform
	webhook := r.Group("/api/v1/notifications")
	webhook.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware())
	if cfg.Webhook.BasicAuthUser != "" {
		webhook.Use(gin.BasicAuth(gin.Accounts{cfg.Webhook.BasicAuthUser: cfg.Webhook.BasicAuthPassword}))
	}
	handlers.RegisterWebhookRoutes(webhook, store, publisher, log)

	// Operator API behind bearer auth
	operator := r.Group("/api/v1/operator")
	operator.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware(), mw.OperatorAuthMiddleware(cfg.OperatorAPI.JWTSecret))
	handlers.RegisterOperatorRoutes(operator, store, publisher, log)
}

func runServer(lc fx.Lifecycle, log *zap.SugaredLogger, cfg *cfgpkg.Config, r *gin.Engine) {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting HTTP server", "addr", addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Errorf("server error: %v", err)
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 120*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Options(
	fx.Provide(newEngine),
	fx.Invoke(registerRoutes),
	fx.Invoke(runServer),
)
