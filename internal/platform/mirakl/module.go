package mirakl

import (
	cfgpkg "github.com/fatflowers/marketlink/pkg/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newClient(cfg *cfgpkg.Config, log *zap.SugaredLogger) *Client {
	return NewClient(cfg.Mirakl.BaseURL, cfg.Mirakl.APIKey, log)
}

var Module = fx.Options(
	fx.Provide(newClient),
)
