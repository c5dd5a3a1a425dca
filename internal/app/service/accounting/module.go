package accounting

import (
	"github.com/fatflowers/marketlink/internal/app/service/listener"
	"github.com/fatflowers/marketlink/internal/platform/marketpay"
	"github.com/fatflowers/marketlink/internal/platform/mirakl"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(func(c *marketpay.Client) HolderResolver { return c }),
	fx.Provide(func(c *mirakl.Client) DocumentCreator { return c }),
	fx.Provide(New),
	fx.Provide(func(s *Service) listener.CompensationGateway { return s }),
)
