package doccleanup

import (
	"github.com/fatflowers/marketlink/internal/app/service/listener"
	"github.com/fatflowers/marketlink/internal/platform/mirakl"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(func(c *mirakl.Client) DocumentDeleter { return c }),
	fx.Provide(New),
	fx.Provide(func(s *Service) listener.DocumentCleanupGateway { return s }),
)
