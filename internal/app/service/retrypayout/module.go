package retrypayout

import (
	"github.com/fatflowers/marketlink/internal/app/service/listener"
	"github.com/fatflowers/marketlink/internal/platform/marketpay"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(func(c *marketpay.Client) PayoutSubmitter { return c }),
	fx.Provide(New),
	fx.Provide(func(s *Service) listener.PayoutRetryGateway { return s }),
)
