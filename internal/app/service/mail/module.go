package mail

import (
	"github.com/fatflowers/marketlink/internal/app/service/listener"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(New),
	fx.Provide(func(s *Service) listener.EmailGateway { return s }),
)
