package bus

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

func runConsumer(lc fx.Lifecycle, c *Consumer, log *zap.SugaredLogger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return c.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping notification trigger consumer")
			c.Stop()
			return nil
		},
	})
}

func closePublisher(lc fx.Lifecycle, p *Publisher) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			p.Close()
			return nil
		},
	})
}

var Module = fx.Options(
	fx.Provide(NewPublisher),
	fx.Provide(NewConsumer),
	fx.Invoke(runConsumer),
	fx.Invoke(closePublisher),
)
