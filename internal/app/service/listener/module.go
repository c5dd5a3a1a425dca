package listener

import "go.uber.org/fx"

// Module exposes the notification listener via Fx.
var Module = fx.Options(
	fx.Provide(New),
)
