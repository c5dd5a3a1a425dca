package app

import (
	"time"

	"github.com/fatflowers/marketlink/internal/app/api/server"
	"github.com/fatflowers/marketlink/internal/app/service/accounting"
	"github.com/fatflowers/marketlink/internal/app/service/doccleanup"
	"github.com/fatflowers/marketlink/internal/app/service/listener"
	"github.com/fatflowers/marketlink/internal/app/service/mail"
	"github.com/fatflowers/marketlink/internal/app/service/notificationstore"
	"github.com/fatflowers/marketlink/internal/app/service/retrypayout"
	"github.com/fatflowers/marketlink/internal/platform/bus"
	"github.com/fatflowers/marketlink/internal/platform/db"
	"github.com/fatflowers/marketlink/internal/platform/marketpay"
	"github.com/fatflowers/marketlink/internal/platform/mirakl"
	"github.com/fatflowers/marketlink/pkg/config"
	"github.com/fatflowers/marketlink/pkg/logger"

	"go.uber.org/fx"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	marketpay.Module,
	mirakl.Module,
	gatewayBindings,
	notificationstore.Module,
	mail.Module,
	retrypayout.Module,
	doccleanup.Module,
	accounting.Module,
	listener.Module,
	bus.Module,
	server.Module,
)

// gatewayBindings adapts the platform clients to the listener's gateway
// interfaces.
var gatewayBindings = fx.Options(
	fx.Provide(func(c *marketpay.Client) listener.AccountHolderGateway { return c }),
	fx.Provide(func(c *mirakl.Client) listener.ShopGateway { return c }),
)
