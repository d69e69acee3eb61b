package bootstrap

import (
	"checkout-service/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CheckoutConfig { return cfg.Checkout },
		func(cfg config.Config) config.AdminConfig { return cfg.Admin },
		func(cfg config.Config) config.GatewayConfig { return cfg.Gateway },
		func(cfg config.Config) config.NotifyConfig { return cfg.Notify },
		func(cfg config.Config) config.CronConfig { return cfg.Cron },
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
	),
)
