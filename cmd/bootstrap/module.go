package bootstrap

import (
	"hotel-pricing/cmd/bootstrap/components"
	"hotel-pricing/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

// Module wires config, logging, the in-memory catalog, pricing queries and
// the HTTP handlers.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.CatalogModule,
	components.UseCaseModule,
	components.HandlerModule,
)
