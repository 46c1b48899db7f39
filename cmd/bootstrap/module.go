package bootstrap

import (
	"barberbook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	SessionModule,
	StateModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
