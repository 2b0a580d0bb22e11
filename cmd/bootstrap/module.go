package bootstrap

import (
	"scratch-win/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	PrizeModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
