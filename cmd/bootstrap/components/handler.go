package components

import (
	"scratch-win/internal/handler"
	"scratch-win/internal/handler/api"
	"scratch-win/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRedemptionHandler,
		api.NewSessionHandler,
		api.NewAdminHandler,
		api.NewStatsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
