package components

import (
	"scratch-win/internal/domain/prize"
	"scratch-win/internal/pkg/clock"
	"scratch-win/internal/usecase/commands"
	"scratch-win/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		prize.NewSelector,
		fx.As(new(commands.PrizeSelector)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRedemptionCommands,
		commands.NewOrderCommands,
		commands.NewSessionCommands,
		commands.NewAuthCommands,
		commands.NewCatalogCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewEligibilityQueries,
		queries.NewOrderQueries,
		queries.NewProductQueries,
		queries.NewStatsQueries,
	),
)
