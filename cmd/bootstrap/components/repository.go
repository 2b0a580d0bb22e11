package components

import (
	repo_impl "scratch-win/internal/infra/repository"
	"scratch-win/internal/usecase/commands"
	"scratch-win/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		repo_impl.NewTxBeginner,
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			repo_impl.NewPlayRepository,
			fx.As(new(commands.PlayRepository)),
		),
		fx.Annotate(
			repo_impl.NewPlayerRepository,
			fx.As(new(commands.PlayerRepository)),
		),
		fx.Annotate(
			repo_impl.NewProductRepository,
			fx.As(new(commands.ProductRepository)),
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			repo_impl.NewStatsRepository,
			fx.As(new(queries.StatsReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repo_impl.DBTX {
	return pool
}
