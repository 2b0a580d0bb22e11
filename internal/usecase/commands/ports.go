package commands

import (
	"context"

	"scratch-win/internal/domain/order"
	"scratch-win/internal/domain/play"
	"scratch-win/internal/domain/player"
	"scratch-win/internal/domain/prize"
	"scratch-win/internal/domain/product"
	"scratch-win/internal/infra/repository"

	"github.com/google/uuid"
)

// Write-side ports implemented by internal/infra/repository. Methods that
// take a repository.DBTX participate in the caller's transaction.

type OrderRepository interface {
	FindByReference(ctx context.Context, reference string) (order.Order, error)
	Create(ctx context.Context, db repository.DBTX, o order.Order) error
	MarkConsumed(ctx context.Context, db repository.DBTX, reference string) (bool, error)
}

type PlayRepository interface {
	Create(ctx context.Context, db repository.DBTX, p play.Play) error
	FindByOrderReference(ctx context.Context, reference string) (play.Play, error)
	FindByPlayerID(ctx context.Context, playerID uuid.UUID) (play.Play, error)
}

type PlayerRepository interface {
	FindByEmail(ctx context.Context, email string) (player.Player, error)
	Create(ctx context.Context, p player.Player) error
}

type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (product.Product, error)
	Create(ctx context.Context, name string, price float64, category string) (product.Product, error)
	Update(ctx context.Context, id int64, name *string, price *float64, category *string, inStock *bool) (product.Product, error)
}

// PrizeSelector draws one weighted option from a tier.
type PrizeSelector interface {
	Select(tier prize.Tier) (prize.Option, error)
}
