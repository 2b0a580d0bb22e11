package queries

import (
	"context"
	"time"

	"scratch-win/internal/domain/order"
	"scratch-win/internal/domain/product"
)

// Read-side ports implemented by internal/infra/repository.

type OrderReadStore interface {
	FindByReference(ctx context.Context, reference string) (order.Order, error)
	ListRecent(ctx context.Context, limit int32) ([]order.Order, error)
}

type ProductReadStore interface {
	ListInStock(ctx context.Context) ([]product.Product, error)
}

type StatsReadStore interface {
	CountPlays(ctx context.Context) (int64, error)
	PrizeDistribution(ctx context.Context) ([]PrizeCount, error)
	SalesTotals(ctx context.Context) (SalesTotals, error)
	EligibilityBreakdown(ctx context.Context) ([]EligibilityBucket, error)
	ProductBreakdown(ctx context.Context) ([]ProductSales, error)
	DailySales(ctx context.Context, days int32) ([]DailySales, error)
}

type PrizeCount struct {
	PrizeName string
	Count     int64
}

type SalesTotals struct {
	TotalOrders  int64
	TotalRevenue float64
}

type EligibilityBucket struct {
	IsEligible  bool
	Count       int64
	TotalAmount float64
}

type ProductSales struct {
	ProductName      string
	TotalQuantity    int64
	OrdersContaining int64
}

type DailySales struct {
	Date    time.Time
	Orders  int64
	Revenue float64
}
