package queries

import (
	"context"

	"scratch-win/internal/pkg/errs"
)

type PlayStatsView struct {
	TotalPlays   int64
	Distribution []PrizeCount
}

type SalesStatsView struct {
	TotalOrders          int64
	TotalRevenue         float64
	EligibilityBreakdown []EligibilityBucket
	ProductBreakdown     []ProductSales
	DailySales           []DailySales
}

type StatsQueries interface {
	PlayStats(ctx context.Context) (*PlayStatsView, error)
	SalesStats(ctx context.Context) (*SalesStatsView, error)
}

type statsQueriesImpl struct {
	stats StatsReadStore
}

func NewStatsQueries(stats StatsReadStore) StatsQueries {
	return &statsQueriesImpl{stats: stats}
}

const dailySalesWindowDays = 30

func (q *statsQueriesImpl) PlayStats(ctx context.Context) (*PlayStatsView, error) {
	total, err := q.stats.CountPlays(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	distribution, err := q.stats.PrizeDistribution(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	return &PlayStatsView{
		TotalPlays:   total,
		Distribution: distribution,
	}, nil
}

func (q *statsQueriesImpl) SalesStats(ctx context.Context) (*SalesStatsView, error) {
	totals, err := q.stats.SalesTotals(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	eligibility, err := q.stats.EligibilityBreakdown(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	products, err := q.stats.ProductBreakdown(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	daily, err := q.stats.DailySales(ctx, dailySalesWindowDays)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	return &SalesStatsView{
		TotalOrders:          totals.TotalOrders,
		TotalRevenue:         totals.TotalRevenue,
		EligibilityBreakdown: eligibility,
		ProductBreakdown:     products,
		DailySales:           daily,
	}, nil
}
