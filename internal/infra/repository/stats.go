package repository

import (
	"context"

	"scratch-win/internal/infra"
	"scratch-win/internal/usecase/queries"
)

type StatsRepository struct {
	db DBTX
}

func NewStatsRepository(db DBTX) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CountPlays(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM plays").Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count plays", err)
	}
	return count, nil
}

func (r *StatsRepository) PrizeDistribution(ctx context.Context) ([]queries.PrizeCount, error) {
	rows, err := r.db.Query(ctx,
		"SELECT prize_name, COUNT(*) FROM plays GROUP BY prize_name ORDER BY COUNT(*) DESC",
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query prize distribution", err)
	}
	defer rows.Close()

	var distribution []queries.PrizeCount
	for rows.Next() {
		var pc queries.PrizeCount
		if err := rows.Scan(&pc.PrizeName, &pc.Count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan prize count", err)
		}
		distribution = append(distribution, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read prize distribution rows", err)
	}
	return distribution, nil
}

func (r *StatsRepository) SalesTotals(ctx context.Context) (queries.SalesTotals, error) {
	var totals queries.SalesTotals
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM orders",
	).Scan(&totals.TotalOrders, &totals.TotalRevenue)
	if err != nil {
		return queries.SalesTotals{}, infra.WrapRepoErr("failed to query sales totals", err)
	}
	return totals, nil
}

func (r *StatsRepository) EligibilityBreakdown(ctx context.Context) ([]queries.EligibilityBucket, error) {
	rows, err := r.db.Query(ctx,
		"SELECT is_eligible, COUNT(*), COALESCE(SUM(amount), 0) FROM orders GROUP BY is_eligible",
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query eligibility breakdown", err)
	}
	defer rows.Close()

	var buckets []queries.EligibilityBucket
	for rows.Next() {
		var b queries.EligibilityBucket
		if err := rows.Scan(&b.IsEligible, &b.Count, &b.TotalAmount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan eligibility bucket", err)
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read eligibility rows", err)
	}
	return buckets, nil
}

// ProductBreakdown unnests the JSONB line items so each product's sold
// quantity can be aggregated across orders.
func (r *StatsRepository) ProductBreakdown(ctx context.Context) ([]queries.ProductSales, error) {
	rows, err := r.db.Query(ctx,
		`SELECT item->>'name',
		        SUM((item->>'quantity')::int),
		        COUNT(*)
		 FROM orders, jsonb_array_elements(line_items) AS item
		 WHERE line_items IS NOT NULL
		 GROUP BY item->>'name'
		 ORDER BY SUM((item->>'quantity')::int) DESC`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query product breakdown", err)
	}
	defer rows.Close()

	var sales []queries.ProductSales
	for rows.Next() {
		var ps queries.ProductSales
		if err := rows.Scan(&ps.ProductName, &ps.TotalQuantity, &ps.OrdersContaining); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product sales", err)
		}
		sales = append(sales, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read product sales rows", err)
	}
	return sales, nil
}

func (r *StatsRepository) DailySales(ctx context.Context, days int32) ([]queries.DailySales, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DATE(created_at), COUNT(*), COALESCE(SUM(amount), 0)
		 FROM orders
		 GROUP BY DATE(created_at)
		 ORDER BY DATE(created_at) DESC
		 LIMIT $1`,
		days,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query daily sales", err)
	}
	defer rows.Close()

	var daily []queries.DailySales
	for rows.Next() {
		var ds queries.DailySales
		if err := rows.Scan(&ds.Date, &ds.Orders, &ds.Revenue); err != nil {
			return nil, infra.WrapRepoErr("failed to scan daily sales", err)
		}
		daily = append(daily, ds)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read daily sales rows", err)
	}
	return daily, nil
}
