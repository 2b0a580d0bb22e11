package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		reference TEXT UNIQUE NOT NULL,
		email TEXT NOT NULL,
		amount NUMERIC(10, 2) NOT NULL,
		line_items JSONB,
		is_eligible BOOLEAN NOT NULL DEFAULT FALSE,
		consumed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS orders_reference_lower_idx
		ON orders (lower(reference))`,
	`CREATE TABLE IF NOT EXISTS players (
		id BIGSERIAL PRIMARY KEY,
		player_id UUID UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS plays (
		id BIGSERIAL PRIMARY KEY,
		player_id UUID NOT NULL REFERENCES players (player_id),
		order_reference TEXT NOT NULL REFERENCES orders (reference),
		email TEXT NOT NULL,
		prize_name TEXT NOT NULL,
		prize_details JSONB,
		tier_name TEXT NOT NULL,
		played_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	// One committed play per order; the redemption transaction relies on
	// this index to serialize concurrent draws for the same order.
	`CREATE UNIQUE INDEX IF NOT EXISTS plays_order_reference_key
		ON plays (lower(order_reference))`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		price NUMERIC(10, 2) NOT NULL,
		category TEXT NOT NULL DEFAULT 'Other',
		in_stock BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

type seedProduct struct {
	name     string
	price    float64
	category string
}

var defaultCatalog = []seedProduct{
	{"Modak", 60, "Candle"},
	{"Motichoor", 60, "Candle"},
	{"Urli", 290, "Candle"},
	{"Floating Daisy", 45, "Candle"},
	{"Floating Daisy Stick", 60, "Candle"},
	{"Tlight Candle Set", 95, "Candle"},
	{"Heart Shape Tlight", 35, "Candle"},
	{"Tablet", 110, "Candle"},
	{"Tulip", 180, "Candle"},
	{"Heart", 200, "Candle"},
	{"Holding Hand", 200, "Candle"},
	{"Couple", 130, "Candle"},
	{"Bride & Groom", 200, "Candle"},
	{"Light Weight", 80, "Diya"},
	{"Medium Weight", 100, "Diya"},
	{"Heavy Weight", 180, "Diya"},
	{"Damru (set of 2)", 10, "Diya"},
	{"Heavy Flower / Kalash", 600, "ShubhLabh"},
	{"Lotus", 180, "ShubhLabh"},
	{"Moti", 1000, "Bandhanwar"},
	{"Heavy Flower", 1900, "Bandhanwar"},
	{"Light Weight Rangoli", 1000, "Rangoli"},
	{"Heavy", 2400, "Rangoli"},
}

// EnsureSchema creates the tables and indexes when missing and seeds the
// product catalog on first start.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}

	var count int64
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range defaultCatalog {
		_, err := pool.Exec(ctx,
			"INSERT INTO products (name, price, category) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING",
			p.name, p.price, p.category,
		)
		if err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.name, err)
		}
	}

	return nil
}
