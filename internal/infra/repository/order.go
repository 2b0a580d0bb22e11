package repository

import (
	"context"
	"encoding/json"
	"errors"

	"scratch-win/internal/domain/order"
	"scratch-win/internal/infra"

	"github.com/jackc/pgx/v5"
)

type OrderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = "reference, email, amount, line_items, is_eligible, consumed, created_at"

// FindByReference matches case-insensitively; the stored reference keeps
// its original casing.
func (r *OrderRepository) FindByReference(ctx context.Context, reference string) (order.Order, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE lower(reference) = lower($1)",
		reference,
	)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.Order{}, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return order.Order{}, infra.WrapRepoErr("failed to find order by reference", err)
	}
	return o, nil
}

func (r *OrderRepository) Create(ctx context.Context, db DBTX, o order.Order) error {
	lineItems, err := json.Marshal(o.LineItems)
	if err != nil {
		return infra.WrapRepoErr("failed to encode line items", err)
	}

	_, err = db.Exec(ctx,
		`INSERT INTO orders (reference, email, amount, line_items, is_eligible, consumed)
		 VALUES ($1, $2, $3, $4, $5, false)`,
		o.Reference, o.Email, o.Amount, lineItems, o.IsEligible,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("order reference already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

// MarkConsumed flips the consumed flag only when it is still false; the
// returned bool reports whether this call won the transition.
func (r *OrderRepository) MarkConsumed(ctx context.Context, db DBTX, reference string) (bool, error) {
	tag, err := db.Exec(ctx,
		"UPDATE orders SET consumed = true WHERE lower(reference) = lower($1) AND consumed = false",
		reference,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark order consumed", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *OrderRepository) ListRecent(ctx context.Context, limit int32) ([]order.Order, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+orderColumns+" FROM orders ORDER BY created_at DESC LIMIT $1",
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent orders", err)
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order rows", err)
	}
	return orders, nil
}

func scanOrder(row pgx.Row) (order.Order, error) {
	var (
		o         order.Order
		lineItems []byte
	)
	err := row.Scan(&o.Reference, &o.Email, &o.Amount, &lineItems, &o.IsEligible, &o.Consumed, &o.CreatedAt)
	if err != nil {
		return order.Order{}, err
	}
	if len(lineItems) > 0 {
		if err := json.Unmarshal(lineItems, &o.LineItems); err != nil {
			return order.Order{}, err
		}
	}
	return o, nil
}
