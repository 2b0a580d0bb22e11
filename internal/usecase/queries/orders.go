package queries

import (
	"context"
	"time"

	"scratch-win/internal/domain/order"
	"scratch-win/internal/domain/product"
	"scratch-win/internal/pkg/errs"
)

var ErrQueryFailed = errs.New("query failed")

type OrderView struct {
	Reference  string
	Email      string
	Amount     float64
	LineItems  []order.LineItem
	IsEligible bool
	Consumed   bool
	CreatedAt  time.Time
}

type OrderQueries interface {
	RecentOrders(ctx context.Context, limit int32) ([]*OrderView, error)
}

type ProductQueries interface {
	ListProducts(ctx context.Context) ([]product.Product, error)
}

type orderQueriesImpl struct {
	orders OrderReadStore
}

func NewOrderQueries(orders OrderReadStore) OrderQueries {
	return &orderQueriesImpl{orders: orders}
}

const defaultRecentOrdersLimit = 20

func (q *orderQueriesImpl) RecentOrders(ctx context.Context, limit int32) ([]*OrderView, error) {
	if limit <= 0 {
		limit = defaultRecentOrdersLimit
	}

	orders, err := q.orders.ListRecent(ctx, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	views := make([]*OrderView, len(orders))
	for i, o := range orders {
		views[i] = &OrderView{
			Reference:  o.Reference,
			Email:      o.Email,
			Amount:     o.Amount,
			LineItems:  o.LineItems,
			IsEligible: o.IsEligible,
			Consumed:   o.Consumed,
			CreatedAt:  o.CreatedAt,
		}
	}
	return views, nil
}

type productQueriesImpl struct {
	products ProductReadStore
}

func NewProductQueries(products ProductReadStore) ProductQueries {
	return &productQueriesImpl{products: products}
}

func (q *productQueriesImpl) ListProducts(ctx context.Context) ([]product.Product, error) {
	products, err := q.products.ListInStock(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return products, nil
}
