package response

import (
	"time"

	"scratch-win/internal/domain/order"
	"scratch-win/internal/domain/product"
	"scratch-win/internal/usecase/commands"
	"scratch-win/internal/usecase/queries"
)

type LoginResponse struct {
	Token string `json:"token"`
}

type CreatedOrderResponse struct {
	OrderReference string           `json:"orderId"`
	Email          string           `json:"email"`
	Amount         float64          `json:"amount"`
	Items          []order.LineItem `json:"items,omitempty"`
	IsEligible     bool             `json:"isEligible"`
	Tier           string           `json:"tier,omitempty"`
}

func FromCreatedOrder(o *commands.CreatedOrder) *CreatedOrderResponse {
	return &CreatedOrderResponse{
		OrderReference: o.Reference,
		Email:          o.Email,
		Amount:         o.Amount,
		Items:          o.LineItems,
		IsEligible:     o.IsEligible,
		Tier:           o.TierName,
	}
}

type OrderResponse struct {
	OrderReference string           `json:"orderId"`
	Email          string           `json:"email"`
	Amount         float64          `json:"amount"`
	Items          []order.LineItem `json:"items,omitempty"`
	IsEligible     bool             `json:"isEligible"`
	Used           bool             `json:"used"`
	CreatedAt      time.Time        `json:"createdAt"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		OrderReference: v.Reference,
		Email:          v.Email,
		Amount:         v.Amount,
		Items:          v.LineItems,
		IsEligible:     v.IsEligible,
		Used:           v.Consumed,
		CreatedAt:      v.CreatedAt,
	}
}

type ProductResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	InStock  bool    `json:"in_stock"`
}

func FromProduct(p product.Product) *ProductResponse {
	return &ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
		InStock:  p.InStock,
	}
}

func FromProducts(products []product.Product) []*ProductResponse {
	out := make([]*ProductResponse, len(products))
	for i, p := range products {
		out[i] = FromProduct(p)
	}
	return out
}
