package request

import (
	"scratch-win/internal/domain/order"
)

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type OrderItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Email string             `json:"email" binding:"required,email"`
	Items []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type LineItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
}

// CreateDirectOrderRequest records an order rung up outside the catalog;
// the amount is stated, not derived.
type CreateDirectOrderRequest struct {
	Email  string            `json:"email" binding:"required,email"`
	Amount float64           `json:"amount" binding:"required,gt=0"`
	Items  []LineItemRequest `json:"items" binding:"omitempty,dive"`
}

func (r CreateDirectOrderRequest) ToLineItems() []order.LineItem {
	if len(r.Items) == 0 {
		return nil
	}
	items := make([]order.LineItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = order.LineItem{
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Subtotal: it.Price * float64(it.Quantity),
		}
	}
	return items
}

type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Category string  `json:"category"`
}

type UpdateProductRequest struct {
	Name     *string  `json:"name,omitempty"`
	Price    *float64 `json:"price,omitempty" binding:"omitempty,gt=0"`
	Category *string  `json:"category,omitempty"`
	InStock  *bool    `json:"in_stock,omitempty"`
}
