package order

import (
	"strings"
	"time"
)

// LineItem is informational purchase detail; the redemption core never
// reads it.
type LineItem struct {
	ProductID int64   `json:"product_id,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// Order is a qualifying purchase. Consumed flips to true exactly once, when
// a redemption commits against it; this package never mutates it.
type Order struct {
	Reference  string
	Email      string
	Amount     float64
	LineItems  []LineItem
	IsEligible bool
	Consumed   bool
	CreatedAt  time.Time
}

func New(reference, email string, amount float64, lineItems []LineItem, minPurchaseAmount float64) Order {
	return Order{
		Reference:  reference,
		Email:      strings.ToLower(email),
		Amount:     amount,
		LineItems:  lineItems,
		IsEligible: amount >= minPurchaseAmount,
	}
}

// EmailMatches compares case-insensitively; the stored email is the
// authority.
func (o Order) EmailMatches(email string) bool {
	return strings.EqualFold(o.Email, email)
}

func (o Order) MeetsMinimum(minPurchaseAmount float64) bool {
	return o.Amount >= minPurchaseAmount
}
