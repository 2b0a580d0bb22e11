package product

import "time"

type Product struct {
	ID        int64
	Name      string
	Price     float64
	Category  string
	InStock   bool
	CreatedAt time.Time
}
