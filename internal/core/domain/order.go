package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusAccepted OrderStatus = "accepted"
)

type Order struct {
	ID         string
	Products   []Product
	TotalPrice float64
	Status     OrderStatus
	CreatedAt  time.Time
}

// NewOrder snapshots the selected products and their total price.
// An empty selection yields a valid order with a zero total.
func NewOrder(products []Product) Order {
	items := make([]Product, len(products))
	copy(items, products)

	var total float64
	for _, p := range items {
		total += p.Price
	}

	return Order{
		ID:         uuid.NewString(),
		Products:   items,
		TotalPrice: total,
		Status:     OrderStatusAccepted,
		CreatedAt:  time.Now(),
	}
}

func (o Order) ItemCount() int {
	return len(o.Products)
}
