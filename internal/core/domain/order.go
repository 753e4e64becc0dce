package domain

import (
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCanceled  OrderStatus = "canceled"
	OrderDelivered OrderStatus = "delivered"
	OrderReturned  OrderStatus = "returned"
)

// validOrderTransitions defines the allowed state machine transitions.
var validOrderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderCanceled, OrderDelivered},
	OrderDelivered: {OrderReturned},
}

// IsValid reports whether s is a member of the closed status set.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderCanceled, OrderDelivered, OrderReturned:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from s to next is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validOrderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderLine is one frozen product line captured at order time.
type OrderLine struct {
	ProductID   string  `json:"product_id" bson:"product_id"`
	ProductName string  `json:"product_name" bson:"product_name"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	UnitPrice   float64 `json:"unit_price" bson:"unit_price"`
}

// Order is created from the user's cart; Total is the sum of line subtotals.
type Order struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	UserID    string      `json:"user_id" bson:"user_id"`
	Total     float64     `json:"total" bson:"total"`
	Status    OrderStatus `json:"status" bson:"status"`
	Lines     []OrderLine `json:"lines" bson:"lines"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
}
