package domain

import "time"

// CartItem is one product line in a user's cart. Removal is a soft delete,
// matching the rest of the data model.
type CartItem struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	ProductID string    `json:"product_id" bson:"product_id"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	IsDeleted bool      `json:"-" bson:"is_deleted"`
}

// CartLine is a cart item joined with its product, as returned to clients and
// consumed by order creation.
type CartLine struct {
	Item    CartItem `json:"item"`
	Product Product  `json:"product"`
}

// Subtotal returns quantity × unit price for this line.
func (l CartLine) Subtotal() float64 {
	return float64(l.Item.Quantity) * l.Product.Price
}
