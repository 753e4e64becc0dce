package ports

import (
	"context"

	"github.com/multixy/storefront/internal/core/domain"
)

// CartService defines cart use cases. The acting user always comes from the
// authenticated identity, never from the request body.
type CartService interface {
	// AddItem adds a product to the cart, or increments the quantity when
	// the product is already present.
	AddItem(ctx context.Context, userID, productID string, quantity int) (*domain.CartItem, error)
	ListByUser(ctx context.Context, userID string) ([]domain.CartLine, error)
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*domain.CartItem, error)
	Remove(ctx context.Context, userID, productID string) (*domain.CartItem, error)
}
