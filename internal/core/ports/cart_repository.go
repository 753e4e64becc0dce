package ports

import (
	"context"

	"github.com/multixy/storefront/internal/core/domain"
)

// CartRepository defines persistence operations for cart items.
type CartRepository interface {
	Create(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	// FindItem returns the active (non-deleted) cart line for user+product.
	FindItem(ctx context.Context, userID, productID string) (*domain.CartItem, error)
	// ListByUser returns the user's active cart joined with product details.
	ListByUser(ctx context.Context, userID string) ([]domain.CartLine, error)
	UpdateQuantity(ctx context.Context, itemID string, quantity int) (*domain.CartItem, error)
	SoftDelete(ctx context.Context, itemID string) error
	// Clear removes every item of the user's cart, used after order creation.
	Clear(ctx context.Context, userID string) error
}
