package ports

import (
	"context"

	"github.com/multixy/storefront/internal/core/domain"
)

// OrderResult is returned after order creation; the WhatsApp link carries the
// order summary as a pre-filled message.
type OrderResult struct {
	Order        *domain.Order
	WhatsAppLink string
}

// OrderService defines order use cases.
type OrderService interface {
	// CreateFromCart turns the user's active cart into a pending order,
	// freezing line prices and clearing the cart.
	CreateFromCart(ctx context.Context, userID string) (*OrderResult, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error)
}
