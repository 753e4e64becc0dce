package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/multixy/storefront/internal/core/domain"
	"github.com/multixy/storefront/internal/core/ports"
)

// OrderService turns carts into orders and manages order status transitions.
type OrderService struct {
	repo           ports.OrderRepository
	cart           ports.CartRepository
	whatsappNumber string
	logger         zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, cart ports.CartRepository, whatsappNumber string, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, cart: cart, whatsappNumber: whatsappNumber, logger: logger}
}

// CreateFromCart loads the user's active cart, freezes line prices into a
// pending order, clears the cart, and builds the WhatsApp deep link carrying
// the order summary.
func (s *OrderService) CreateFromCart(ctx context.Context, userID string) (*ports.OrderResult, error) {
	lines, err := s.cart.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var total float64
	orderLines := make([]domain.OrderLine, 0, len(lines))
	for _, l := range lines {
		if l.Product.IsDeleted {
			// Carted before the product left the catalog; never orderable.
			continue
		}
		total += l.Subtotal()
		orderLines = append(orderLines, domain.OrderLine{
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			Quantity:    l.Item.Quantity,
			UnitPrice:   l.Product.Price,
		})
	}
	if len(orderLines) == 0 {
		return nil, domain.ErrCartEmpty
	}

	order := &domain.Order{
		UserID:    userID,
		Total:     total,
		Status:    domain.OrderPending,
		Lines:     orderLines,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	if err := s.cart.Clear(ctx, userID); err != nil {
		// The order exists; an unclean cart is recoverable, so log and go on.
		s.logger.Error().Err(err).Str("user_id", userID).Str("order_id", created.ID).Msg("failed to clear cart after order")
	}

	s.logger.Info().Str("order_id", created.ID).Str("user_id", userID).Float64("total", total).Msg("order created")

	return &ports.OrderResult{
		Order:        created,
		WhatsAppLink: s.whatsappLink(created),
	}, nil
}

// UpdateStatus applies a status change after validating it against the
// closed status set and the transition map.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidOrderStatus
	}

	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, domain.ErrInvalidOrderStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("order_id", orderID).Str("status", string(status)).Msg("order status updated")
	return updated, nil
}

// whatsappLink builds the wa.me deep link with the order summary pre-filled.
func (s *OrderService) whatsappLink(order *domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order!\nClient: %s\nTotal: %.2f USD\nProducts:\n", order.UserID, order.Total)
	for _, l := range order.Lines {
		fmt.Fprintf(&b, "- %s x%d - %.2f USD\n", l.ProductName, l.Quantity, l.UnitPrice)
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsappNumber, url.QueryEscape(b.String()))
}
