package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/multixy/storefront/internal/core/domain"
	"github.com/multixy/storefront/internal/core/ports"
)

// CartService implements cart management. The acting user always comes from
// the authenticated identity attached by the authorization gate.
type CartService struct {
	repo     ports.CartRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewCartService(repo ports.CartRepository, products ports.ProductRepository, logger zerolog.Logger) *CartService {
	return &CartService{repo: repo, products: products, logger: logger}
}

// AddItem adds a product to the user's cart; if the product is already
// present, the quantities are summed instead.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) (*domain.CartItem, error) {
	if userID == "" || productID == "" || quantity <= 0 {
		return nil, domain.ErrMissingFields
	}

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindItem(ctx, userID, productID)
	if err != nil && !errors.Is(err, domain.ErrCartItemNotFound) {
		return nil, err
	}
	if existing != nil {
		return s.repo.UpdateQuantity(ctx, existing.ID, existing.Quantity+quantity)
	}

	item := &domain.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, item)
}

func (s *CartService) ListByUser(ctx context.Context, userID string) ([]domain.CartLine, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, domain.ErrMissingFields
	}
	item, err := s.repo.FindItem(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateQuantity(ctx, item.ID, quantity)
}

func (s *CartService) Remove(ctx context.Context, userID, productID string) (*domain.CartItem, error) {
	item, err := s.repo.FindItem(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SoftDelete(ctx, item.ID); err != nil {
		return nil, err
	}
	item.IsDeleted = true
	return item, nil
}
