package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/multixy/storefront/internal/core/domain"
)

type stubProductRepo struct {
	products map[string]*domain.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.products[p.ID] = p
	return p, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := r.products[id]; ok && !p.IsDeleted {
		copy := *p
		return &copy, nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) List(_ context.Context) ([]*domain.Product, error) { return nil, nil }

func (r *stubProductRepo) Search(_ context.Context, _ string) ([]*domain.Product, error) {
	return nil, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) (*domain.Product, error) {
	return p, nil
}

func (r *stubProductRepo) SoftDelete(_ context.Context, id string) error {
	if p, ok := r.products[id]; ok {
		p.IsDeleted = true
		return nil
	}
	return domain.ErrProductNotFound
}

type recordingCartRepo struct {
	stubCartRepo
	created []*domain.CartItem
	updated map[string]int
}

func newRecordingCartRepo() *recordingCartRepo {
	return &recordingCartRepo{
		stubCartRepo: *newStubCartRepo(),
		updated:      make(map[string]int),
	}
}

func (r *recordingCartRepo) Create(_ context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	copy := *item
	copy.ID = "item_1"
	r.created = append(r.created, &copy)
	return &copy, nil
}

func (r *recordingCartRepo) UpdateQuantity(_ context.Context, itemID string, quantity int) (*domain.CartItem, error) {
	r.updated[itemID] = quantity
	return &domain.CartItem{ID: itemID, Quantity: quantity}, nil
}

func TestCartService_AddItem_New(t *testing.T) {
	products := newStubProductRepo()
	products.products["p1"] = &domain.Product{ID: "p1", Name: "Keyboard", Price: 25}
	cart := newRecordingCartRepo()

	svc := NewCartService(cart, products, zerolog.Nop())

	item, err := svc.AddItem(context.Background(), "user_1", "p1", 2)
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if item.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", item.Quantity)
	}
	if len(cart.created) != 1 {
		t.Fatalf("expected one created item, got %d", len(cart.created))
	}
}

func TestCartService_AddItem_Increments(t *testing.T) {
	products := newStubProductRepo()
	products.products["p1"] = &domain.Product{ID: "p1", Name: "Keyboard", Price: 25}
	cart := newRecordingCartRepo()
	cart.lines["user_1"] = []domain.CartLine{
		{Item: domain.CartItem{ID: "item_1", UserID: "user_1", ProductID: "p1", Quantity: 3}},
	}

	svc := NewCartService(cart, products, zerolog.Nop())

	item, err := svc.AddItem(context.Background(), "user_1", "p1", 2)
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if item.Quantity != 5 {
		t.Fatalf("expected summed quantity 5, got %d", item.Quantity)
	}
	if cart.updated["item_1"] != 5 {
		t.Fatalf("expected update to quantity 5, got %v", cart.updated)
	}
	if len(cart.created) != 0 {
		t.Fatalf("no new item should be created, got %d", len(cart.created))
	}
}

func TestCartService_AddItem_MissingProduct(t *testing.T) {
	svc := NewCartService(newRecordingCartRepo(), newStubProductRepo(), zerolog.Nop())

	if _, err := svc.AddItem(context.Background(), "user_1", "ghost", 1); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCartService_AddItem_Validation(t *testing.T) {
	svc := NewCartService(newRecordingCartRepo(), newStubProductRepo(), zerolog.Nop())

	if _, err := svc.AddItem(context.Background(), "user_1", "p1", 0); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields for zero quantity, got %v", err)
	}
}

func TestCartService_UpdateQuantity_MissingItem(t *testing.T) {
	svc := NewCartService(newRecordingCartRepo(), newStubProductRepo(), zerolog.Nop())

	if _, err := svc.UpdateQuantity(context.Background(), "user_1", "p1", 4); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}
