package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/multixy/storefront/internal/core/domain"
	"github.com/multixy/storefront/internal/core/ports"
)

type stubCategoryRepo struct {
	byID   map[string]*domain.Category
	byName map[string]*domain.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{
		byID:   make(map[string]*domain.Category),
		byName: make(map[string]*domain.Category),
	}
}

func (r *stubCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	category.ID = "cat_1"
	r.byID[category.ID] = category
	r.byName[category.Name] = category
	return category, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	if c, ok := r.byID[id]; ok && !c.IsDeleted {
		return c, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*domain.Category, error) {
	if c, ok := r.byName[name]; ok && !c.IsDeleted {
		return c, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	var out []*domain.Category
	for _, c := range r.byID {
		if !c.IsDeleted {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, category *domain.Category) (*domain.Category, error) {
	if _, ok := r.byID[category.ID]; !ok {
		return nil, domain.ErrCategoryNotFound
	}
	r.byID[category.ID] = category
	return category, nil
}

func (r *stubCategoryRepo) SoftDelete(_ context.Context, id string) error {
	c, ok := r.byID[id]
	if !ok || c.IsDeleted {
		return domain.ErrCategoryNotFound
	}
	c.IsDeleted = true
	return nil
}

func TestCategoryService_Create(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CategoryInput{Name: "drinks"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" || created.Name != "drinks" {
		t.Fatalf("unexpected category: %+v", created)
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("created_at not set")
	}
}

func TestCategoryService_Create_MissingName(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CategoryInput{})
	if !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestCategoryService_Create_DuplicateName(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CategoryInput{Name: "drinks"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.Create(context.Background(), ports.CategoryInput{Name: "drinks"})
	if !errors.Is(err, domain.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
}

func TestCategoryService_Update_PartialFields(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CategoryInput{Name: "drinks", Description: "cold drinks"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.CategoryInput{Name: "beverages"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "beverages" {
		t.Fatalf("name not updated: %+v", updated)
	}
	if updated.Description != "cold drinks" {
		t.Fatalf("description should be untouched: %+v", updated)
	}
}

func TestCategoryService_Delete_NotFound(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())

	err := svc.Delete(context.Background(), "missing")
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
