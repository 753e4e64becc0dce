package ports

import (
	"context"

	"github.com/multixy/storefront/internal/core/domain"
)

// UserService defines account management use cases. All results are
// public-safe projections; the password hash never leaves the core.
type UserService interface {
	List(ctx context.Context) ([]*domain.PublicUser, error)
	GetByID(ctx context.Context, id string) (*domain.PublicUser, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.PublicUser, error)
	UpdatePassword(ctx context.Context, id, newPassword string) error
	Delete(ctx context.Context, id string) error
}
