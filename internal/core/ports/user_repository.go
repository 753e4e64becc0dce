package ports

import (
	"context"

	"github.com/multixy/storefront/internal/core/domain"
)

// UserUpdate carries the mutable profile fields; empty strings leave the
// stored value untouched.
type UserUpdate struct {
	FirstName string
	LastName  string
	Address   string
	Phone     string
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns all non-deleted users.
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
	// SoftDelete marks the user deleted; a deleted user must not authenticate.
	SoftDelete(ctx context.Context, id string) error
}
