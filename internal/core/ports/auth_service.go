package ports

import (
	"context"

	"github.com/multixy/storefront/internal/core/domain"
)

// LoginResult is returned by a successful login: the token pair plus the
// public-safe user projection for the response body.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.PublicUser
}

// AuthService orchestrates login, refresh and registration.
type AuthService interface {
	// Login verifies credentials and issues a token pair. Unknown email,
	// wrong password and deleted accounts all fail with
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password, clientIP string) (*LoginResult, error)
	// Refresh validates a refresh token and issues a new access token.
	// The refresh token itself is reused, not rotated.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, input RegisterInput) (*domain.PublicUser, error)
	// RecordLogout feeds the audit trail; logout itself is stateless and
	// idempotent, so this never fails.
	RecordLogout(email, clientIP string)
}

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Address   string
	Phone     string
	Role      string
}
