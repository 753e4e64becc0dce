package domain

import "errors"

// Auth errors. ErrInvalidCredentials is deliberately used for unknown email,
// wrong password and soft-deleted accounts alike so the login response never
// reveals which case occurred.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenMissing       = errors.New("missing token")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// ErrMissingFields signals that required request fields are absent or out of
// range; mapped to 400 at the boundary.
var ErrMissingFields = errors.New("required fields are missing")

// User errors.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

// Catalog errors.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrProductNotFound  = errors.New("product not found")
)

// Cart and order errors.
var (
	ErrCartItemNotFound   = errors.New("product not found in cart")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)
