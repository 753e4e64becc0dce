package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/multixy/storefront/internal/api/metrics"
	"github.com/multixy/storefront/internal/core/domain"
	"github.com/multixy/storefront/internal/core/ports"
)

// LoginLimit bounds login attempts per client IP. When the limiter rejects,
// the request is short-circuited before the credential store is touched.
// When the limiter itself fails (e.g. Redis down), the request is allowed
// through: losing the brute-force bound beats losing all logins.
func LoginLimit(limiter ports.LoginLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("ip", c.RealIP()).Msg("login limiter unavailable, allowing request")
				return next(c)
			}
			if !allowed {
				metrics.LoginRateLimitedTotal.Inc()
				return domain.ErrTooManyAttempts
			}
			return next(c)
		}
	}
}
