package ports

import "context"

// LoginLimiter bounds repeated login attempts per client origin within a
// fixed window. Allow consumes one attempt and reports whether the caller is
// still under the threshold.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
