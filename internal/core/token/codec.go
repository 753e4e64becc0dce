// Package token implements the purpose-keyed JWT codec used by the auth core.
//
// Access and refresh tokens are signed with disjoint secrets, so possession
// of one token type never grants forgeability of the other. Purpose
// separation is enforced by the key choice alone; there is no purpose field
// inside the payload.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/multixy/storefront/internal/core/domain"
)

// Purpose selects which signing secret and lifetime a token is bound to.
type Purpose string

const (
	PurposeAccess  Purpose = "access"
	PurposeRefresh Purpose = "refresh"
)

// Claims is the decoded token payload: identity plus the registered
// issued-at/expires-at timestamps.
type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Pair is the access/refresh token pair issued at login.
type Pair struct {
	AccessToken  string
	RefreshToken string
}

// Codec signs and verifies HS256 tokens with purpose-specific secrets.
type Codec struct {
	secrets map[Purpose][]byte
	ttls    map[Purpose]time.Duration
}

// NewCodec builds a Codec from the two purpose secrets and lifetimes.
// Secrets and TTLs must be configured externally; they are never defaulted
// or rewritten here, so a misconfigured lifetime surfaces instead of being
// papered over.
func NewCodec(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Codec {
	return &Codec{
		secrets: map[Purpose][]byte{
			PurposeAccess:  []byte(accessSecret),
			PurposeRefresh: []byte(refreshSecret),
		},
		ttls: map[Purpose]time.Duration{
			PurposeAccess:  accessTTL,
			PurposeRefresh: refreshTTL,
		},
	}
}

// TTL returns the configured lifetime for the given purpose.
func (c *Codec) TTL(purpose Purpose) time.Duration {
	return c.ttls[purpose]
}

// Sign issues a token for the given identity, keyed by purpose.
func (c *Codec) Sign(userID, email, role string, purpose Purpose) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttls[purpose])),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secrets[purpose])
}

// Verify checks signature and expiry against the purpose-specific secret.
// Every failure mode — bad signature, malformed structure, expiry, wrong
// purpose — collapses into domain.ErrTokenInvalid so the caller cannot build
// an oracle out of the response.
func (c *Codec) Verify(tokenString string, purpose Purpose) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secrets[purpose], nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

// IssuePair signs one access and one refresh token for the same identity.
func (c *Codec) IssuePair(userID, email, role string) (*Pair, error) {
	access, err := c.Sign(userID, email, role, PurposeAccess)
	if err != nil {
		return nil, err
	}
	refresh, err := c.Sign(userID, email, role, PurposeRefresh)
	if err != nil {
		return nil, err
	}
	return &Pair{AccessToken: access, RefreshToken: refresh}, nil
}
