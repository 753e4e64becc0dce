package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/multixy/storefront/internal/core/domain"
)

func newTestCodec() *Codec {
	return NewCodec("access-secret", "refresh-secret", time.Hour, 7*24*time.Hour)
}

func decodeUnverified(t *testing.T, signed string) *Claims {
	t.Helper()
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(signed, &claims); err != nil {
		t.Fatalf("parse: %v", err)
	}
	return &claims
}

func TestCodec_RoundTrip(t *testing.T) {
	c := newTestCodec()

	signed, err := c.Sign("user_1", "alice@example.com", domain.RoleClient, PurposeAccess)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := c.Verify(signed, PurposeAccess)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user_1" {
		t.Fatalf("unexpected user id: %s", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if claims.Role != domain.RoleClient {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Fatalf("expiry not in the future: %v", claims.ExpiresAt)
	}
}

func TestCodec_CrossPurposeRejected(t *testing.T) {
	c := newTestCodec()

	refresh, err := c.Sign("user_1", "alice@example.com", "", PurposeRefresh)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := c.Verify(refresh, PurposeAccess); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for refresh token on access purpose, got %v", err)
	}

	access, err := c.Sign("user_1", "alice@example.com", "", PurposeAccess)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := c.Verify(access, PurposeRefresh); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for access token on refresh purpose, got %v", err)
	}
}

func TestCodec_ExpiredToken(t *testing.T) {
	c := NewCodec("access-secret", "refresh-secret", -time.Minute, 7*24*time.Hour)

	signed, err := c.Sign("user_1", "alice@example.com", "", PurposeAccess)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := c.Verify(signed, PurposeAccess); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}

func TestCodec_TTLPassesThrough(t *testing.T) {
	c := NewCodec("access-secret", "refresh-secret", -time.Minute, 7*24*time.Hour)

	// The configured lifetime is used as given, even when it puts the
	// expiry in the past. Lifetime defaulting belongs to config, not here.
	if got := c.TTL(PurposeAccess); got != -time.Minute {
		t.Fatalf("access ttl rewritten: %v", got)
	}
	if got := c.TTL(PurposeRefresh); got != 7*24*time.Hour {
		t.Fatalf("refresh ttl rewritten: %v", got)
	}

	signed, err := c.Sign("user_1", "alice@example.com", "", PurposeAccess)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	claims := decodeUnverified(t, signed)
	if !claims.ExpiresAt.Time.Before(time.Now()) {
		t.Fatalf("expiry should already be past, got %v", claims.ExpiresAt.Time)
	}
}

func TestCodec_MalformedToken(t *testing.T) {
	c := newTestCodec()

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := c.Verify(tok, PurposeAccess); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for %q, got %v", tok, err)
		}
	}
}

func TestCodec_TamperedSignature(t *testing.T) {
	c := newTestCodec()
	other := NewCodec("another-secret", "refresh-secret", time.Hour, time.Hour)

	signed, err := other.Sign("user_1", "alice@example.com", "", PurposeAccess)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := c.Verify(signed, PurposeAccess); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for foreign signature, got %v", err)
	}
}

func TestCodec_IssuePair(t *testing.T) {
	c := newTestCodec()

	pair, err := c.IssuePair("user_1", "alice@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}

	if _, err := c.Verify(pair.AccessToken, PurposeAccess); err != nil {
		t.Fatalf("access token rejected: %v", err)
	}
	if _, err := c.Verify(pair.RefreshToken, PurposeRefresh); err != nil {
		t.Fatalf("refresh token rejected: %v", err)
	}
}
