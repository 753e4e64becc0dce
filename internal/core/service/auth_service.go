package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/multixy/storefront/internal/core/domain"
	"github.com/multixy/storefront/internal/core/ports"
	"github.com/multixy/storefront/internal/core/token"
)

// AuthService implements login, refresh and registration. It is the only
// component that touches both the credential store and the token codec.
type AuthService struct {
	users  ports.UserRepository
	codec  *token.Codec
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *token.Codec, audit ports.AuditRecorder, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, audit: audit, logger: logger}
}

// Login verifies credentials and issues a token pair. Every failure path —
// unknown email, soft-deleted account, wrong password — returns
// domain.ErrInvalidCredentials so the response never reveals which one
// occurred. The distinction is only visible in server-side logs.
func (s *AuthService) Login(ctx context.Context, email, password, clientIP string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Debug().Str("email", email).Msg("login for unknown email")
			s.recordAudit(email, domain.AuditLogin, false, clientIP)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.IsDeleted {
		s.logger.Debug().Str("email", email).Msg("login for deleted account")
		s.recordAudit(email, domain.AuditLogin, false, clientIP)
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Debug().Str("email", email).Msg("login with wrong password")
		s.recordAudit(email, domain.AuditLogin, false, clientIP)
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.codec.IssuePair(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("login succeeded")
	s.recordAudit(email, domain.AuditLogin, true, clientIP)

	return &ports.LoginResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user.Public(),
	}, nil
}

// Refresh validates a refresh token and issues a fresh access token bound to
// the same identity. No credential store round trip is made; the refresh
// token is reused until its own expiry, not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.codec.Verify(refreshToken, token.PurposeRefresh)
	if err != nil {
		return "", domain.ErrTokenInvalid
	}

	access, err := s.codec.Sign(claims.UserID, claims.Email, claims.Role, token.PurposeAccess)
	if err != nil {
		return "", err
	}

	s.recordAudit(claims.Email, domain.AuditRefresh, true, "")
	return access, nil
}

// Register creates a new account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.PublicUser, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrMissingFields
	}

	role := input.Role
	if role == "" {
		role = domain.RoleClient
	}
	if role != domain.RoleAdmin && role != domain.RoleClient {
		return nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		Address:      input.Address,
		Phone:        input.Phone,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created.Public(), nil
}

// RecordLogout keeps the audit trail complete; logout itself is stateless.
func (s *AuthService) RecordLogout(email, clientIP string) {
	s.recordAudit(email, domain.AuditLogout, true, clientIP)
}

func (s *AuthService) recordAudit(email, action string, success bool, clientIP string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		Email:     email,
		Action:    action,
		Success:   success,
		ClientIP:  clientIP,
		CreatedAt: time.Now().UTC(),
	})
}
