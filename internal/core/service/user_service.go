package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/multixy/storefront/internal/core/domain"
	"github.com/multixy/storefront/internal/core/ports"
)

// UserService implements account management on top of the user repository.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]*domain.PublicUser, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.PublicUser, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

func (s *UserService) Update(ctx context.Context, id string, update ports.UserUpdate) (*domain.PublicUser, error) {
	user, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// UpdatePassword re-hashes and stores the new password. The current session
// stays valid: access tokens are stateless and expire naturally.
func (s *UserService) UpdatePassword(ctx context.Context, id, newPassword string) error {
	if newPassword == "" {
		return domain.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePasswordHash(ctx, id, string(hash)); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("password updated")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user soft-deleted")
	return nil
}
