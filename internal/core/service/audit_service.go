package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/multixy/storefront/internal/core/domain"
	"github.com/multixy/storefront/internal/core/ports"
)

// AuditTrailService persists auth audit events delivered by the dispatcher.
type AuditTrailService struct {
	repo   ports.AuditRepository
	logger zerolog.Logger
}

func NewAuditTrailService(repo ports.AuditRepository, logger zerolog.Logger) *AuditTrailService {
	return &AuditTrailService{repo: repo, logger: logger}
}

func (s *AuditTrailService) Process(ctx context.Context, event domain.AuditEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		s.logger.Error().Err(err).Str("action", event.Action).Msg("failed to persist audit event")
		return err
	}
	return nil
}
