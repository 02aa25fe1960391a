package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/careerlounge/consultancy-api/internal/api/metrics"
	"github.com/careerlounge/consultancy-api/internal/core/domain"
	"github.com/careerlounge/consultancy-api/internal/core/ports"
)

// LeadService implements lead intake. Leads are append-only with a free-form
// status tag; no transition rules and no notifications.
type LeadService struct {
	repo   ports.LeadRepository
	logger zerolog.Logger
}

func NewLeadService(repo ports.LeadRepository, logger zerolog.Logger) *LeadService {
	return &LeadService{repo: repo, logger: logger}
}

func (s *LeadService) Create(ctx context.Context, input ports.CreateLeadInput) (*domain.Lead, error) {
	if input.Name == "" || input.Email == "" || input.Phone == "" || input.Service == "" {
		return nil, fmt.Errorf("%w: name, email, phone and service are required", domain.ErrValidation)
	}
	if !domain.IsValidService(input.Service) {
		return nil, fmt.Errorf("%w: unknown service %q", domain.ErrValidation, input.Service)
	}

	now := time.Now().UTC()
	lead := &domain.Lead{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Service:   input.Service,
		Message:   input.Message,
		Status:    domain.LeadNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, lead)
	if err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create lead")
		return nil, err
	}

	metrics.LeadsCreatedTotal.WithLabelValues(created.Service).Inc()
	s.logger.Info().Str("lead_id", created.ID).Str("service", created.Service).Msg("lead created")
	return created, nil
}

func (s *LeadService) List(ctx context.Context) ([]*domain.Lead, error) {
	return s.repo.List(ctx)
}

func (s *LeadService) UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) (*domain.Lead, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
