package ports

import (
	"context"

	"github.com/careerlounge/consultancy-api/internal/core/domain"
)

// CreateLeadInput carries a contact-form submission.
type CreateLeadInput struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Message string
}

// LeadService defines use-case operations for lead intake.
type LeadService interface {
	Create(ctx context.Context, input CreateLeadInput) (*domain.Lead, error)
	List(ctx context.Context) ([]*domain.Lead, error)
	UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) (*domain.Lead, error)
}
