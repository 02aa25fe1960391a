package ports

import (
	"context"

	"github.com/careerlounge/consultancy-api/internal/core/domain"
)

// LeadRepository defines persistence operations for contact-form leads.
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
	// List returns all leads, most recently created first.
	List(ctx context.Context) ([]*domain.Lead, error)
	// UpdateStatus sets the status tag and returns the updated lead.
	// Returns domain.ErrLeadNotFound when id does not resolve.
	UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) (*domain.Lead, error)
}
