package domain

import (
	"errors"
	"time"
)

// LeadStatus is a free-form tag on a lead. No transition order is enforced.
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadConverted LeadStatus = "converted"
	LeadClosed    LeadStatus = "closed"
)

var leadStatuses = map[LeadStatus]struct{}{
	LeadNew:       {},
	LeadContacted: {},
	LeadConverted: {},
	LeadClosed:    {},
}

var ErrLeadNotFound = errors.New("lead not found")

// IsValid reports whether s belongs to the lead status enumeration.
func (s LeadStatus) IsValid() bool {
	_, ok := leadStatuses[s]
	return ok
}

// Lead is an unauthenticated contact-form submission.
type Lead struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Service   string     `json:"service"`
	Message   string     `json:"message,omitempty"`
	Status    LeadStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
