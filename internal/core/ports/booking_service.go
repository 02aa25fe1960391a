package ports

import (
	"context"
	"time"

	"github.com/careerlounge/consultancy-api/internal/core/domain"
)

// CreateBookingInput carries all data needed to create a booking. OwnerID is
// always the authenticated caller's id, never client-supplied.
type CreateBookingInput struct {
	OwnerID  string
	Name     string
	Email    string
	Phone    string
	Service  string
	Date     time.Time
	TimeSlot string
	Notes    string
}

// BookingService defines use-case operations for the booking ledger.
type BookingService interface {
	// Create validates the input, persists the booking with status pending
	// and enqueues a fire-and-forget notification to the admin inbox.
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	// ListAll is the admin view: every booking, owner identity joined in.
	ListAll(ctx context.Context) ([]*domain.BookingWithOwner, error)
	// ListForOwner returns only bookings whose UserID equals ownerID.
	ListForOwner(ctx context.Context, ownerID string) ([]*domain.Booking, error)
	// UpdateStatus persists the new status, then for confirmed/rejected
	// synchronously sends the matching notification to the booking's
	// snapshot email. A failed send surfaces as an error even though the
	// status change has already been persisted.
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}
