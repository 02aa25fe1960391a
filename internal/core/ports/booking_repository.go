package ports

import (
	"context"

	"github.com/careerlounge/consultancy-api/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings. There is no
// delete: bookings are never hard-deleted in normal operation.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// UpdateStatus persists the new status and returns the updated booking.
	// Returns domain.ErrBookingNotFound when id does not resolve.
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	// ListAll returns every booking with the owning user's current name and
	// email joined in, most recent requested date first.
	ListAll(ctx context.Context) ([]*domain.BookingWithOwner, error)
	// ListByUser returns bookings owned by userID, most recent date first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}
