package ports

import (
	"context"

	"github.com/careerlounge/consultancy-api/internal/core/domain"
)

// Mailer sends transactional email. Implementations must be safe for
// concurrent use; callers decide whether a failed send is fatal.
type Mailer interface {
	// BookingReceived notifies the configured admin inbox of a new booking.
	BookingReceived(ctx context.Context, b *domain.Booking) error
	// BookingConfirmed notifies the booking's snapshot email of approval.
	BookingConfirmed(ctx context.Context, b *domain.Booking) error
	// BookingRejected notifies the booking's snapshot email of rejection.
	BookingRejected(ctx context.Context, b *domain.Booking) error
	// PasswordReset mails a reset link to the user.
	PasswordReset(ctx context.Context, u *domain.User, resetURL string) error
	// PasswordResetDone confirms a completed password reset.
	PasswordResetDone(ctx context.Context, u *domain.User) error
}

// NotificationKind identifies a background notification job type.
type NotificationKind string

const (
	NotifyBookingReceived   NotificationKind = "booking_received"
	NotifyPasswordReset     NotificationKind = "password_reset"
	NotifyPasswordResetDone NotificationKind = "password_reset_done"
)

// NotificationJob is a unit of work for the background mail dispatcher.
// Exactly one of Booking or User is set depending on Kind.
type NotificationJob struct {
	Kind     NotificationKind
	Booking  *domain.Booking
	User     *domain.User
	ResetURL string
}

// Notifier enqueues a notification job without blocking the caller beyond
// channel-buffer capacity. Job failures are logged, never returned.
type Notifier interface {
	Enqueue(job NotificationJob)
}
