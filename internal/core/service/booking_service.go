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

// sendTimeout bounds the synchronous confirm/reject notification send.
const sendTimeout = 10 * time.Second

// BookingService implements the booking ledger use cases.
type BookingService struct {
	repo     ports.BookingRepository
	mailer   ports.Mailer
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewBookingService(
	repo ports.BookingRepository,
	mailer ports.Mailer,
	notifier ports.Notifier,
	logger zerolog.Logger,
) *BookingService {
	return &BookingService{repo: repo, mailer: mailer, notifier: notifier, logger: logger}
}

// Create validates the input, persists the booking with status pending and
// enqueues a fire-and-forget notification to the admin inbox. A failed admin
// notification never affects the creation response.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	if input.Name == "" || input.Email == "" || input.Phone == "" ||
		input.Service == "" || input.Date.IsZero() || input.TimeSlot == "" {
		return nil, fmt.Errorf("%w: all fields except notes are required", domain.ErrValidation)
	}
	if !domain.IsValidService(input.Service) {
		return nil, fmt.Errorf("%w: unknown service %q", domain.ErrValidation, input.Service)
	}
	if input.OwnerID == "" {
		return nil, fmt.Errorf("%w: missing owner", domain.ErrValidation)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		UserID:    input.OwnerID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Service:   input.Service,
		Date:      input.Date,
		TimeSlot:  input.TimeSlot,
		Notes:     input.Notes,
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.OwnerID).Msg("failed to create booking")
		return nil, err
	}

	s.notifier.Enqueue(ports.NotificationJob{Kind: ports.NotifyBookingReceived, Booking: created})

	metrics.BookingsCreatedTotal.WithLabelValues(created.Service).Inc()
	s.logger.Info().
		Str("booking_id", created.ID).
		Str("user_id", created.UserID).
		Str("service", created.Service).
		Msg("booking created")

	return created, nil
}

// ListAll returns every booking with the owner identity joined in.
func (s *BookingService) ListAll(ctx context.Context) ([]*domain.BookingWithOwner, error) {
	return s.repo.ListAll(ctx)
}

// ListForOwner returns only bookings owned by ownerID. Callers pass the id
// from the verified session, so there is no cross-user read path.
func (s *BookingService) ListForOwner(ctx context.Context, ownerID string) ([]*domain.Booking, error) {
	return s.repo.ListByUser(ctx, ownerID)
}

// UpdateStatus persists the new status, then for confirmed/rejected sends
// the matching notification to the booking's snapshot email. The status
// change is not rolled back when the send fails, but the failure still
// surfaces to the caller so the admin retries the transition.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	metrics.BookingStatusUpdatesTotal.WithLabelValues(string(status)).Inc()

	if status.NotifiesOwner() {
		sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
		defer cancel()

		var sendErr error
		switch status {
		case domain.StatusConfirmed:
			sendErr = s.mailer.BookingConfirmed(sendCtx, updated)
		case domain.StatusRejected:
			sendErr = s.mailer.BookingRejected(sendCtx, updated)
		}
		if sendErr != nil {
			metrics.NotificationsFailedTotal.WithLabelValues(string(status)).Inc()
			s.logger.Error().Err(sendErr).
				Str("booking_id", updated.ID).
				Str("status", string(status)).
				Msg("status notification failed after status was persisted")
			return nil, fmt.Errorf("%w: %v", domain.ErrNotificationFailed, sendErr)
		}
		metrics.NotificationsSentTotal.WithLabelValues(string(status)).Inc()
	}

	s.logger.Info().
		Str("booking_id", updated.ID).
		Str("status", string(status)).
		Msg("booking status updated")

	return updated, nil
}
