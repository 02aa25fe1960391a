package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/careerlounge/consultancy-api/internal/core/domain"
	"github.com/careerlounge/consultancy-api/internal/core/ports"
)

type recordingMailer struct {
	mu       sync.Mutex
	received []string
	resets   []string
	done     []string
	fail     error
}

func (m *recordingMailer) BookingReceived(_ context.Context, b *domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.received = append(m.received, b.Email)
	return nil
}

func (m *recordingMailer) BookingConfirmed(_ context.Context, _ *domain.Booking) error { return nil }
func (m *recordingMailer) BookingRejected(_ context.Context, _ *domain.Booking) error  { return nil }

func (m *recordingMailer) PasswordReset(_ context.Context, u *domain.User, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.resets = append(m.resets, u.Email+" "+url)
	return nil
}

func (m *recordingMailer) PasswordResetDone(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.done = append(m.done, u.Email)
	return nil
}

func (m *recordingMailer) counts() (int, int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.received), len(m.resets), len(m.done)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestDispatcher_ProcessesJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := &recordingMailer{}
	d := NewDispatcher(2, mailer, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(ports.NotificationJob{
		Kind:    ports.NotifyBookingReceived,
		Booking: &domain.Booking{Email: "alice@example.com"},
	})
	d.Enqueue(ports.NotificationJob{
		Kind:     ports.NotifyPasswordReset,
		User:     &domain.User{Email: "bob@example.com"},
		ResetURL: "http://localhost:5173/reset-password?token=abc",
	})
	d.Enqueue(ports.NotificationJob{
		Kind: ports.NotifyPasswordResetDone,
		User: &domain.User{Email: "bob@example.com"},
	})

	waitFor(t, func() bool {
		a, b, c := mailer.counts()
		return a == 1 && b == 1 && c == 1
	})
}

func TestDispatcher_MailerFailureIsSwallowed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := &recordingMailer{fail: errors.New("provider down")}
	d := NewDispatcher(1, mailer, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(ports.NotificationJob{
		Kind:    ports.NotifyBookingReceived,
		Booking: &domain.Booking{Email: "alice@example.com"},
	})
	// A later job still runs after the failure.
	d.Enqueue(ports.NotificationJob{
		Kind: ports.NotifyPasswordResetDone,
		User: &domain.User{Email: "bob@example.com"},
	})

	waitFor(t, func() bool {
		_, _, c := mailer.counts()
		return c == 1
	})
}

func TestDispatcher_UnknownKindDropped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := &recordingMailer{}
	d := NewDispatcher(1, mailer, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(ports.NotificationJob{Kind: ports.NotificationKind("telegram")})
	d.Enqueue(ports.NotificationJob{
		Kind:    ports.NotifyBookingReceived,
		Booking: &domain.Booking{Email: "alice@example.com"},
	})

	waitFor(t, func() bool {
		a, _, _ := mailer.counts()
		return a == 1
	})
}

func TestDispatcher_SameRecipientSameShard(t *testing.T) {
	d := NewDispatcher(4, &recordingMailer{}, zerolog.Nop())

	first := d.shardIndex("alice@example.com")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("alice@example.com"); got != first {
			t.Fatalf("shard index not stable: %d vs %d", got, first)
		}
	}
}
