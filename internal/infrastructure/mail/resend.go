// Package mail implements ports.Mailer on the Resend transactional email
// API. Bodies are deliberately small; presentation belongs to the frontend.
package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	"github.com/careerlounge/consultancy-api/internal/core/domain"
)

// Config captures the settings for the Resend mailer.
type Config struct {
	APIKey string
	// From is the sender identity, e.g. "Career Lounge <bookings@example.com>".
	From string
	// AdminEmail receives new-booking notifications.
	AdminEmail string
}

// ResendMailer sends transactional email through Resend.
type ResendMailer struct {
	client *resend.Client
	cfg    Config
	log    zerolog.Logger
}

func NewResendMailer(cfg Config, log zerolog.Logger) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(cfg.APIKey), cfg: cfg, log: log}
}

func (m *ResendMailer) send(ctx context.Context, to, subject, html string) error {
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.cfg.From,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	return nil
}

// BookingReceived notifies the admin inbox of a new booking.
func (m *ResendMailer) BookingReceived(ctx context.Context, b *domain.Booking) error {
	html := fmt.Sprintf(
		"<h2>New Appointment Booking</h2>"+
			"<p><strong>Client:</strong> %s (%s, %s)</p>"+
			"<p><strong>Service:</strong> %s</p>"+
			"<p><strong>Date:</strong> %s</p>"+
			"<p><strong>Time slot:</strong> %s</p>"+
			"<p>Please review and approve or reject this booking in the admin dashboard.</p>",
		b.Name, b.Email, b.Phone, b.Service, b.Date.Format("2006-01-02"), b.TimeSlot,
	)
	return m.send(ctx, m.cfg.AdminEmail, "New Appointment Booking - "+b.Service, html)
}

// BookingConfirmed notifies the booking's snapshot email of approval.
func (m *ResendMailer) BookingConfirmed(ctx context.Context, b *domain.Booking) error {
	html := fmt.Sprintf(
		"<h2>Your Appointment is Confirmed</h2>"+
			"<p>Hello %s,</p>"+
			"<p>Your %s appointment on %s (%s) has been confirmed. We look forward to meeting you.</p>",
		b.Name, b.Service, b.Date.Format("2006-01-02"), b.TimeSlot,
	)
	return m.send(ctx, b.Email, "Your Appointment is Confirmed", html)
}

// BookingRejected notifies the booking's snapshot email of rejection.
func (m *ResendMailer) BookingRejected(ctx context.Context, b *domain.Booking) error {
	html := fmt.Sprintf(
		"<h2>Appointment Status Update</h2>"+
			"<p>Hello %s,</p>"+
			"<p>Unfortunately your appointment request could not be confirmed at this time. "+
			"Please contact us to schedule a different slot.</p>",
		b.Name,
	)
	return m.send(ctx, b.Email, "Appointment Status Update", html)
}

// PasswordReset mails a reset link to the user.
func (m *ResendMailer) PasswordReset(ctx context.Context, u *domain.User, resetURL string) error {
	html := fmt.Sprintf(
		"<h2>Password Reset Request</h2>"+
			"<p>Hello %s,</p>"+
			"<p><a href=%q>Reset your password</a>. The link expires in one hour; "+
			"if you did not request this, ignore this email.</p>",
		u.Name, resetURL,
	)
	return m.send(ctx, u.Email, "Password Reset Request", html)
}

// PasswordResetDone confirms a completed password reset.
func (m *ResendMailer) PasswordResetDone(ctx context.Context, u *domain.User) error {
	html := fmt.Sprintf(
		"<h2>Password Reset Successful</h2>"+
			"<p>Hello %s,</p>"+
			"<p>Your password has been reset. You can now log in with your new password.</p>",
		u.Name,
	)
	return m.send(ctx, u.Email, "Password Reset Confirmation", html)
}
