package ports

import (
	"context"

	"github.com/careerlounge/consultancy-api/internal/core/domain"
)

// SignupInput carries the fields accepted at account creation.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// AuthService implements signup, login and the password-reset flow.
type AuthService interface {
	// Signup creates a user with role "user" and returns a session token
	// alongside the created record.
	Signup(ctx context.Context, input SignupInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// RequestPasswordReset issues a reset token for the given email and
	// mails a reset link. It reports success even when no account matches,
	// so the endpoint does not leak which emails are registered.
	RequestPasswordReset(ctx context.Context, email string) error
	// ResetPassword consumes a reset token and stores the new password.
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// SessionClaims is the verified content of a session token.
type SessionClaims struct {
	UserID string
	Role   string
}
