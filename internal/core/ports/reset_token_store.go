package ports

import "context"

// ResetTokenStore holds single-use password-reset tokens with an expiry.
// Implementations store a hash of the token, never the token itself.
type ResetTokenStore interface {
	// Store associates tokenHash with userID until the TTL elapses.
	Store(ctx context.Context, tokenHash, userID string) error
	// Consume returns the userID for tokenHash and deletes it so the token
	// cannot be replayed. Returns domain.ErrInvalidResetToken when the hash
	// is unknown or expired.
	Consume(ctx context.Context, tokenHash string) (string, error)
}
