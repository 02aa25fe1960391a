package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/careerlounge/consultancy-api/internal/core/domain"
)

const resetTokenTTL = time.Hour

// ResetTokenStore holds single-use password-reset tokens in Redis.
// Key format: pwreset:<sha256-of-token>, value: user id. Tokens expire after
// resetTokenTTL and are deleted on first use.
type ResetTokenStore struct {
	client *redis.Client
}

// NewResetTokenStore creates a ResetTokenStore wrapping the given client.
func NewResetTokenStore(client *redis.Client) *ResetTokenStore {
	return &ResetTokenStore{client: client}
}

// Store associates tokenHash with userID for resetTokenTTL.
func (s *ResetTokenStore) Store(ctx context.Context, tokenHash, userID string) error {
	if err := s.client.Set(ctx, s.key(tokenHash), userID, resetTokenTTL).Err(); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}
	return nil
}

// Consume returns the user id for tokenHash and deletes the key so the token
// cannot be replayed. GETDEL keeps lookup and invalidation atomic.
func (s *ResetTokenStore) Consume(ctx context.Context, tokenHash string) (string, error) {
	userID, err := s.client.GetDel(ctx, s.key(tokenHash)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrInvalidResetToken
		}
		return "", fmt.Errorf("consume reset token: %w", err)
	}
	return userID, nil
}

func (s *ResetTokenStore) key(tokenHash string) string {
	return "pwreset:" + tokenHash
}
