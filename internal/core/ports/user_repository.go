package ports

import (
	"context"

	"github.com/careerlounge/consultancy-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	// List returns all users, most recently created first. Password hashes
	// are populated but never serialized by the domain type.
	List(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	// Delete removes a user and returns the deleted record. It must refuse
	// with domain.ErrLastAdmin when the target is the sole remaining admin,
	// atomically with respect to concurrent deletes.
	Delete(ctx context.Context, id string) (*domain.User, error)
}
