package ports

import (
	"context"

	"github.com/careerlounge/consultancy-api/internal/core/domain"
)

// AdminService defines the admin back-office operations on user accounts.
type AdminService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	// DeleteUser removes a user. Fails with domain.ErrLastAdmin when the
	// target is the sole remaining admin.
	DeleteUser(ctx context.Context, id string) (*domain.User, error)
	Stats(ctx context.Context) (*domain.UserStats, error)
}
