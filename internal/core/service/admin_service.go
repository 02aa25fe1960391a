package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/careerlounge/consultancy-api/internal/core/domain"
	"github.com/careerlounge/consultancy-api/internal/core/ports"
)

// AdminService implements the admin back-office operations. The last-admin
// guard lives in the repository so it runs atomically with the delete.
type AdminService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewAdminService(users ports.UserRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{users: users, logger: logger}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) (*domain.User, error) {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", deleted.ID).Str("role", deleted.Role).Msg("user deleted")
	return deleted, nil
}

func (s *AdminService) Stats(ctx context.Context) (*domain.UserStats, error) {
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	admins, err := s.users.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	regulars, err := s.users.CountByRole(ctx, domain.RoleUser)
	if err != nil {
		return nil, err
	}

	return &domain.UserStats{
		TotalUsers:   total,
		AdminUsers:   admins,
		RegularUsers: regulars,
	}, nil
}
