package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jayeshafre/jwt-auth-app/internal/domain"
	apperrors "github.com/jayeshafre/jwt-auth-app/pkg/errors"
	"github.com/jayeshafre/jwt-auth-app/pkg/pagination"
)

// ListUsers returns a page of all users for administrative review.
func (s *AuthService) ListUsers(ctx context.Context, params pagination.Params) (*pagination.Result[domain.User], error) {
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	users, err := s.userRepo.List(ctx, params.PerPage, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	result := pagination.NewResult(users, total, params)
	return &result, nil
}

// SetUserRole changes a user's role.
func (s *AuthService) SetUserRole(ctx context.Context, userID, role string) (*domain.User, error) {
	if !domain.IsValidRole(role) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("role must be one of %v", domain.ValidRoles()))
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user for role change: %w", err)
	}

	if user.Role == role {
		return user, nil
	}

	user.Role = role
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user role: %w", err)
	}

	if err := s.producer.PublishUserUpdated(ctx, user); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish user.updated event",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "user role changed",
		slog.String("user_id", user.ID),
		slog.String("role", role),
	)

	return user, nil
}

// SetUserStatus activates or deactivates a user account. Deactivated users
// cannot log in and their refresh tokens stop being accepted.
func (s *AuthService) SetUserStatus(ctx context.Context, userID string, active bool) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user for status change: %w", err)
	}

	if user.IsActive == active {
		return user, nil
	}

	user.IsActive = active
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user status: %w", err)
	}

	if err := s.producer.PublishUserUpdated(ctx, user); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish user.updated event",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "user status changed",
		slog.String("user_id", user.ID),
		slog.Bool("is_active", active),
	)

	return user, nil
}

// SetUserVerified marks a user's email address as verified or unverified.
func (s *AuthService) SetUserVerified(ctx context.Context, userID string, verified bool) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user for verification change: %w", err)
	}

	if user.IsVerified == verified {
		return user, nil
	}

	user.IsVerified = verified
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user verification: %w", err)
	}

	if err := s.producer.PublishUserUpdated(ctx, user); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish user.updated event",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "user verification changed",
		slog.String("user_id", user.ID),
		slog.Bool("is_verified", verified),
	)

	return user, nil
}
