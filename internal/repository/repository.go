package repository

import (
	"context"
	"time"

	"github.com/jayeshafre/jwt-auth-app/internal/domain"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create inserts a new user into the store.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique identifier.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update modifies an existing user in the store.
	Update(ctx context.Context, user *domain.User) error

	// UpdateLastLogin records the time and source address of a successful login.
	UpdateLastLogin(ctx context.Context, id string, at time.Time, ip string) error

	// List returns a page of users ordered by creation time, newest first.
	List(ctx context.Context, limit, offset int) ([]domain.User, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int, error)
}

// TokenBlacklist records revoked refresh tokens by their jti until the
// underlying token would have expired anyway.
type TokenBlacklist interface {
	// Add marks a token ID as revoked for the given duration.
	Add(ctx context.Context, jti string, ttl time.Duration) error

	// IsBlacklisted reports whether the token ID has been revoked.
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}
