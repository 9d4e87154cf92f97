package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jayeshafre/jwt-auth-app/internal/domain"
	apperrors "github.com/jayeshafre/jwt-auth-app/pkg/errors"
)

// DB is the subset of pgxpool.Pool the repository needs. It is satisfied by
// both *pgxpool.Pool and the pgxmock pool used in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const userColumns = `id, email, username, password_hash, first_name, last_name, phone, date_of_birth, bio, profile_image_url, role, is_verified, is_active, last_login, last_login_ip, created_at, updated_at`

// UserRepository implements repository.UserRepository using PostgreSQL.
type UserRepository struct {
	db DB
}

// NewUserRepository creates a new PostgreSQL-backed user repository.
func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user into the database.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.db.Exec(ctx, query,
		u.ID,
		u.Email,
		u.Username,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		u.Phone,
		u.DateOfBirth,
		u.Bio,
		u.ProfileImageURL,
		u.Role,
		u.IsVerified,
		u.IsActive,
		u.LastLogin,
		u.LastLoginIP,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		if field, ok := uniqueViolationField(err); ok {
			return apperrors.AlreadyExists("user", field)
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1`

	return r.scanUser(ctx, query, id)
}

// GetByEmail retrieves a user by their email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1`

	return r.scanUser(ctx, query, email)
}

// Update modifies an existing user in the database.
func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	u.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE users
		SET email = $1, username = $2, password_hash = $3, first_name = $4, last_name = $5,
		    phone = $6, date_of_birth = $7, bio = $8, profile_image_url = $9, role = $10,
		    is_verified = $11, is_active = $12, updated_at = $13
		WHERE id = $14`

	ct, err := r.db.Exec(ctx, query,
		u.Email,
		u.Username,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		u.Phone,
		u.DateOfBirth,
		u.Bio,
		u.ProfileImageURL,
		u.Role,
		u.IsVerified,
		u.IsActive,
		u.UpdatedAt,
		u.ID,
	)
	if err != nil {
		if field, ok := uniqueViolationField(err); ok {
			return apperrors.AlreadyExists("user", field)
		}
		return fmt.Errorf("update user: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("user", u.ID)
	}

	return nil
}

// UpdateLastLogin records the time and source address of a successful login.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time, ip string) error {
	query := `UPDATE users SET last_login = $1, last_login_ip = $2 WHERE id = $3`

	ct, err := r.db.Exec(ctx, query, at, ip, id)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("user", id)
	}

	return nil
}

// List returns a page of users ordered by creation time, newest first.
func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := scanUserRow(rows, &u); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}

	if users == nil {
		users = []domain.User{}
	}

	return users, nil
}

// Count returns the total number of users.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// scanUser is a helper that executes a query expected to return a single user row.
func (r *UserRepository) scanUser(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var u domain.User

	err := scanUserRow(r.db.QueryRow(ctx, query, args...), &u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

func scanUserRow(row pgx.Row, u *domain.User) error {
	return row.Scan(
		&u.ID,
		&u.Email,
		&u.Username,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Phone,
		&u.DateOfBirth,
		&u.Bio,
		&u.ProfileImageURL,
		&u.Role,
		&u.IsVerified,
		&u.IsActive,
		&u.LastLogin,
		&u.LastLoginIP,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
}

// uniqueViolationField inspects a PostgreSQL unique constraint violation
// (SQLSTATE 23505) and reports which user column collided.
func uniqueViolationField(err error) (string, bool) {
	if err == nil || !strings.Contains(err.Error(), "23505") {
		return "", false
	}
	if strings.Contains(err.Error(), "username") {
		return "username", true
	}
	return "email", true
}
