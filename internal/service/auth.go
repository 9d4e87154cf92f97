package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jayeshafre/jwt-auth-app/internal/auth"
	"github.com/jayeshafre/jwt-auth-app/internal/domain"
	"github.com/jayeshafre/jwt-auth-app/internal/event"
	"github.com/jayeshafre/jwt-auth-app/internal/mail"
	"github.com/jayeshafre/jwt-auth-app/internal/repository"
	apperrors "github.com/jayeshafre/jwt-auth-app/pkg/errors"
)

// bcryptCost is the cost factor for bcrypt password hashing.
const bcryptCost = 12

// minPasswordLength is the minimum password length required.
const minPasswordLength = 8

// AuthService implements the business logic for authentication and account
// management.
type AuthService struct {
	userRepo      repository.UserRepository
	blacklist     repository.TokenBlacklist
	jwtManager    *auth.JWTManager
	resetTokens   *auth.ResetTokenGenerator
	producer      *event.Producer
	mailer        mail.Mailer
	logger        *slog.Logger
	frontendURL   string
	rotateRefresh bool
}

// NewAuthService creates a new auth service.
func NewAuthService(
	userRepo repository.UserRepository,
	blacklist repository.TokenBlacklist,
	jwtManager *auth.JWTManager,
	resetTokens *auth.ResetTokenGenerator,
	producer *event.Producer,
	mailer mail.Mailer,
	logger *slog.Logger,
	frontendURL string,
	rotateRefresh bool,
) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		blacklist:     blacklist,
		jwtManager:    jwtManager,
		resetTokens:   resetTokens,
		producer:      producer,
		mailer:        mailer,
		logger:        logger,
		frontendURL:   frontendURL,
		rotateRefresh: rotateRefresh,
	}
}

// --- Input types ---

// RegisterInput holds the parameters for registering a new user.
type RegisterInput struct {
	Email       string
	Username    string
	Password    string
	FirstName   string
	LastName    string
	Phone       string
	DateOfBirth *time.Time
	IP          string
}

// LoginInput holds the parameters for user login.
type LoginInput struct {
	Email    string
	Password string
	IP       string
}

// UpdateProfileInput holds the parameters for updating a user's profile.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	Username        *string
	FirstName       *string
	LastName        *string
	Phone           *string
	DateOfBirth     *time.Time
	Bio             *string
	ProfileImageURL *string
}

// --- Auth operations ---

// Register creates a new user account, hashes the password, and returns tokens.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, *domain.TokenPair, error) {
	if input.Email == "" {
		return nil, nil, apperrors.InvalidInput("email is required")
	}
	if input.Username == "" {
		return nil, nil, apperrors.InvalidInput("username is required")
	}
	if input.FirstName == "" {
		return nil, nil, apperrors.InvalidInput("first name is required")
	}
	if input.LastName == "" {
		return nil, nil, apperrors.InvalidInput("last name is required")
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        domain.NormalizeEmail(input.Email),
		Username:     input.Username,
		PasswordHash: string(hashedPassword),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		DateOfBirth:  input.DateOfBirth,
		Role:         domain.RoleUser,
		IsActive:     true,
		LastLoginIP:  input.IP,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("create user: %w", err)
	}

	tokens, err := s.generateTokenPair(user)
	if err != nil {
		return nil, nil, fmt.Errorf("generate tokens: %w", err)
	}

	// Publish registration event (non-blocking on failure).
	if err := s.producer.PublishUserRegistered(ctx, user); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish user.registered event",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return user, tokens, nil
}

// Login authenticates a user with email and password, returning tokens.
// Unknown emails and wrong passwords produce the same error so callers
// cannot probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*domain.User, *domain.TokenPair, error) {
	if input.Email == "" {
		return nil, nil, apperrors.InvalidInput("email is required")
	}
	if input.Password == "" {
		return nil, nil, apperrors.InvalidInput("password is required")
	}

	user, err := s.userRepo.GetByEmail(ctx, domain.NormalizeEmail(input.Email))
	if err != nil {
		return nil, nil, apperrors.InvalidCredentials("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, nil, apperrors.InvalidCredentials("invalid email or password")
	}

	if !user.IsActive {
		return nil, nil, apperrors.InvalidCredentials("account is disabled")
	}

	tokens, err := s.generateTokenPair(user)
	if err != nil {
		return nil, nil, fmt.Errorf("generate tokens: %w", err)
	}

	now := time.Now().UTC()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now, input.IP); err != nil {
		s.logger.ErrorContext(ctx, "failed to record last login",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()),
		)
	} else {
		user.LastLogin = &now
		user.LastLoginIP = input.IP
	}

	s.logger.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return user, tokens, nil
}

// Logout revokes a refresh token by blacklisting its jti for the remainder
// of its lifetime. Every failure collapses into the same invalid token error.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return apperrors.InvalidToken("invalid token")
	}

	revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil || revoked {
		return apperrors.InvalidToken("invalid token")
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.blacklist.Add(ctx, claims.ID, ttl); err != nil {
		s.logger.ErrorContext(ctx, "failed to blacklist refresh token",
			slog.String("user_id", claims.UserID),
			slog.String("error", err.Error()),
		)
		return apperrors.InvalidToken("invalid token")
	}

	s.logger.InfoContext(ctx, "user logged out",
		slog.String("user_id", claims.UserID),
	)

	return nil
}

// Refresh validates a refresh token and issues a new access token. When
// rotation is enabled the presented refresh token is revoked and a new one
// issued alongside.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if refreshToken == "" {
		return nil, apperrors.InvalidInput("refresh token is required")
	}

	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.InvalidToken("invalid or expired refresh token")
	}

	revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check token blacklist: %w", err)
	}
	if revoked {
		return nil, apperrors.InvalidToken("refresh token has been revoked")
	}

	// Fetch user to get current email/role for the new access token.
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.InvalidToken("invalid or expired refresh token")
	}
	if !user.IsActive {
		return nil, apperrors.InvalidToken("account is disabled")
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	pair := &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}

	if s.rotateRefresh {
		newRefresh, err := s.jwtManager.GenerateRefreshToken(user.ID)
		if err != nil {
			return nil, fmt.Errorf("generate refresh token: %w", err)
		}
		if err := s.blacklist.Add(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
			return nil, fmt.Errorf("revoke rotated refresh token: %w", err)
		}
		pair.RefreshToken = newRefresh
	}

	s.logger.InfoContext(ctx, "tokens refreshed",
		slog.String("user_id", user.ID),
	)

	return pair, nil
}

// --- Password operations ---

// ChangePassword allows an authenticated user to change their password.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if currentPassword == "" {
		return apperrors.InvalidInput("current password is required")
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	if currentPassword == newPassword {
		return apperrors.InvalidInput("new password must be different from current password")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user for password change: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return apperrors.InvalidCredentials("current password is incorrect")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}

	// Changing the hash also invalidates any outstanding reset tokens.
	user.PasswordHash = string(hashedPassword)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	s.logger.InfoContext(ctx, "password changed",
		slog.String("user_id", user.ID),
	)

	return nil
}

// ForgotPassword initiates a password reset. The response is identical
// whether or not the email belongs to an account; only delivery failures
// for real accounts surface as errors.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return apperrors.InvalidInput("email is required")
	}

	user, err := s.userRepo.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		// Do not reveal whether the email exists.
		s.logger.InfoContext(ctx, "password reset requested for unknown email",
			slog.String("email", email),
		)
		return nil
	}
	if !user.IsActive {
		s.logger.InfoContext(ctx, "password reset requested for disabled account",
			slog.String("user_id", user.ID),
		)
		return nil
	}

	token := s.resetTokens.Make(user)
	ref := auth.EncodeUserRef(user.ID)
	msg := mail.PasswordResetEmail(user.Email, user.FirstName, s.frontendURL, ref, token)

	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send password reset email: %w", err)
	}

	s.logger.InfoContext(ctx, "password reset email sent",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return nil
}

// ResetPassword sets a new password for the user identified by userRef,
// provided the reset token verifies against their current account state.
func (s *AuthService) ResetPassword(ctx context.Context, userRef, token, newPassword string) error {
	if token == "" {
		return apperrors.InvalidInput("reset token is required")
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	// A bad user reference means the link itself is broken, which is reported
	// distinctly from a token that no longer verifies.
	userID, err := auth.DecodeUserRef(userRef)
	if err != nil {
		return apperrors.InvalidToken("invalid reset link")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.InvalidToken("invalid reset link")
		}
		return fmt.Errorf("get user for password reset: %w", err)
	}

	if !s.resetTokens.Check(user, token) {
		return apperrors.InvalidToken("invalid or expired reset token")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}

	// Updating the hash invalidates the token that was just used.
	user.PasswordHash = string(hashedPassword)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	if err := s.producer.PublishUserPasswordReset(ctx, user.ID, user.Email); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish user.password_reset event",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "password reset completed",
		slog.String("user_id", user.ID),
	)

	return nil
}

// --- Profile operations ---

// GetProfile retrieves a user by their ID.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user profile: %w", err)
	}
	return user, nil
}

// UpdateProfile updates a user's profile fields.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user for update: %w", err)
	}

	if input.Username != nil {
		if *input.Username == "" {
			return nil, apperrors.InvalidInput("username must not be empty")
		}
		user.Username = *input.Username
	}
	if input.FirstName != nil {
		if *input.FirstName == "" {
			return nil, apperrors.InvalidInput("first name must not be empty")
		}
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		if *input.LastName == "" {
			return nil, apperrors.InvalidInput("last name must not be empty")
		}
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = input.DateOfBirth
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.ProfileImageURL != nil {
		user.ProfileImageURL = *input.ProfileImageURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	// Publish user updated event (non-blocking on failure).
	if err := s.producer.PublishUserUpdated(ctx, user); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish user.updated event",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "user profile updated",
		slog.String("user_id", user.ID),
	)

	return user, nil
}

// --- Helpers ---

// generateTokenPair creates an access and refresh token for the user.
func (s *AuthService) generateTokenPair(user *domain.User) (*domain.TokenPair, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// validatePassword checks that the password meets minimum complexity requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return apperrors.InvalidInput(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	var hasUpper, hasLower, hasDigit bool
	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			hasUpper = true
		case unicode.IsLower(ch):
			hasLower = true
		case unicode.IsDigit(ch):
			hasDigit = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit {
		return apperrors.InvalidInput("password must contain at least one uppercase letter, one lowercase letter, and one digit")
	}

	return nil
}
