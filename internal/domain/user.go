package domain

import (
	"strings"
	"time"
)

// User represents a registered account in the system.
type User struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Username        string     `json:"username"`
	PasswordHash    string     `json:"-"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Phone           string     `json:"phone,omitempty"`
	DateOfBirth     *time.Time `json:"date_of_birth,omitempty"`
	Bio             string     `json:"bio,omitempty"`
	ProfileImageURL string     `json:"profile_image_url,omitempty"`
	Role            string     `json:"role"`
	IsVerified      bool       `json:"is_verified"`
	IsActive        bool       `json:"is_active"`
	LastLogin       *time.Time `json:"last_login,omitempty"`
	LastLoginIP     string     `json:"last_login_ip,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// FullName returns the user's first and last name joined with a space.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Age returns the user's age in full years, or -1 when no date of birth is set.
func (u *User) Age() int {
	if u.DateOfBirth == nil {
		return -1
	}
	now := time.Now().UTC()
	age := now.Year() - u.DateOfBirth.Year()
	// Not yet had the birthday this year.
	if now.Month() < u.DateOfBirth.Month() ||
		(now.Month() == u.DateOfBirth.Month() && now.Day() < u.DateOfBirth.Day()) {
		age--
	}
	return age
}

// NormalizeEmail lowercases and trims an email address. Emails are always
// stored and compared in this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// TokenPair holds an access and refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}
