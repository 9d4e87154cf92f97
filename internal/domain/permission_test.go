package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin(&User{Role: RoleAdmin}))
	assert.False(t, IsAdmin(&User{Role: RoleModerator}))
	assert.False(t, IsAdmin(&User{Role: RoleUser}))
	assert.False(t, IsAdmin(nil))
}

func TestIsModeratorOrAdmin(t *testing.T) {
	assert.True(t, IsModeratorOrAdmin(&User{Role: RoleAdmin}))
	assert.True(t, IsModeratorOrAdmin(&User{Role: RoleModerator}))
	assert.False(t, IsModeratorOrAdmin(&User{Role: RoleUser}))
	assert.False(t, IsModeratorOrAdmin(nil))
}

func TestIsOwner(t *testing.T) {
	assert.True(t, IsOwner("u-1", "u-1"))
	assert.False(t, IsOwner("u-1", "u-2"))
	assert.False(t, IsOwner("", ""), "unauthenticated requester owns nothing")
}

func TestIsVerifiedAndIsActive(t *testing.T) {
	assert.True(t, IsVerified(&User{IsVerified: true}))
	assert.False(t, IsVerified(&User{}))
	assert.False(t, IsVerified(nil))

	assert.True(t, IsActive(&User{IsActive: true}))
	assert.False(t, IsActive(&User{}))
	assert.False(t, IsActive(nil))
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleUser))
	assert.True(t, IsValidRole(RoleAdmin))
	assert.True(t, IsValidRole(RoleModerator))
	assert.False(t, IsValidRole("superuser"))
	assert.False(t, IsValidRole(""))
}

func TestUser_FullName(t *testing.T) {
	u := &User{FirstName: "Alice", LastName: "Smith"}
	assert.Equal(t, "Alice Smith", u.FullName())

	u = &User{FirstName: "Alice"}
	assert.Equal(t, "Alice", u.FullName())
}

func TestUser_Age(t *testing.T) {
	dob := time.Now().UTC().AddDate(-30, 0, -1)
	u := &User{DateOfBirth: &dob}
	assert.Equal(t, 30, u.Age())

	// Birthday later this year: still 29.
	dob = time.Now().UTC().AddDate(-30, 0, 7)
	u = &User{DateOfBirth: &dob}
	assert.Equal(t, 29, u.Age())

	assert.Equal(t, -1, (&User{}).Age())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", NormalizeEmail("  A@B.com "))
	assert.Equal(t, "alice@example.com", NormalizeEmail("Alice@Example.COM"))
}
