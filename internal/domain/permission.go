package domain

// Permission checks are pure functions over the role enum and account flags.
// A nil user stands for an unauthenticated request and denies every check.

// IsAdmin reports whether the user holds the admin role.
func IsAdmin(u *User) bool {
	return u != nil && u.Role == RoleAdmin
}

// IsModeratorOrAdmin reports whether the user holds the moderator or admin role.
func IsModeratorOrAdmin(u *User) bool {
	return u != nil && (u.Role == RoleAdmin || u.Role == RoleModerator)
}

// IsOwner reports whether the requester owns the target resource. Ownership is
// identity equality; mutating operations on owned resources require it, while
// read-only operations do not consult this check.
func IsOwner(requesterID, ownerID string) bool {
	return requesterID != "" && requesterID == ownerID
}

// IsVerified reports whether the user's email address has been verified.
func IsVerified(u *User) bool {
	return u != nil && u.IsVerified
}

// IsActive reports whether the account is active (not soft-deactivated).
func IsActive(u *User) bool {
	return u != nil && u.IsActive
}
