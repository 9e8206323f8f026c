package domain

import "time"

// Role enumerates staff access levels.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleStaff   Role = "STAFF"
)

// ValidRole reports whether the value is a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

// User is a staff account that can log into the dashboard.
type User struct {
	ID        int64
	Email     string
	Password  string // bcrypt hash, or a legacy plaintext value for seeded rows
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identity is the claim set carried by a session token.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Identity derives the token claim set for the user.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Email: u.Email, Role: u.Role}
}
