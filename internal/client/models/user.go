// Package models defines the Iron LMS domain types exchanged with the
// backend. All of them are immutable snapshots: responses replace values
// wholesale, never partially mutate them.
package models

// Role classifies an account.
type Role string

const (
	RoleStudent    Role = "STUDENT"
	RoleInstructor Role = "INSTRUCTOR"
)

// User is the authenticated account snapshot returned by the backend.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     Role   `json:"role"`
}

// IsInstructor reports whether the user may use the item/lesson console.
func (u *User) IsInstructor() bool {
	return u != nil && u.Role == RoleInstructor
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required"`
}

// AuthResponse is returned by both login and register.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
