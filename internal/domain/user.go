package domain

import "time"

// Roles assignable to a user. New accounts default to RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account record. PasswordHash holds the encoded salt+derived-key
// credential, never a plaintext password.
type User struct {
	ID             int64
	Username       string
	Email          string
	PasswordHash   string
	FullName       string
	Role           string
	IsActive       bool
	EmailConfirmed bool
	CreatedAt      time.Time
	LastLoginAt    *time.Time
}

// UserInfo is the sanitized view of a user safe to return to callers.
// It never carries the stored credential.
type UserInfo struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	FullName       string     `json:"fullName,omitempty"`
	Role           string     `json:"role"`
	EmailConfirmed bool       `json:"emailConfirmed"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastLoginAt    *time.Time `json:"lastLoginAt,omitempty"`
}

// Info returns the sanitized view of u.
func (u *User) Info() UserInfo {
	return UserInfo{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FullName:       u.FullName,
		Role:           u.Role,
		EmailConfirmed: u.EmailConfirmed,
		CreatedAt:      u.CreatedAt,
		LastLoginAt:    u.LastLoginAt,
	}
}
