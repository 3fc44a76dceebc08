package errors

import "errors"

// Sentinel errors for callers to map to user-facing failures.
var (
	ErrInvalidCredentials = errors.New("invalid credentials or username")
	ErrUserExists         = errors.New("username is already taken")
	ErrEmailExists        = errors.New("email address is already in use")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrAccountLocked      = errors.New("account temporarily locked")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrWeakPassword       = errors.New("password does not meet security requirements")
	ErrEmptyPassword      = errors.New("password must not be empty")
	ErrMissingSecret      = errors.New("signing secret is not configured")
)
