package security

import (
	"strings"

	"github.com/elifsedaa/uygulama-havuzu-backend/internal/application/ports"
)

// Violation reason codes, stable across releases.
const (
	ReasonEmpty      = "empty"
	ReasonTooShort   = "too_short"
	ReasonTooLong    = "too_long"
	ReasonNoLower    = "no_lowercase"
	ReasonNoUpper    = "no_uppercase"
	ReasonNoDigit    = "no_digit"
	ReasonNoSymbol   = "no_symbol"
	ReasonCommon     = "common_password"
	ReasonSequential = "sequential_chars"
	ReasonRepeating  = "repeating_chars"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 128
)

// commonPasswords is a small denylist of frequently used passwords, matched
// case-insensitively.
var commonPasswords = []string{
	"password", "123456", "123456789", "qwerty", "abc123",
	"password123", "admin", "letmein", "welcome", "monkey",
}

// ValidateStrength evaluates the password policy. All rules run independently
// and every violation is collected; only an empty password short-circuits.
func (c *Credentials) ValidateStrength(password string) ports.PolicyResult {
	if password == "" {
		return ports.PolicyResult{Violations: []ports.PolicyViolation{
			{Code: ReasonEmpty, Message: "password must not be empty"},
		}}
	}

	var violations []ports.PolicyViolation
	add := func(code, message string) {
		violations = append(violations, ports.PolicyViolation{Code: code, Message: message})
	}

	if len(password) < minPasswordLength {
		add(ReasonTooShort, "password must be at least 8 characters")
	}
	if len(password) > maxPasswordLength {
		add(ReasonTooLong, "password must not exceed 128 characters")
	}
	if !strings.ContainsAny(password, lowercaseChars) {
		add(ReasonNoLower, "password must contain at least one lowercase letter")
	}
	if !strings.ContainsAny(password, uppercaseChars) {
		add(ReasonNoUpper, "password must contain at least one uppercase letter")
	}
	if !strings.ContainsAny(password, digitChars) {
		add(ReasonNoDigit, "password must contain at least one digit")
	}
	if !strings.ContainsAny(password, symbolChars) {
		add(ReasonNoSymbol, "password must contain at least one symbol (!@#$%^&* etc.)")
	}

	lowered := strings.ToLower(password)
	for _, common := range commonPasswords {
		if lowered == common {
			add(ReasonCommon, "password is too common, choose a more secure one")
			break
		}
	}

	if hasSequentialRun(password) {
		add(ReasonSequential, "password must not contain sequential characters (123, abc)")
	}
	if hasRepeatingRun(password) {
		add(ReasonRepeating, "password must not repeat the same character four or more times")
	}

	return ports.PolicyResult{Valid: len(violations) == 0, Violations: violations}
}

// hasSequentialRun reports a 3-character ascending run such as "abc" or "123".
func hasSequentialRun(s string) bool {
	for i := 0; i+2 < len(s); i++ {
		if s[i]+1 == s[i+1] && s[i+1]+1 == s[i+2] {
			return true
		}
	}
	return false
}

// hasRepeatingRun reports four or more identical consecutive characters.
func hasRepeatingRun(s string) bool {
	for i := 0; i+3 < len(s); i++ {
		if s[i] == s[i+1] && s[i] == s[i+2] && s[i] == s[i+3] {
			return true
		}
	}
	return false
}
