package ports

import "time"

// PolicyViolation is one password-strength rule failure.
type PolicyViolation struct {
	Code    string
	Message string
}

// PolicyResult reports password-strength evaluation. Either Valid is true and
// Violations is empty, or Valid is false and Violations is non-empty.
type PolicyResult struct {
	Valid      bool
	Violations []PolicyViolation
}

// Messages returns the human-readable violation messages in rule order.
func (r PolicyResult) Messages() []string {
	if len(r.Violations) == 0 {
		return nil
	}
	out := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		out[i] = v.Message
	}
	return out
}

// PasswordHasher hashes and verifies passwords and enforces the strength policy.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches the stored credential. Malformed
	// or empty input yields false, never an error.
	Verify(password, stored string) bool
	GenerateRandom(length int, includeSymbols bool) (string, error)
	ValidateStrength(password string) PolicyResult
}

// TokenService issues and validates signed bearer tokens.
//
// Validate is the only method that verifies authenticity. IsExpired, Claims
// and ExpiryOf read the payload without checking the signature and must never
// feed an authorization decision.
type TokenService interface {
	Issue(userID int64, username, email, role string, rememberMe bool) (string, error)
	// Validate verifies signature, issuer, audience and expiry, returning the
	// subject id. Any failure yields domain's ErrInvalidToken.
	Validate(token string) (int64, error)
	// IsExpired reads expiry without signature verification; malformed tokens
	// count as expired.
	IsExpired(token string) bool
	// Claims returns all payload claims as strings without signature
	// verification; ok is false for malformed tokens.
	Claims(token string) (claims map[string]string, ok bool)
	// ExpiryOf returns the expiry timestamp without signature verification;
	// ok is false when the token is malformed or carries no expiry.
	ExpiryOf(token string) (exp time.Time, ok bool)
}
