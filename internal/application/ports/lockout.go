package ports

import "context"

// LockoutStore tracks failed login attempts and cooldown per identifier.
// The orchestrator treats a nil store as "throttling disabled".
type LockoutStore interface {
	// IsLocked returns true if the identifier is locked, and the remaining cooldown.
	IsLocked(ctx context.Context, identifier string) (locked bool, retryAfterSeconds int)
	// RecordFailure records a failed login; may lock the identifier after N failures.
	RecordFailure(ctx context.Context, identifier string)
	// RecordSuccess clears the failure count (call on successful login).
	RecordSuccess(ctx context.Context, identifier string)
}
