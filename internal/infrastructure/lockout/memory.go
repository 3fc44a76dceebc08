// Package lockout throttles repeated failed logins per identifier.
package lockout

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/elifsedaa/uygulama-havuzu-backend/internal/application/ports"
)

type entry struct {
	failures    int
	lockedUntil time.Time
}

// MemoryStore is an in-memory LockoutStore suitable for single-instance
// deployment. For multi-instance, use a shared store.
type MemoryStore struct {
	mu       sync.RWMutex
	data     map[string]*entry
	max      int
	cooldown time.Duration
}

// NewMemoryStore returns a lockout store with given max attempts and cooldown.
// maxAttempts 0 = disabled.
func NewMemoryStore(maxAttempts int, cooldown time.Duration) *MemoryStore {
	if cooldown <= 0 {
		cooldown = 15 * time.Minute
	}
	return &MemoryStore{
		data:     make(map[string]*entry),
		max:      maxAttempts,
		cooldown: cooldown,
	}
}

func key(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}

func (s *MemoryStore) IsLocked(ctx context.Context, identifier string) (locked bool, retryAfterSeconds int) {
	if s.max <= 0 {
		return false, 0
	}
	s.mu.RLock()
	e, ok := s.data[key(identifier)]
	s.mu.RUnlock()
	if !ok || e == nil {
		return false, 0
	}
	now := time.Now()
	if now.Before(e.lockedUntil) {
		secs := int(time.Until(e.lockedUntil).Seconds())
		if secs < 1 {
			secs = 1
		}
		return true, secs
	}
	// Cooldown expired; the identifier is unlocked. Failure count is reset on
	// the next RecordFailure or cleared on RecordSuccess.
	return false, 0
}

func (s *MemoryStore) RecordFailure(ctx context.Context, identifier string) {
	if s.max <= 0 {
		return
	}
	k := key(identifier)
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.data[k]
	if e == nil {
		e = &entry{}
		s.data[k] = e
	}
	// If a previously set cooldown expired, reset the count so lockout can
	// apply again. A fresh entry has a zero lockedUntil and must keep counting.
	now := time.Now()
	if !e.lockedUntil.IsZero() && now.After(e.lockedUntil) {
		e.failures = 0
		e.lockedUntil = time.Time{}
	}
	e.failures++
	if e.failures >= s.max {
		e.lockedUntil = now.Add(s.cooldown)
	}
}

func (s *MemoryStore) RecordSuccess(ctx context.Context, identifier string) {
	if s.max <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key(identifier))
}

var _ ports.LockoutStore = (*MemoryStore)(nil)
