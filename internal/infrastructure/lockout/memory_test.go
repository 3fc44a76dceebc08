package lockout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_LocksAfterMaxFailures(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		s.RecordFailure(ctx, "alice")
		locked, _ := s.IsLocked(ctx, "alice")
		assert.False(t, locked)
	}

	s.RecordFailure(ctx, "alice")
	locked, retryAfter := s.IsLocked(ctx, "alice")
	require.True(t, locked)
	assert.Greater(t, retryAfter, 0)
}

func TestMemoryStore_CountsAccumulateAcrossCalls(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		s.RecordFailure(ctx, "erin")
	}
	locked, _ := s.IsLocked(ctx, "erin")
	assert.True(t, locked, "failures past the threshold must lock")
}

func TestMemoryStore_ExpiredCooldownResetsCount(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(2, time.Minute)
	ctx := context.Background()

	s.RecordFailure(ctx, "frank")
	s.RecordFailure(ctx, "frank")
	locked, _ := s.IsLocked(ctx, "frank")
	require.True(t, locked)

	// Simulate the cooldown elapsing, then a single fresh failure: the stale
	// count is dropped and one failure alone must not re-lock.
	s.mu.Lock()
	s.data[key("frank")].lockedUntil = time.Now().Add(-time.Second)
	s.mu.Unlock()

	s.RecordFailure(ctx, "frank")
	locked, _ = s.IsLocked(ctx, "frank")
	assert.False(t, locked, "count must restart after the cooldown expires")
}

func TestMemoryStore_SuccessClears(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(2, time.Minute)
	ctx := context.Background()

	s.RecordFailure(ctx, "bob")
	s.RecordSuccess(ctx, "bob")
	s.RecordFailure(ctx, "bob")

	locked, _ := s.IsLocked(ctx, "bob")
	assert.False(t, locked, "success must reset the failure count")
}

func TestMemoryStore_KeyNormalization(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(1, time.Minute)
	ctx := context.Background()

	s.RecordFailure(ctx, "  Carol@X.com ")
	locked, _ := s.IsLocked(ctx, "carol@x.com")
	assert.True(t, locked)
}

func TestMemoryStore_Disabled(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore(0, time.Minute)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		s.RecordFailure(ctx, "dave")
	}
	locked, _ := s.IsLocked(ctx, "dave")
	assert.False(t, locked)
}
