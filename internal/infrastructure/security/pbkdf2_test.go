package security

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domerrors "github.com/elifsedaa/uygulama-havuzu-backend/internal/domain/errors"
)

func TestHashAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	c := NewCredentials(DefaultParams())
	stored, err := c.Hash("Correct-Horse-9!")
	require.NoError(t, err)
	require.NotEmpty(t, stored)

	assert.True(t, c.Verify("Correct-Horse-9!", stored))
	assert.False(t, c.Verify("correct-horse-9!", stored))
	assert.False(t, c.Verify("entirely different", stored))
}

func TestHash_EmptyPassword(t *testing.T) {
	t.Parallel()

	c := NewCredentials(DefaultParams())
	_, err := c.Hash("")
	require.ErrorIs(t, err, domerrors.ErrEmptyPassword)
}

func TestHash_FreshSaltPerCall(t *testing.T) {
	t.Parallel()

	c := NewCredentials(DefaultParams())
	first, err := c.Hash("Same-Input-7#")
	require.NoError(t, err)
	second, err := c.Hash("Same-Input-7#")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "distinct salts must yield distinct credentials")
	assert.True(t, c.Verify("Same-Input-7#", first))
	assert.True(t, c.Verify("Same-Input-7#", second))
}

func TestVerify_MalformedStored(t *testing.T) {
	t.Parallel()

	c := NewCredentials(DefaultParams())
	tests := []struct {
		name   string
		stored string
	}{
		{"empty stored", ""},
		{"not base64", "!!!not-base64!!!"},
		{"decodes too short", base64.StdEncoding.EncodeToString([]byte("short"))},
		{"decodes too long", base64.StdEncoding.EncodeToString(make([]byte, 65))},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.False(t, c.Verify("whatever", tt.stored))
		})
	}
}

func TestVerify_EmptyPassword(t *testing.T) {
	t.Parallel()

	c := NewCredentials(DefaultParams())
	stored, err := c.Hash("Non-Empty-5$")
	require.NoError(t, err)
	assert.False(t, c.Verify("", stored))
}

func TestCredential_DecodedWidth(t *testing.T) {
	t.Parallel()

	params := DefaultParams()
	c := NewCredentials(params)
	stored, err := c.Hash("Width-Check-3%")
	require.NoError(t, err)

	blob, err := base64.StdEncoding.DecodeString(stored)
	require.NoError(t, err)
	assert.Len(t, blob, params.SaltLength+params.KeyLength)
}

func TestCredentials_TunableIterations(t *testing.T) {
	t.Parallel()

	params := Params{SaltLength: 32, KeyLength: 32, Iterations: 1000}
	c := NewCredentials(params)
	stored, err := c.Hash("Tunable-Iter-1@")
	require.NoError(t, err)
	assert.True(t, c.Verify("Tunable-Iter-1@", stored))

	// A different iteration count derives a different key.
	other := NewCredentials(Params{SaltLength: 32, KeyLength: 32, Iterations: 2000})
	assert.False(t, other.Verify("Tunable-Iter-1@", stored))
}
