package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandom_ClassGuarantees(t *testing.T) {
	t.Parallel()

	c := NewCredentials(DefaultParams())
	for i := 0; i < 50; i++ {
		pw, err := c.GenerateRandom(12, true)
		require.NoError(t, err)
		require.Len(t, pw, 12)
		assert.True(t, strings.ContainsAny(pw, lowercaseChars), "missing lowercase in %q", pw)
		assert.True(t, strings.ContainsAny(pw, uppercaseChars), "missing uppercase in %q", pw)
		assert.True(t, strings.ContainsAny(pw, digitChars), "missing digit in %q", pw)
		assert.True(t, strings.ContainsAny(pw, symbolChars), "missing symbol in %q", pw)
	}
}

func TestGenerateRandom_NoSymbols(t *testing.T) {
	t.Parallel()

	c := NewCredentials(DefaultParams())
	for i := 0; i < 50; i++ {
		pw, err := c.GenerateRandom(10, false)
		require.NoError(t, err)
		require.Len(t, pw, 10)
		assert.False(t, strings.ContainsAny(pw, symbolChars), "unexpected symbol in %q", pw)
	}
}

func TestGenerateRandom_ClampsLength(t *testing.T) {
	t.Parallel()

	c := NewCredentials(DefaultParams())
	pw, err := c.GenerateRandom(2, true)
	require.NoError(t, err)
	assert.Len(t, pw, 6)
}

func TestGenerateRandom_Distinct(t *testing.T) {
	t.Parallel()

	c := NewCredentials(DefaultParams())
	first, err := c.GenerateRandom(16, true)
	require.NoError(t, err)
	second, err := c.GenerateRandom(16, true)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
