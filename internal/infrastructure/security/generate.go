package security

import (
	"crypto/rand"
	"math/big"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// GenerateRandom produces a random password of the given length (clamped to a
// minimum of 6). One character from each active class is guaranteed; the
// result is shuffled so the guaranteed characters are not positionally
// predictable. All randomness comes from crypto/rand.
func (c *Credentials) GenerateRandom(length int, includeSymbols bool) (string, error) {
	if length < 6 {
		length = 6
	}

	alphabet := lowercaseChars + uppercaseChars + digitChars
	if includeSymbols {
		alphabet += symbolChars
	}

	classes := []string{lowercaseChars, uppercaseChars, digitChars}
	if includeSymbols {
		classes = append(classes, symbolChars)
	}

	out := make([]byte, 0, length)
	for _, class := range classes {
		ch, err := randomChar(class)
		if err != nil {
			return "", err
		}
		out = append(out, ch)
	}
	for len(out) < length {
		ch, err := randomChar(alphabet)
		if err != nil {
			return "", err
		}
		out = append(out, ch)
	}

	// Fisher-Yates with crypto/rand indices.
	for i := len(out) - 1; i > 0; i-- {
		j, err := randomInt(i + 1)
		if err != nil {
			return "", err
		}
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

func randomChar(set string) (byte, error) {
	i, err := randomInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func randomInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
