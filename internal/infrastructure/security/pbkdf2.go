package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/pbkdf2"

	domerrors "github.com/elifsedaa/uygulama-havuzu-backend/internal/domain/errors"
)

// Params configurable for key derivation.
type Params struct {
	SaltLength int
	KeyLength  int
	Iterations int
}

// DefaultParams returns the reference PBKDF2-SHA256 parameters: 32-byte salt,
// 32-byte key, 10000 iterations.
func DefaultParams() Params {
	return Params{
		SaltLength: 32,
		KeyLength:  32,
		Iterations: 10000,
	}
}

// Credentials implements ports.PasswordHasher using PBKDF2-SHA256.
//
// A stored credential is base64(salt || derivedKey). The iteration count is a
// fixed tunable; it is never derived from input.
type Credentials struct {
	params Params
}

func NewCredentials(params Params) *Credentials {
	if params.SaltLength <= 0 {
		params.SaltLength = 32
	}
	if params.KeyLength <= 0 {
		params.KeyLength = 32
	}
	if params.Iterations <= 0 {
		params.Iterations = 10000
	}
	return &Credentials{params: params}
}

// Hash derives a storage-safe credential from password with a fresh random salt.
func (c *Credentials) Hash(password string) (string, error) {
	if password == "" {
		return "", domerrors.ErrEmptyPassword
	}
	salt := make([]byte, c.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := pbkdf2.Key([]byte(password), salt, c.params.Iterations, c.params.KeyLength, sha256.New)
	blob := make([]byte, 0, c.params.SaltLength+c.params.KeyLength)
	blob = append(blob, salt...)
	blob = append(blob, key...)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Verify reports whether password matches the stored credential. Malformed or
// empty input yields false, never an error. The comparison is constant time.
func (c *Credentials) Verify(password, stored string) bool {
	if password == "" || stored == "" {
		return false
	}
	blob, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return false
	}
	if len(blob) != c.params.SaltLength+c.params.KeyLength {
		return false
	}
	salt := blob[:c.params.SaltLength]
	storedKey := blob[c.params.SaltLength:]
	key := pbkdf2.Key([]byte(password), salt, c.params.Iterations, c.params.KeyLength, sha256.New)
	return subtle.ConstantTimeCompare(storedKey, key) == 1
}
