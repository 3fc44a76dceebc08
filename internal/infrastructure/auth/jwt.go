package auth

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domerrors "github.com/elifsedaa/uygulama-havuzu-backend/internal/domain/errors"
)

// TokenService implements ports.TokenService with HS256.
//
// Validate is the only method that verifies the signature. IsExpired, Claims
// and ExpiryOf decode the payload without verification and exist purely for
// introspection; authorization decisions must go through Validate.
type TokenService struct {
	secret      []byte
	issuer      string
	audience    string
	sessionTTL  time.Duration
	rememberTTL time.Duration
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	UserID   string `json:"uid"`
}

// Config carries token signing settings. Secret must be non-empty.
type Config struct {
	Secret      string
	Issuer      string
	Audience    string
	SessionTTL  time.Duration
	RememberTTL time.Duration
}

// NewTokenService builds the service. A missing secret is a configuration
// error meant to be fatal at startup, not handled per call.
func NewTokenService(cfg Config) (*TokenService, error) {
	if cfg.Secret == "" {
		return nil, domerrors.ErrMissingSecret
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 60 * time.Minute
	}
	if cfg.RememberTTL <= 0 {
		cfg.RememberTTL = 30 * 24 * time.Hour
	}
	return &TokenService{
		secret:      []byte(cfg.Secret),
		issuer:      cfg.Issuer,
		audience:    cfg.Audience,
		sessionTTL:  cfg.SessionTTL,
		rememberTTL: cfg.RememberTTL,
	}, nil
}

// Issue signs a token binding the user's identity and role. The expiry is
// iat + sessionTTL, or iat + rememberTTL when rememberMe is set.
func (t *TokenService) Issue(userID int64, username, email, role string, rememberMe bool) (string, error) {
	now := time.Now()
	ttl := t.sessionTTL
	if rememberMe {
		ttl = t.rememberTTL
	}
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Audience:  jwt.ClaimStrings{t.audience},
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.New().String(),
		},
		Username: username,
		Email:    email,
		Role:     role,
		UserID:   strconv.FormatInt(userID, 10),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Validate verifies signature, issuer, audience and expiry (no leeway) and
// returns the subject id. Any failure yields ErrInvalidToken.
func (t *TokenService) Validate(tokenString string) (int64, error) {
	if tokenString == "" {
		return 0, domerrors.ErrInvalidToken
	}
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	},
		jwt.WithIssuer(t.issuer),
		jwt.WithAudience(t.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, domerrors.ErrInvalidToken
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return 0, domerrors.ErrInvalidToken
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, domerrors.ErrInvalidToken
	}
	return userID, nil
}

// IsExpired reads the expiry without verifying the signature. Malformed
// tokens count as expired.
func (t *TokenService) IsExpired(tokenString string) bool {
	exp, ok := t.ExpiryOf(tokenString)
	if !ok {
		return true
	}
	return !time.Now().Before(exp)
}

// Claims returns every payload claim as a string without verifying the
// signature. ok is false for malformed tokens. Not for authorization.
func (t *TokenService) Claims(tokenString string) (map[string]string, bool) {
	mapClaims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, mapClaims); err != nil {
		return nil, false
	}
	out := make(map[string]string, len(mapClaims))
	for name, value := range mapClaims {
		out[name] = claimString(value)
	}
	return out, true
}

// ExpiryOf returns the token's expiry without verifying the signature.
func (t *TokenService) ExpiryOf(tokenString string) (time.Time, bool) {
	mapClaims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, mapClaims); err != nil {
		return time.Time{}, false
	}
	exp, err := mapClaims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func claimString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// Numeric claims (iat, exp) arrive as float64 from JSON. Integral
		// values render without an exponent or trailing zeros.
		if val == math.Trunc(val) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'g', -1, 64)
	case []interface{}:
		// aud may be a list; single-audience tokens flatten to the one entry.
		if len(val) == 1 {
			return claimString(val[0])
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
