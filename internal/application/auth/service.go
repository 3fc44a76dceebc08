// Package auth orchestrates login, registration, token validation and logout
// over the password and token services plus an externally supplied user store.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/elifsedaa/uygulama-havuzu-backend/internal/application/ports"
	"github.com/elifsedaa/uygulama-havuzu-backend/internal/domain"
)

// User-facing messages. Login failures never reveal whether the user exists.
const (
	msgInvalidCredentials = "invalid credentials or username"
	msgAccountDisabled    = "your account has been disabled, please contact an administrator"
	msgLoginOK            = "login successful, welcome back"
	msgRegisterOK         = "registration successful"
	msgUsernameTaken      = "username is already taken"
	msgEmailTaken         = "email address is already in use"
	msgWeakPassword       = "password does not meet security requirements"
	msgInvalidToken       = "invalid or expired token"
	msgUserInactive       = "user not found or inactive"
	msgUserNotFound       = "user not found"
	msgEmailConfirmed     = "email address confirmed"
	msgLogoutOK           = "logged out successfully"
	msgUnexpected         = "something went wrong, please try again"
)

type LoginInput struct {
	Identifier string `validate:"required,max=100"`
	Password   string `validate:"required,max=128"`
	RememberMe bool
}

type RegisterInput struct {
	Username string `validate:"required,min=3,max=50"`
	Email    string `validate:"required,email,max=100"`
	Password string `validate:"required,max=128"`
	FullName string `validate:"omitempty,max=100"`
}

// LoginData is the payload of a successful login.
type LoginData struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	User      domain.UserInfo `json:"user"`
}

// Service implements the orchestration layer. Each call is independent; the
// service holds no cross-call state.
type Service struct {
	users    ports.UserStore
	hasher   ports.PasswordHasher
	tokens   ports.TokenService
	lockout  ports.LockoutStore
	metrics  ports.AuthMetrics
	validate *validator.Validate
	log      zerolog.Logger
}

// Option configures optional collaborators.
type Option func(*Service)

// WithLockout enables failed-login throttling.
func WithLockout(store ports.LockoutStore) Option {
	return func(s *Service) { s.lockout = store }
}

// WithMetrics enables auth-attempt metric recording.
func WithMetrics(m ports.AuthMetrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(users ports.UserStore, hasher ports.PasswordHasher, tokens ports.TokenService, log zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		validate: validator.New(),
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login authenticates by username-or-email and issues a bearer token. A
// missing user and a wrong password produce the identical generic failure.
func (s *Service) Login(ctx context.Context, in LoginInput) Response[LoginData] {
	if err := s.validate.Struct(&in); err != nil {
		return Fail[LoginData](msgInvalidCredentials)
	}
	identifier := strings.TrimSpace(in.Identifier)

	// IsLocked and the later RecordFailure are separate calls, so concurrent
	// failed logins can overshoot the threshold by a few attempts. Acceptable
	// for throttling; a shared multi-instance store would need a combined
	// check-and-record operation on the port.
	if s.lockout != nil {
		if locked, retryAfter := s.lockout.IsLocked(ctx, identifier); locked {
			s.record("login", false)
			return Fail[LoginData](fmt.Sprintf("too many failed attempts, try again in %d seconds", retryAfter))
		}
	}

	user, err := s.users.ByUsernameOrEmail(ctx, identifier)
	if err != nil {
		return unexpected[LoginData](s, "login", err)
	}
	if user == nil || !s.hasher.Verify(in.Password, user.PasswordHash) {
		if s.lockout != nil {
			s.lockout.RecordFailure(ctx, identifier)
		}
		s.record("login", false)
		return Fail[LoginData](msgInvalidCredentials)
	}
	if !user.IsActive {
		s.record("login", false)
		return Fail[LoginData](msgAccountDisabled)
	}

	token, err := s.tokens.Issue(user.ID, user.Username, user.Email, user.Role, in.RememberMe)
	if err != nil {
		return unexpected[LoginData](s, "login", err)
	}
	expiresAt, ok := s.tokens.ExpiryOf(token)
	if !ok {
		expiresAt = time.Now().Add(time.Hour)
	}

	if s.lockout != nil {
		s.lockout.RecordSuccess(ctx, identifier)
	}
	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		// Login already succeeded; a stale last-login stamp is not fatal.
		s.log.Warn().Err(err).Int64("user_id", user.ID).Msg("update last login")
	}

	s.record("login", true)
	return Succeed(LoginData{Token: token, ExpiresAt: expiresAt, User: user.Info()}, msgLoginOK)
}

// Register creates a new account. Uniqueness is checked before the strength
// policy so a duplicate username never leaks password-policy detail.
func (s *Service) Register(ctx context.Context, in RegisterInput) Response[domain.UserInfo] {
	if err := s.validate.Struct(&in); err != nil {
		s.record("register", false)
		return Fail[domain.UserInfo]("registration details are invalid", fieldErrors(err)...)
	}

	nameFree, err := s.users.UsernameAvailable(ctx, strings.TrimSpace(in.Username), 0)
	if err != nil {
		return unexpected[domain.UserInfo](s, "register", err)
	}
	if !nameFree {
		s.record("register", false)
		return Fail[domain.UserInfo](msgUsernameTaken)
	}
	emailFree, err := s.users.EmailAvailable(ctx, strings.TrimSpace(in.Email), 0)
	if err != nil {
		return unexpected[domain.UserInfo](s, "register", err)
	}
	if !emailFree {
		s.record("register", false)
		return Fail[domain.UserInfo](msgEmailTaken)
	}

	if policy := s.hasher.ValidateStrength(in.Password); !policy.Valid {
		s.record("register", false)
		return Fail[domain.UserInfo](msgWeakPassword, policy.Messages()...)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return unexpected[domain.UserInfo](s, "register", err)
	}
	user := &domain.User{
		Username:       strings.TrimSpace(in.Username),
		Email:          strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash:   hash,
		FullName:       strings.TrimSpace(in.FullName),
		Role:           domain.RoleUser,
		IsActive:       true,
		EmailConfirmed: false,
		CreatedAt:      time.Now().UTC(),
	}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return unexpected[domain.UserInfo](s, "register", err)
	}

	s.record("register", true)
	return Succeed(created.Info(), msgRegisterOK)
}

// ValidateToken verifies the token cryptographically and re-fetches the user;
// a validated token for a deleted or deactivated account is rejected.
func (s *Service) ValidateToken(ctx context.Context, token string) Response[domain.UserInfo] {
	userID, err := s.tokens.Validate(token)
	if err != nil {
		s.record("validate", false)
		return Fail[domain.UserInfo](msgInvalidToken)
	}
	user, err := s.users.ByID(ctx, userID)
	if err != nil {
		return unexpected[domain.UserInfo](s, "validate", err)
	}
	if user == nil || !user.IsActive {
		s.record("validate", false)
		return Fail[domain.UserInfo](msgUserInactive)
	}
	s.record("validate", true)
	return Succeed(user.Info(), "token is valid")
}

// CurrentUser returns the sanitized view of the given account ("who am I").
func (s *Service) CurrentUser(ctx context.Context, userID int64) Response[domain.UserInfo] {
	user, err := s.users.ByID(ctx, userID)
	if err != nil {
		return unexpected[domain.UserInfo](s, "current_user", err)
	}
	if user == nil {
		return Fail[domain.UserInfo](msgUserNotFound)
	}
	return Succeed(user.Info(), "user details retrieved")
}

// ConfirmEmail marks the account's email address as confirmed.
func (s *Service) ConfirmEmail(ctx context.Context, userID int64) Response[bool] {
	user, err := s.users.ByID(ctx, userID)
	if err != nil {
		return unexpected[bool](s, "confirm_email", err)
	}
	if user == nil {
		return Fail[bool](msgUserNotFound)
	}
	if err := s.users.UpdateEmailConfirmation(ctx, userID, true); err != nil {
		return unexpected[bool](s, "confirm_email", err)
	}
	return Succeed(true, msgEmailConfirmed)
}

// Logout acknowledges the logout. Tokens are stateless and remain valid until
// their natural expiry; no revocation list is kept.
func (s *Service) Logout(ctx context.Context, userID int64, token string) Response[bool] {
	return Succeed(true, msgLogoutOK)
}

func (s *Service) record(event string, success bool) {
	if s.metrics != nil {
		s.metrics.RecordAttempt(event, success)
	}
}

// unexpected logs the original cause and converts it to the generic failure
// envelope; the cause is never leaked to the caller.
func unexpected[T any](s *Service, event string, err error) Response[T] {
	s.log.Error().Err(err).Str("event", event).Msg("auth operation failed")
	s.record(event, false)
	return Fail[T](msgUnexpected)
}

func fieldErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fmt.Sprintf("%s failed the %s rule", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return out
}
