package ports

import (
	"context"

	"github.com/elifsedaa/uygulama-havuzu-backend/internal/domain"
)

// UserStore defines the user persistence collaborator. Implementations are
// supplied by the host application; this module never persists users itself.
//
// Lookup methods return (nil, nil) when no user matches.
type UserStore interface {
	ByID(ctx context.Context, id int64) (*domain.User, error)
	// ByUsernameOrEmail matches either field case-insensitively.
	ByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id int64) error
	UpdateEmailConfirmation(ctx context.Context, id int64, confirmed bool) error
	// UsernameAvailable reports whether name is unused. excludeID ignores one
	// account, for profile updates; pass 0 to check all accounts.
	UsernameAvailable(ctx context.Context, name string, excludeID int64) (bool, error)
	EmailAvailable(ctx context.Context, email string, excludeID int64) (bool, error)
}
