// Package memstore provides an in-memory ports.UserStore. It backs the tests
// and the CLI demo; it is not a persistence layer.
package memstore

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/elifsedaa/uygulama-havuzu-backend/internal/application/ports"
	"github.com/elifsedaa/uygulama-havuzu-backend/internal/domain"
)

type Store struct {
	mu     sync.RWMutex
	users  map[int64]*domain.User
	nextID int64
}

func New() *Store {
	return &Store{users: make(map[int64]*domain.User), nextID: 1}
}

func (s *Store) ByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return clone(u), nil
}

func (s *Store) ByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error) {
	needle := strings.ToLower(strings.TrimSpace(identifier))
	if needle == "" {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.ToLower(u.Username) == needle || strings.ToLower(u.Email) == needle {
			return clone(u), nil
		}
	}
	return nil, nil
}

func (s *Store) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := clone(user)
	stored.ID = s.nextID
	s.nextID++
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	s.users[stored.ID] = stored
	return clone(stored), nil
}

func (s *Store) UpdateLastLogin(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		now := time.Now().UTC()
		u.LastLoginAt = &now
	}
	return nil
}

func (s *Store) UpdateEmailConfirmation(ctx context.Context, id int64, confirmed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		u.EmailConfirmed = confirmed
	}
	return nil
}

func (s *Store) UsernameAvailable(ctx context.Context, name string, excludeID int64) (bool, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID != excludeID && strings.ToLower(u.Username) == needle {
			return false, nil
		}
	}
	return true, nil
}

func (s *Store) EmailAvailable(ctx context.Context, email string, excludeID int64) (bool, error) {
	needle := strings.ToLower(strings.TrimSpace(email))
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID != excludeID && strings.ToLower(u.Email) == needle {
			return false, nil
		}
	}
	return true, nil
}

// SetActive flips the active flag; used by hosts to disable accounts.
func (s *Store) SetActive(ctx context.Context, id int64, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		u.IsActive = active
	}
	return nil
}

func clone(u *domain.User) *domain.User {
	c := *u
	if u.LastLoginAt != nil {
		t := *u.LastLoginAt
		c.LastLoginAt = &t
	}
	return &c
}

var _ ports.UserStore = (*Store)(nil)
