// Package memory provides the in-memory credential store used by tests and
// the demo wiring. It is interchangeable with the MongoDB implementation
// behind ports.UserRepository.
package memory

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

// UserRepository is a mutex-guarded map keyed by user ID.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[string]*domain.User
	nextID int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User), nextID: 1}
}

func clone(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	c := *u
	if u.LastLogin != nil {
		ts := *u.LastLogin
		c.LastLogin = &ts
	}
	return &c
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}

	c := clone(user)
	if c.ID == "" {
		c.ID = strconv.Itoa(r.nextID)
		r.nextID++
	}
	r.users[c.ID] = c
	return clone(c), nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return clone(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return clone(u), nil
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}

	c := clone(user)
	c.PasswordHash = existing.PasswordHash
	c.LastLogin = existing.LastLogin
	r.users[user.ID] = c
	return nil
}

func (r *UserRepository) UpdateLastLogin(_ context.Context, id string, ts time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LastLogin = &ts
	return nil
}

func (r *UserRepository) List(_ context.Context, filter ports.ListUsersFilter) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var users []*domain.User
	for _, u := range r.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(u.Name), needle) &&
				!strings.Contains(u.Email, needle) {
				continue
			}
		}
		users = append(users, clone(u))
	}
	return users, nil
}
