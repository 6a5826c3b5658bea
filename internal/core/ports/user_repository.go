package ports

import (
	"context"
	"time"

	"github.com/syndicma/syndic-platform/internal/core/domain"
)

// ListUsersFilter carries query parameters for listing accounts.
type ListUsersFilter struct {
	Role   domain.Role   // optional
	Status domain.Status // optional
	Search string        // optional: partial match on name or email
}

// UserRepository is the credential store. Implementations return
// domain.ErrUserNotFound / domain.ErrUserExists as appropriate and respect
// the caller's context deadline.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateLastLogin(ctx context.Context, id string, ts time.Time) error
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, error)
}
