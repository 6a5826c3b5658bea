package ports

import (
	"context"

	"github.com/syndicma/syndic-platform/internal/core/domain"
)

// RegisterInput carries the fields for account creation. Self-registration
// leaves Role/Status empty and gets OWNER/PENDING; admin creation may set
// both explicitly.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Avatar   string
	Role     domain.Role
	Status   domain.Status
}

// AuthService orchestrates login, session restoration and logout.
// Logout tears down the locally held session; LogoutToken additionally
// revokes an arbitrary caller-presented token (the HTTP surface).
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.AuthUser, string, error)
	RestoreSession(ctx context.Context) (*domain.AuthUser, error)
	Logout(ctx context.Context) error
	LogoutToken(ctx context.Context, token string) error
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	CurrentUser() *domain.AuthUser
	IsAuthenticated() bool
}
