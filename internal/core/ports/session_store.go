package ports

import (
	"context"
	"time"

	"github.com/syndicma/syndic-platform/internal/core/domain"
)

// StoredSession is what the client keeps between app starts: the bearer
// token plus a cached public view used only as a display fallback. The
// cached view is never trusted as proof; restore re-verifies the token.
type StoredSession struct {
	Token      string           `json:"token"`
	CachedUser *domain.AuthUser `json:"cached_user,omitempty"`
}

// SessionStore is the durable client-local holder of the current session.
// Implementations must serialize read-modify-write so a racing logout and
// login cannot interleave (single-writer resource).
type SessionStore interface {
	Get() (*StoredSession, error)
	Set(session StoredSession) error
	Clear() error
}

// TokenRevoker records logged-out token IDs until their natural expiry.
// Verification consults it so a revoked token stops working before its
// expiresAt would.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
