package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/syndicma/syndic-platform/internal/core/domain"
)

// DefaultTokenTTL is the fixed expiry horizon for issued sessions.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Claims is the payload embedded in every session token.
type Claims struct {
	UserID string      `json:"uid"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenMaker signs and verifies session tokens with a process-wide HS256
// secret. Rotating the secret invalidates all outstanding sessions.
type TokenMaker struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenMaker returns a TokenMaker. A non-positive ttl falls back to
// DefaultTokenTTL.
func NewTokenMaker(secret string, ttl time.Duration) *TokenMaker {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenMaker{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured expiry horizon.
func (m *TokenMaker) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token for user carrying its id, email and role, with a
// random JTI so individual tokens can be revoked.
func (m *TokenMaker) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        newTokenID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses and validates a token. Signature mismatch, a non-HS256
// algorithm, structural damage and expiry all collapse into
// domain.ErrInvalidToken.
func (m *TokenMaker) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.UserID == "" || !claims.Role.Valid() {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

func newTokenID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
