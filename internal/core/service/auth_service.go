package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/syndicma/syndic-platform/internal/api/metrics"
	"github.com/syndicma/syndic-platform/internal/auth"
	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

const (
	defaultStoreTimeout = 10 * time.Second
	storeRetries        = 2
	storeRetryBackoff   = 250 * time.Millisecond
)

// AuthService implements login, session restoration and logout against a
// credential store, with the current session held as explicit state owned
// by this object (constructed at app start, dropped at shutdown).
type AuthService struct {
	repo         ports.UserRepository
	hasher       *auth.PasswordHasher
	tokens       *auth.TokenMaker
	sessions     ports.SessionStore
	revoker      ports.TokenRevoker // optional; nil disables revocation
	logger       zerolog.Logger
	storeTimeout time.Duration

	mu      sync.RWMutex
	current *domain.AuthUser
	token   string
}

// NewAuthService wires the authentication core. revoker may be nil, in which
// case logged-out tokens simply age out at their natural expiry.
func NewAuthService(
	repo ports.UserRepository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenMaker,
	sessions ports.SessionStore,
	revoker ports.TokenRevoker,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		repo:         repo,
		hasher:       hasher,
		tokens:       tokens,
		sessions:     sessions,
		revoker:      revoker,
		logger:       logger,
		storeTimeout: defaultStoreTimeout,
	}
}

// Login verifies credentials and establishes a session. Unknown email,
// wrong password and non-ACTIVE accounts all fail with the same
// domain.ErrInvalidCredentials. Exactly one lastLogin write happens per
// successful login; failure paths write nothing.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AuthUser, string, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	user, err := s.findByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return nil, "", domain.ErrInvalidCredentials
	case err != nil:
		return nil, "", err
	}

	if user.Status != domain.StatusActive {
		return nil, "", domain.ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	if err := s.withStoreTimeout(ctx, "update_last_login", func(ctx context.Context) error {
		return s.repo.UpdateLastLogin(ctx, user.ID, now)
	}); err != nil {
		// The credential check already passed; a failed lastLogin write must
		// not reject the login. Log and continue.
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("last_login update failed")
	}

	view := user.PublicView()
	if err := s.sessions.Set(ports.StoredSession{Token: token, CachedUser: view}); err != nil {
		s.logger.Warn().Err(err).Msg("session store write failed")
	}

	s.mu.Lock()
	s.current = view
	s.token = token
	s.mu.Unlock()

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login succeeded")
	return view, token, nil
}

// RestoreSession re-establishes the session stored on disk, if any. The
// token is re-verified and the account's live status re-checked; any
// failure clears the stored session and degrades to unauthenticated.
// A nil AuthUser with nil error means "no session".
func (s *AuthService) RestoreSession(ctx context.Context) (*domain.AuthUser, error) {
	stored, err := s.sessions.Get()
	if err != nil || stored == nil || stored.Token == "" {
		metrics.SessionsRestoredTotal.WithLabelValues("no_session").Inc()
		return nil, nil
	}

	claims, err := s.tokens.Verify(stored.Token)
	if err != nil {
		s.discardSession()
		metrics.SessionsRestoredTotal.WithLabelValues("rejected").Inc()
		return nil, nil
	}

	if s.revoker != nil {
		revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
		if err == nil && revoked {
			s.discardSession()
			metrics.SessionsRestoredTotal.WithLabelValues("rejected").Inc()
			return nil, nil
		}
	}

	user, err := s.findByID(ctx, claims.UserID)
	if err != nil || user.Status != domain.StatusActive {
		// Store unreachable or account gone/disabled: do not resurrect the
		// session from the cached copy.
		s.discardSession()
		metrics.SessionsRestoredTotal.WithLabelValues("rejected").Inc()
		return nil, nil
	}

	view := user.PublicView()
	s.mu.Lock()
	s.current = view
	s.token = stored.Token
	s.mu.Unlock()

	metrics.SessionsRestoredTotal.WithLabelValues("restored").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("session restored")
	return view, nil
}

// Logout unconditionally tears down the session. When a revoker is wired
// the token's JTI is denylisted for its remaining lifetime; otherwise the
// token stays technically valid until natural expiry (known limitation).
func (s *AuthService) Logout(ctx context.Context) error {
	s.mu.Lock()
	token := s.token
	s.current = nil
	s.token = ""
	s.mu.Unlock()

	if s.revoker != nil && token != "" {
		if claims, err := s.tokens.Verify(token); err == nil {
			ttl := time.Until(claims.ExpiresAt.Time)
			if ttl > 0 {
				if err := s.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
					s.logger.Warn().Err(err).Msg("token revocation failed")
				}
			}
		}
	}

	return s.sessions.Clear()
}

// LogoutToken revokes the caller-presented token and, when it is the one
// backing the local session, tears that session down too. A malformed token
// is still a successful logout from the caller's point of view.
func (s *AuthService) LogoutToken(ctx context.Context, token string) error {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil
	}

	if s.revoker != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		if ttl > 0 {
			if err := s.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
				s.logger.Warn().Err(err).Msg("token revocation failed")
			}
		}
	}

	s.mu.Lock()
	local := s.token == token
	if local {
		s.current = nil
		s.token = ""
	}
	s.mu.Unlock()

	if local {
		return s.sessions.Clear()
	}
	return nil
}

// Register creates an account. Self-registration (empty role/status) yields
// an OWNER account held in PENDING until an administrator activates it.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	email := domain.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" || input.Name == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role := input.Role
	if role == "" {
		role = domain.RoleOwner
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidCredentials
	}
	status := input.Status
	if status == "" {
		status = domain.StatusPending
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Name:         input.Name,
		Phone:        input.Phone,
		Avatar:       input.Avatar,
		Role:         role,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var created *domain.User
	err = s.withStoreTimeout(ctx, "create", func(ctx context.Context) error {
		var err error
		created, err = s.repo.Create(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CurrentUser returns a snapshot of the authenticated user, or nil.
func (s *AuthService) CurrentUser() *domain.AuthUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	view := *s.current
	return &view
}

// IsAuthenticated reports whether a session is currently established.
func (s *AuthService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

func (s *AuthService) discardSession() {
	if err := s.sessions.Clear(); err != nil {
		s.logger.Warn().Err(err).Msg("session store clear failed")
	}
	s.mu.Lock()
	s.current = nil
	s.token = ""
	s.mu.Unlock()
}

// findByEmail wraps the store lookup with the round-trip deadline and the
// bounded Timeout retry. InvalidCredentials-class errors are never retried.
func (s *AuthService) findByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user *domain.User
	err := s.withStoreRetry(ctx, "find_by_email", func(ctx context.Context) error {
		var err error
		user, err = s.repo.FindByEmail(ctx, email)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) findByID(ctx context.Context, id string) (*domain.User, error) {
	var user *domain.User
	err := s.withStoreRetry(ctx, "find_by_id", func(ctx context.Context) error {
		var err error
		user, err = s.repo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// withStoreTimeout runs fn under the per-round-trip deadline and maps a
// deadline overrun to domain.ErrTimeout. Each round trip, including retried
// ones, records its duration under the named operation.
func (s *AuthService) withStoreTimeout(ctx context.Context, op string, fn func(context.Context) error) error {
	callCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	start := time.Now()
	err := fn(callCtx)
	metrics.AuthStoreDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return domain.ErrTimeout
	}
	return err
}

// withStoreRetry retries Timeout failures up to storeRetries times with a
// linear backoff, then escalates to domain.ErrStoreUnavailable. Any other
// error is terminal on first occurrence.
func (s *AuthService) withStoreRetry(ctx context.Context, op string, fn func(context.Context) error) error {
	var err error
	for attempt := 0; attempt <= storeRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return domain.ErrStoreUnavailable
			case <-time.After(time.Duration(attempt) * storeRetryBackoff):
			}
		}
		err = s.withStoreTimeout(ctx, op, fn)
		if !errors.Is(err, domain.ErrTimeout) {
			return err
		}
		s.logger.Warn().Int("attempt", attempt+1).Msg("credential store round trip timed out")
	}
	return domain.ErrStoreUnavailable
}
