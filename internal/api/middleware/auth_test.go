package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/syndicma/syndic-platform/internal/auth"
	"github.com/syndicma/syndic-platform/internal/core/domain"
)

type mapRevoker map[string]bool

func (r mapRevoker) Revoke(_ context.Context, jti string, _ time.Duration) error {
	r[jti] = true
	return nil
}

func (r mapRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	return r[jti], nil
}

func issueToken(t *testing.T, tokens *auth.TokenMaker, role domain.Role) string {
	t.Helper()
	token, err := tokens.Issue(&domain.User{ID: "u1", Email: "u1@syndic.ma", Role: role})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, tokens *auth.TokenMaker, revoker mapRevoker, header string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(tokens, revoker)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, c, handler(c)
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := auth.NewTokenMaker("secret", time.Hour)
	token := issueToken(t, tokens, domain.RoleAdmin)

	rec, c, err := runAuth(t, tokens, nil, "Bearer "+token)
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := c.Get("user_id"); got != "u1" {
		t.Fatalf("user_id not injected: %v", got)
	}
	if got, ok := c.Get("role").(domain.Role); !ok || got != domain.RoleAdmin {
		t.Fatalf("role not injected as domain.Role: %v", c.Get("role"))
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens := auth.NewTokenMaker("secret", time.Hour)

	_, _, err := runAuth(t, tokens, nil, "")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	tokens := auth.NewTokenMaker("secret", time.Hour)
	token := issueToken(t, tokens, domain.RoleOwner)

	for _, header := range []string{token, "Basic " + token, "Bearer"} {
		_, _, err := runAuth(t, tokens, nil, header)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %v", header, err)
		}
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenMaker("secret", time.Hour)
	other := auth.NewTokenMaker("different-secret", time.Hour)
	forged := issueToken(t, other, domain.RoleAdmin)

	_, _, err := runAuth(t, tokens, nil, "Bearer "+forged)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for forged token, got %v", err)
	}
}

func TestAuth_RevokedToken(t *testing.T) {
	tokens := auth.NewTokenMaker("secret", time.Hour)
	token := issueToken(t, tokens, domain.RoleAdmin)
	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	revoker := mapRevoker{}
	_ = revoker.Revoke(context.Background(), claims.ID, time.Hour)

	_, _, err = runAuth(t, tokens, revoker, "Bearer "+token)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked token, got %v", err)
	}
}

func TestAuth_CaseInsensitiveScheme(t *testing.T) {
	tokens := auth.NewTokenMaker("secret", time.Hour)
	token := issueToken(t, tokens, domain.RoleTenant)

	rec, _, err := runAuth(t, tokens, nil, "bearer "+token)
	if err != nil || rec.Code != http.StatusOK {
		t.Fatalf("lowercase scheme rejected: code=%d err=%v", rec.Code, err)
	}
}
