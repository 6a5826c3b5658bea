package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestFileStore_Roundtrip(t *testing.T) {
	store := newFileStore(t)

	want := ports.StoredSession{
		Token: "tok-123",
		CachedUser: &domain.AuthUser{
			ID:    "u1",
			Name:  "Ahmed Alaoui",
			Email: "admin@syndic.ma",
			Role:  domain.RoleAdmin,
		},
	}
	if err := store.Set(want); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := store.Get()
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got == nil || got.Token != want.Token {
		t.Fatalf("unexpected session: %+v", got)
	}
	if got.CachedUser == nil || got.CachedUser.Email != "admin@syndic.ma" || got.CachedUser.Role != domain.RoleAdmin {
		t.Fatalf("cached user not preserved: %+v", got.CachedUser)
	}
}

func TestFileStore_MissingFile(t *testing.T) {
	store := newFileStore(t)

	got, err := store.Get()
	if err != nil || got != nil {
		t.Fatalf("missing file must read as no session, got %+v err=%v", got, err)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	store := newFileStore(t)
	if err := os.WriteFile(store.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	got, err := store.Get()
	if err != nil || got != nil {
		t.Fatalf("corrupt file must degrade to no session, got %+v err=%v", got, err)
	}

	// The corrupt file is removed so the next read is clean too.
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Fatalf("corrupt file not removed: %v", err)
	}
}

func TestFileStore_Clear(t *testing.T) {
	store := newFileStore(t)
	if err := store.Set(ports.StoredSession{Token: "tok"}); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if got, _ := store.Get(); got != nil {
		t.Fatalf("session survived Clear: %+v", got)
	}

	// Clearing twice is still fine.
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear on empty store returned error: %v", err)
	}
}

func TestFileStore_Overwrite(t *testing.T) {
	store := newFileStore(t)
	if err := store.Set(ports.StoredSession{Token: "first"}); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := store.Set(ports.StoredSession{Token: "second"}); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := store.Get()
	if err != nil || got == nil || got.Token != "second" {
		t.Fatalf("expected latest session, got %+v err=%v", got, err)
	}
}

func TestFileStore_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	store := newFileStore(t)
	if err := store.Set(ports.StoredSession{Token: "tok"}); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	info, err := os.Stat(store.Path())
	if err != nil {
		t.Fatalf("stat session file: %v", err)
	}
	if mode := info.Mode().Perm(); mode != 0o600 {
		t.Fatalf("expected 0600 permissions, got %o", mode)
	}
}
