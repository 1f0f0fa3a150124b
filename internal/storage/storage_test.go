package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory db: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ============================================================
// Initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s := newTestDB(t)

	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
}

func TestConnectionPragmas(t *testing.T) {
	s := newTestDB(t)

	var timeout, fk int
	if err := s.db.QueryRow("PRAGMA busy_timeout").Scan(&timeout); err != nil {
		t.Fatal(err)
	}
	if timeout != 5000 {
		t.Fatalf("expected busy_timeout 5000, got %d", timeout)
	}
	if err := s.db.QueryRow("PRAGMA foreign_keys").Scan(&fk); err != nil {
		t.Fatal(err)
	}
	if fk != 0 {
		t.Fatalf("foreign_keys should stay at the sqlite default, got %d", fk)
	}
}

func TestNewWithPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "sejarah.db")
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save("k", "v"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen: data survives and migration is not re-run destructively.
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	v, ok := s2.Load("k")
	if !ok || v != "v" {
		t.Fatalf("expected persisted value, got %q ok=%v", v, ok)
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestDB(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "sejarah.db" {
		t.Fatalf("unexpected path %q", path)
	}
}

// ============================================================
// Load / Save / Remove
// ============================================================

func TestLoadMissing(t *testing.T) {
	s := newTestDB(t)
	if _, ok := s.Load("nope"); ok {
		t.Fatal("expected absence for unknown key")
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestDB(t)
	s.Save("admin-light-bg", "#fcfaf8")
	s.Save("admin-light-bg", "#ffffff")

	v, ok := s.Load("admin-light-bg")
	if !ok || v != "#ffffff" {
		t.Fatalf("expected overwritten value, got %q", v)
	}
	keys, _ := s.Keys()
	if len(keys) != 1 {
		t.Fatalf("expected 1 key, got %v", keys)
	}
}

func TestRemove(t *testing.T) {
	s := newTestDB(t)
	s.Save("a", "1")
	if err := s.Remove("a"); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Load("a"); ok {
		t.Fatal("key should be gone")
	}
	// Removing an absent key is a no-op.
	if err := s.Remove("a"); err != nil {
		t.Fatalf("remove absent key: %v", err)
	}
}

func TestKeysSorted(t *testing.T) {
	s := newTestDB(t)
	s.Save("b", "2")
	s.Save("a", "1")
	keys, err := s.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestSaveAfterCloseIsUnavailable(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	err = s.Save("k", "v")
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
	if _, ok := s.Load("k"); ok {
		t.Fatal("load on closed db should report absence")
	}
}

// ============================================================
// Memory adapter
// ============================================================

func TestMemoryAdapter(t *testing.T) {
	m := NewMemoryAdapter()
	var _ Adapter = m

	m.Save("x", "1")
	if v, ok := m.Load("x"); !ok || v != "1" {
		t.Fatalf("got %q %v", v, ok)
	}
	if m.Writes() != 1 {
		t.Fatalf("expected 1 write, got %d", m.Writes())
	}

	m.Fail(true)
	if err := m.Save("x", "2"); !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
	if v, _ := m.Load("x"); v != "1" {
		t.Fatal("failed write must not change the stored value")
	}
	if err := m.Remove("x"); !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}

	m.Fail(false)
	m.Remove("x")
	if keys, _ := m.Keys(); len(keys) != 0 {
		t.Fatalf("expected no keys, got %v", keys)
	}
}

func TestSQLiteImplementsAdapter(t *testing.T) {
	var _ Adapter = newTestDB(t)
}
