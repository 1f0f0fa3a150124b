package prefs

import (
	"errors"
	"testing"

	"github.com/sadopc/sejarah/internal/storage"
)

// ============================================================
// Reader settings
// ============================================================

func TestLoadReaderDefaults(t *testing.T) {
	r := LoadReader(storage.NewMemoryAdapter())
	if r != DefaultReader() {
		t.Fatalf("expected defaults, got %+v", r)
	}
	if r.Theme != "light" || r.TextSize != "medium" {
		t.Fatalf("unexpected defaults %+v", r)
	}
}

func TestSaveReaderRoundTrip(t *testing.T) {
	kv := storage.NewMemoryAdapter()
	want := Reader{Theme: ThemeDark, TextSize: TextLarge}
	if err := SaveReader(kv, want); err != nil {
		t.Fatal(err)
	}
	if v, _ := kv.Load(KeyTheme); v != "dark" {
		t.Fatalf("theme stored as %q", v)
	}
	if got := LoadReader(kv); got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSaveReaderRejectsUnknownValues(t *testing.T) {
	kv := storage.NewMemoryAdapter()
	if err := SaveReader(kv, Reader{Theme: "sepia", TextSize: TextSmall}); err == nil {
		t.Fatal("expected validation error")
	}
	if kv.Writes() != 0 {
		t.Fatal("invalid settings must not be written")
	}
}

func TestLoadReaderIgnoresGarbage(t *testing.T) {
	kv := storage.NewMemoryAdapter()
	kv.Save(KeyTheme, "neon")
	kv.Save(KeyTextSize, "small")
	r := LoadReader(kv)
	if r.Theme != ThemeLight {
		t.Fatalf("unknown theme should fall back, got %q", r.Theme)
	}
	if r.TextSize != TextSmall {
		t.Fatalf("valid text size lost, got %q", r.TextSize)
	}
}

func TestReaderToggled(t *testing.T) {
	r := DefaultReader()
	if r.Toggled().Theme != ThemeDark || r.Toggled().Toggled().Theme != ThemeLight {
		t.Fatal("toggle should flip between light and dark")
	}
}

// ============================================================
// General settings
// ============================================================

func TestLoadGeneralDefaults(t *testing.T) {
	g, err := LoadGeneral(storage.NewMemoryAdapter())
	if err != nil {
		t.Fatal(err)
	}
	if g != DefaultGeneral() {
		t.Fatalf("expected defaults, got %+v", g)
	}
}

func TestSaveGeneralRoundTrip(t *testing.T) {
	kv := storage.NewMemoryAdapter()
	g := DefaultGeneral()
	g.SiteTitle = "Tarikh"
	g.MaintenanceMode = true
	if err := SaveGeneral(kv, g); err != nil {
		t.Fatal(err)
	}
	got, err := LoadGeneral(kv)
	if err != nil {
		t.Fatal(err)
	}
	if got != g {
		t.Fatalf("got %+v, want %+v", got, g)
	}
}

func TestSaveGeneralValidates(t *testing.T) {
	kv := storage.NewMemoryAdapter()
	g := DefaultGeneral()
	g.AdminEmail = "not-an-email"
	if err := SaveGeneral(kv, g); err == nil {
		t.Fatal("expected email validation error")
	}
	g = DefaultGeneral()
	g.SiteTitle = ""
	if err := SaveGeneral(kv, g); err == nil {
		t.Fatal("expected required title error")
	}
}

func TestLoadGeneralPartialPayload(t *testing.T) {
	kv := storage.NewMemoryAdapter()
	kv.Save(KeyGeneral, `{"siteTitle":"Lama"}`)
	g, err := LoadGeneral(kv)
	if err != nil {
		t.Fatal(err)
	}
	if g.SiteTitle != "Lama" {
		t.Fatalf("stored title lost: %q", g.SiteTitle)
	}
	if g.AdminEmail != DefaultGeneral().AdminEmail || !g.EnableSearch {
		t.Fatal("missing fields should keep defaults")
	}
}

func TestLoadGeneralCorrupt(t *testing.T) {
	kv := storage.NewMemoryAdapter()
	kv.Save(KeyGeneral, "{broken")
	g, err := LoadGeneral(kv)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if g != DefaultGeneral() {
		t.Fatal("corrupt payload should yield defaults")
	}
}

func TestResetGeneralRemovesKey(t *testing.T) {
	kv := storage.NewMemoryAdapter()
	g := DefaultGeneral()
	g.FooterText = "custom"
	SaveGeneral(kv, g)

	got, err := ResetGeneral(kv)
	if err != nil {
		t.Fatal(err)
	}
	if got != DefaultGeneral() {
		t.Fatal("reset should return defaults")
	}
	if _, ok := kv.Load(KeyGeneral); ok {
		t.Fatal("reset should remove the stored payload")
	}
}

func TestResetGeneralStorageFailure(t *testing.T) {
	kv := storage.NewMemoryAdapter()
	kv.Fail(true)
	if _, err := ResetGeneral(kv); !errors.Is(err, storage.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}
