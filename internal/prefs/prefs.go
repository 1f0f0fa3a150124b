// Package prefs holds the reader settings (theme and text size) and the
// admin's general site settings, both kept in the same key-value storage
// as the content collections.
package prefs

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sadopc/sejarah/internal/storage"
)

const (
	KeyTheme    = "theme"
	KeyTextSize = "textSize"
	KeyGeneral  = "admin-general-settings"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	TextSmall  = "small"
	TextMedium = "medium"
	TextLarge  = "large"
)

var validate = validator.New()

// Reader is the per-reader display preference pair.
type Reader struct {
	Theme    string `validate:"oneof=light dark"`
	TextSize string `validate:"oneof=small medium large"`
}

func DefaultReader() Reader {
	return Reader{Theme: ThemeLight, TextSize: TextMedium}
}

// LoadReader reads both keys. A missing or unknown stored value falls back
// to its default on its own.
func LoadReader(kv storage.Adapter) Reader {
	r := DefaultReader()
	if v, ok := kv.Load(KeyTheme); ok && validate.Var(v, "oneof=light dark") == nil {
		r.Theme = v
	}
	if v, ok := kv.Load(KeyTextSize); ok && validate.Var(v, "oneof=small medium large") == nil {
		r.TextSize = v
	}
	return r
}

func SaveReader(kv storage.Adapter, r Reader) error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("reader settings: %w", err)
	}
	if err := kv.Save(KeyTheme, r.Theme); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	if err := kv.Save(KeyTextSize, r.TextSize); err != nil {
		return fmt.Errorf("save text size: %w", err)
	}
	return nil
}

// Toggled flips light and dark.
func (r Reader) Toggled() Reader {
	if r.Theme == ThemeDark {
		r.Theme = ThemeLight
	} else {
		r.Theme = ThemeDark
	}
	return r
}

// General is the site-wide configuration edited from the admin panel.
type General struct {
	SiteTitle           string `json:"siteTitle" validate:"required"`
	SiteDescription     string `json:"siteDescription"`
	EnableNotifications bool   `json:"enableNotifications"`
	EnableSearch        bool   `json:"enableSearch"`
	EnableDarkMode      bool   `json:"enableDarkMode"`
	AdminEmail          string `json:"adminEmail" validate:"required,email"`
	MaintenanceMode     bool   `json:"maintenanceMode"`
	WelcomeMessage      string `json:"welcomeMessage"`
	FooterText          string `json:"footerText"`
}

func DefaultGeneral() General {
	return General{
		SiteTitle:           "Sejarah Islam",
		SiteDescription:     "Jelajahi perjalanan peradaban Islam dari masa ke masa",
		EnableNotifications: true,
		EnableSearch:        true,
		EnableDarkMode:      true,
		AdminEmail:          "admin@sejarahislam.com",
		MaintenanceMode:     false,
		WelcomeMessage:      "Selamat datang di portal sejarah Islam",
		FooterText:          "© 2024 Sejarah Islam. Semua hak dilindungi.",
	}
}

// LoadGeneral decodes the stored settings over the defaults, so fields
// missing from an older payload keep their default. An unreadable payload
// yields the defaults.
func LoadGeneral(kv storage.Adapter) (General, error) {
	g := DefaultGeneral()
	raw, ok := kv.Load(KeyGeneral)
	if !ok {
		return g, nil
	}
	if err := json.Unmarshal([]byte(raw), &g); err != nil {
		return DefaultGeneral(), fmt.Errorf("decode general settings: %w", err)
	}
	return g, nil
}

func SaveGeneral(kv storage.Adapter, g General) error {
	if err := validate.Struct(g); err != nil {
		return fmt.Errorf("general settings: %w", err)
	}
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("encode general settings: %w", err)
	}
	if err := kv.Save(KeyGeneral, string(data)); err != nil {
		return fmt.Errorf("save general settings: %w", err)
	}
	return nil
}

// ResetGeneral removes the stored payload and returns the defaults.
func ResetGeneral(kv storage.Adapter) (General, error) {
	if err := kv.Remove(KeyGeneral); err != nil {
		return DefaultGeneral(), fmt.Errorf("reset general settings: %w", err)
	}
	return DefaultGeneral(), nil
}
