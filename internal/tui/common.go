package tui

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"
	"github.com/sadopc/sejarah/internal/content"
	"github.com/sadopc/sejarah/internal/prefs"
	"github.com/sadopc/sejarah/internal/search"
	"github.com/sadopc/sejarah/internal/storage"
)

// viewState represents the currently active view.
type viewState int

const (
	viewHome viewState = iota
	viewTimeline
	viewCategories
	viewSearch
	viewSettings
	viewAdmin
)

var viewNames = []string{"Beranda", "Timeline", "Kategori", "Cari", "Pengaturan", "Admin"}

// --- Messages ---

// snapshotMsg carries the content store state after a mutation.
type snapshotMsg struct {
	snap content.Snapshot
}

// SnapshotMsg wraps a store snapshot for Program.Send.
func SnapshotMsg(s content.Snapshot) tea.Msg {
	return snapshotMsg{snap: s}
}

type generalSettingsMsg struct {
	general prefs.General
}

type readerSettingsMsg struct {
	reader prefs.Reader
}

type searchResultMsg struct {
	ticket  uint64
	query   string
	results []search.Result
	err     error
}

type openDetailMsg struct {
	event content.Event
}

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

var validate = validator.New()

// fieldRule returns a huh validator backed by a validator/v10 tag.
func fieldRule(label, tag string) func(string) error {
	return func(v string) error {
		if err := validate.Var(v, tag); err != nil {
			return fmt.Errorf("%s: %s", label, describeTag(tag))
		}
		return nil
	}
}

func describeTag(tag string) string {
	switch {
	case strings.Contains(tag, "url"):
		return "harus berupa URL"
	case strings.Contains(tag, "email"):
		return "harus berupa e-mail"
	case strings.Contains(tag, "numeric"):
		return "harus berupa angka"
	}
	return "wajib diisi"
}

// validationText flattens validator errors into one status line.
func validationText(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return "Tidak valid: " + strings.Join(parts, ", ")
}

// shareURL builds the WhatsApp share link for an event.
func shareURL(e content.Event) string {
	text := fmt.Sprintf("%s - %s\n\n%s\n\nBaca selengkapnya di aplikasi Sejarah Islam",
		e.Title, e.Subtitle, e.Description)
	return "https://wa.me/?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// displayEvents falls back to the built-in timeline when the store is empty.
func displayEvents(snap content.Snapshot) []content.Event {
	if len(snap.Events) > 0 {
		return snap.Events
	}
	return builtinEvents
}

func displayCategories(snap content.Snapshot) []content.Category {
	if len(snap.Categories) > 0 {
		return snap.Categories
	}
	return builtinCategories
}

func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

type switchViewMsg struct {
	view viewState
}

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isError: isError} }
}

// refreshCmd reads a fresh snapshot from the store.
func refreshCmd(s *content.Store) tea.Cmd {
	return func() tea.Msg { return snapshotMsg{snap: s.Snapshot()} }
}

// storeErrText turns a store error into a status line.
func storeErrText(action string, err error) string {
	switch {
	case errors.Is(err, content.ErrNotFound):
		return action + ": data tidak ditemukan"
	case errors.Is(err, storage.ErrStorageUnavailable):
		return action + ": tersimpan di memori, gagal menulis ke penyimpanan"
	}
	return fmt.Sprintf("%s: %v", action, err)
}
