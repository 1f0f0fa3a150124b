// Package content owns the events and categories collections and the
// background colour pair, and writes them through a storage.Adapter after
// every mutation.
package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sadopc/sejarah/internal/color"
	"github.com/sadopc/sejarah/internal/storage"
	"golang.org/x/exp/slog"
)

// Persisted keys.
const (
	KeyEvents     = "admin-events"
	KeyCategories = "admin-categories"
	KeyLightBg    = "admin-light-bg"
	KeyDarkBg     = "admin-dark-bg"
)

const (
	DefaultLightBg = "#fcfaf8"
	DefaultDarkBg  = "#1a1511"
)

// Presentation variables written by ApplyColorChanges.
const (
	VarBackground     = "--background"
	VarDarkBackground = "--dark-background"
)

// ErrNotFound is returned when an update names an id the collection lacks.
var ErrNotFound = errors.New("not found")

// Presenter receives the theme variables derived from the colour pair.
type Presenter interface {
	SetProperty(name, value string)
}

type nopPresenter struct{}

func (nopPresenter) SetProperty(string, string) {}

type Option func(*Store)

func WithPresenter(p Presenter) Option {
	return func(s *Store) { s.presenter = p }
}

// WithIDSource replaces the uuid v7 generator, mostly for tests.
func WithIDSource(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Store is the single writer for events, categories and colours.
type Store struct {
	mu         sync.Mutex
	kv         storage.Adapter
	presenter  Presenter
	newID      func() string
	log        *slog.Logger
	events     []Event
	categories []Category
	colors     Colors
	version    uint64

	subMu  sync.Mutex
	subs   map[int]func(Snapshot)
	nextID int
}

// New loads the four persisted keys and, when a colour was stored, applies
// the colours once.
func New(kv storage.Adapter, opts ...Option) (*Store, error) {
	if kv == nil {
		return nil, errors.New("content: nil storage adapter")
	}
	s := &Store{
		kv:        kv,
		presenter: nopPresenter{},
		newID:     newUUID,
		log:       slog.Default(),
		colors:    Colors{Light: DefaultLightBg, Dark: DefaultDarkBg},
		subs:      make(map[int]func(Snapshot)),
	}
	for _, o := range opts {
		o(s)
	}

	s.events = loadJSON[Event](s, KeyEvents)
	s.categories = loadJSON[Category](s, KeyCategories)

	light, lightOK := s.loadColor(KeyLightBg)
	dark, darkOK := s.loadColor(KeyDarkBg)
	if lightOK {
		s.colors.Light = light
	}
	if darkOK {
		s.colors.Dark = dark
	}

	if lightOK || darkOK {
		if err := s.ApplyColorChanges(); err != nil {
			return nil, fmt.Errorf("apply persisted colors: %w", err)
		}
	}
	return s, nil
}

func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func loadJSON[T any](s *Store, key string) []T {
	raw, ok := s.kv.Load(key)
	if !ok {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		s.log.Warn("discarding unreadable collection", "key", key, "error", err)
		return []T{}
	}
	if out == nil {
		out = []T{}
	}
	return out
}

func (s *Store) loadColor(key string) (string, bool) {
	raw, ok := s.kv.Load(key)
	if !ok {
		return "", false
	}
	if err := color.Validate(raw); err != nil {
		s.log.Warn("ignoring persisted color", "key", key, "value", raw)
		return "", false
	}
	return raw, true
}

// Subscribe registers fn to receive a snapshot after every successful
// mutation. Listeners may run concurrently for back-to-back mutations;
// compare Snapshot.Version to keep only the newest. The returned func
// unregisters it.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// commitLocked bumps the version and captures the state a mutation produced.
// Callers hold s.mu.
func (s *Store) commitLocked() Snapshot {
	s.version++
	return s.snapshotLocked()
}

func (s *Store) notify(snap Snapshot) {
	s.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// persist writes one key. A failure is logged and returned; in-memory state
// is kept either way.
func (s *Store) persist(key, value string) error {
	if err := s.kv.Save(key, value); err != nil {
		s.log.Error("persist failed", "key", key, "error", err)
		if !errors.Is(err, storage.ErrStorageUnavailable) {
			err = fmt.Errorf("%w: %w", storage.ErrStorageUnavailable, err)
		}
		return err
	}
	return nil
}

func (s *Store) persistJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.persist(key, string(data))
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Version:    s.version,
		Events:     append([]Event(nil), s.events...),
		Categories: append([]Category(nil), s.categories...),
		Colors:     s.colors,
	}
}

// Close drops all subscribers. The adapter is owned by the caller.
func (s *Store) Close() {
	s.subMu.Lock()
	s.subs = make(map[int]func(Snapshot))
	s.subMu.Unlock()
}
