package content

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/sadopc/sejarah/internal/color"
	"github.com/sadopc/sejarah/internal/storage"
)

type recordingPresenter struct {
	mu    sync.Mutex
	props map[string]string
	calls int
}

func (p *recordingPresenter) SetProperty(name, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.props == nil {
		p.props = make(map[string]string)
	}
	p.props[name] = value
	p.calls++
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestStore(t *testing.T, kv storage.Adapter, opts ...Option) *Store {
	t.Helper()
	s, err := New(kv, append([]Option{WithIDSource(sequentialIDs())}, opts...)...)
	if err != nil {
		t.Fatalf("new content store: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func newSQLite(t *testing.T) *storage.SQLite {
	t.Helper()
	db, err := storage.NewMemory()
	if err != nil {
		t.Fatalf("new memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func hijrah() EventFields {
	return EventFields{
		Year:            "622",
		HijriYear:       "1",
		Title:           "Hijrah ke Madinah",
		Subtitle:        "Perpindahan kaum Muslim dari Makkah ke Madinah",
		Category:        "Hijrah",
		Location:        "Madinah",
		BackgroundImage: "https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05?w=400",
		Description:     "Peristiwa hijrah yang menandai dimulainya tahun Hijriyah...",
	}
}

func makkahPeriod() CategoryFields {
	return CategoryFields{
		Name:        "Periode Makkah",
		Description: "Awal dakwah dan pembentukan umat",
		Image:       "https://images.unsplash.com/photo-1466442929976-97f336a657be?w=400",
		EventCount:  25,
		Color:       CategoryColors[0],
	}
}

// ============================================================
// Initialization
// ============================================================

func TestNewDefaults(t *testing.T) {
	p := &recordingPresenter{}
	s := newTestStore(t, storage.NewMemoryAdapter(), WithPresenter(p))

	if len(s.Events()) != 0 || len(s.Categories()) != 0 {
		t.Fatal("fresh store should be empty")
	}
	c := s.Colors()
	if c.Light != DefaultLightBg || c.Dark != DefaultDarkBg {
		t.Fatalf("unexpected default colors %+v", c)
	}
	if p.calls != 0 {
		t.Fatal("colors must not be applied when none were persisted")
	}
}

func TestNewNilAdapter(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil adapter")
	}
}

func TestNewAppliesPersistedColor(t *testing.T) {
	kv := storage.NewMemoryAdapter()
	kv.Save(KeyDarkBg, "#000000")
	p := &recordingPresenter{}
	s := newTestStore(t, kv, WithPresenter(p))

	if s.Colors().Dark != "#000000" {
		t.Fatalf("expected persisted dark color, got %q", s.Colors().Dark)
	}
	if p.props[VarDarkBackground] != "0 0% 0%" {
		t.Fatalf("dark background not applied: %v", p.props)
	}
	if p.props[VarBackground] != "30 40% 98%" {
		t.Fatalf("light background should be the default HSL: %v", p.props)
	}
}

func TestNewIgnoresCorruptPayloads(t *testing.T) {
	kv := storage.NewMemoryAdapter()
	kv.Save(KeyEvents, "{not json")
	kv.Save(KeyCategories, "null")
	kv.Save(KeyLightBg, "white")
	p := &recordingPresenter{}
	s := newTestStore(t, kv, WithPresenter(p))

	if len(s.Events()) != 0 || len(s.Categories()) != 0 {
		t.Fatal("corrupt collections should load as empty")
	}
	if s.Colors().Light != DefaultLightBg {
		t.Fatal("invalid persisted color should fall back to default")
	}
	if p.calls != 0 {
		t.Fatal("no valid persisted color, nothing to apply")
	}
}

// ============================================================
// Events
// ============================================================

func TestAddEvent(t *testing.T) {
	kv := storage.NewMemoryAdapter()
	s := newTestStore(t, kv)

	e, err := s.AddEvent(hijrah())
	if err != nil {
		t.Fatal(err)
	}
	if e.ID != "id-1" || e.Title != "Hijrah ke Madinah" {
		t.Fatalf("unexpected event %+v", e)
	}
	if _, ok := kv.Load(KeyEvents); !ok {
		t.Fatal("events collection should be persisted")
	}
	got, ok := s.Event(e.ID)
	if !ok || got != e {
		t.Fatalf("lookup returned %+v %v", got, ok)
	}
}

func TestAddEventPreservesOrder(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryAdapter())
	for _, title := range []string{"C", "A", "B"} {
		f := hijrah()
		f.Title = title
		s.AddEvent(f)
	}
	events := s.Events()
	if events[0].Title != "C" || events[1].Title != "A" || events[2].Title != "B" {
		t.Fatalf("insertion order not preserved: %v", events)
	}
}

func TestDefaultIDsAreUnique(t *testing.T) {
	s, err := New(storage.NewMemoryAdapter())
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		e, _ := s.AddEvent(hijrah())
		if e.ID == "" || seen[e.ID] {
			t.Fatalf("duplicate or empty id %q", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestAddThenDeleteRestores(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryAdapter())
	s.AddEvent(hijrah())
	before := s.Events()

	e, _ := s.AddEvent(hijrah())
	if err := s.DeleteEvent(e.ID); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(before, s.Events()) {
		t.Fatalf("expected %v, got %v", before, s.Events())
	}
}

func TestUpdateEventSingleField(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryAdapter())
	e, _ := s.AddEvent(hijrah())

	title := "X"
	if err := s.UpdateEvent(e.ID, EventUpdate{Title: &title}); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Event(e.ID)
	want := e
	want.Title = "X"
	if got != want {
		t.Fatalf("expected only title to change:\n got %+v\nwant %+v", got, want)
	}
}

func TestUpdateEventFull(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryAdapter())
	e, _ := s.AddEvent(hijrah())

	f := e.Fields()
	f.Location = "Yatsrib"
	f.Year = "623"
	s.UpdateEvent(e.ID, FullEventUpdate(f))

	got, _ := s.Event(e.ID)
	if got.Location != "Yatsrib" || got.Year != "623" || got.ID != e.ID {
		t.Fatalf("unexpected event %+v", got)
	}
}

func TestUpdateEventNotFound(t *testing.T) {
	kv := storage.NewMemoryAdapter()
	s := newTestStore(t, kv)
	s.AddEvent(hijrah())
	writes := kv.Writes()
	before := s.Events()

	title := "X"
	err := s.UpdateEvent("missing", EventUpdate{Title: &title})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !slices.Equal(before, s.Events()) {
		t.Fatal("collection changed on failed update")
	}
	if kv.Writes() != writes {
		t.Fatal("failed update should not write")
	}
}

func TestDeleteEventMissingIsNoop(t *testing.T) {
	kv := storage.NewMemoryAdapter()
	s := newTestStore(t, kv)
	s.AddEvent(hijrah())
	before := s.Events()
	writes := kv.Writes()

	if err := s.DeleteEvent("missing"); err != nil {
		t.Fatalf("delete of unknown id should not fail: %v", err)
	}
	if !slices.Equal(before, s.Events()) {
		t.Fatal("collection changed")
	}
	if kv.Writes() != writes {
		t.Fatal("no-op delete should not write")
	}
}

func TestEventsReturnsCopy(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryAdapter())
	s.AddEvent(hijrah())

	events := s.Events()
	events[0].Title = "mutated"
	if got, _ := s.Event(events[0].ID); got.Title == "mutated" {
		t.Fatal("caller mutation leaked into the store")
	}
}

func TestEventEra(t *testing.T) {
	tests := []struct {
		year, hijri string
		want        string
	}{
		{"622", "1", "622 M / 1 H"},
		{"1492", "", "1492 M"},
		{"", "41", "41 H"},
		{"", "", ""},
	}
	for _, tt := range tests {
		got := Event{Year: tt.year, HijriYear: tt.hijri}.Era()
		if got != tt.want {
			t.Errorf("Era(%q, %q) = %q, want %q", tt.year, tt.hijri, got, tt.want)
		}
	}
}

// ============================================================
// Categories
// ============================================================

func TestCategoryLifecycle(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryAdapter())
	c, err := s.AddCategory(makkahPeriod())
	if err != nil {
		t.Fatal(err)
	}
	if c.EventCount != 25 || c.Color != CategoryColors[0] {
		t.Fatalf("unexpected category %+v", c)
	}

	n := 30
	if err := s.UpdateCategory(c.ID, CategoryUpdate{EventCount: &n}); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Category(c.ID)
	want := c
	want.EventCount = 30
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}

	if err := s.UpdateCategory("missing", CategoryUpdate{EventCount: &n}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	s.DeleteCategory("missing")
	if len(s.Categories()) != 1 {
		t.Fatal("unknown delete should be a no-op")
	}
	s.DeleteCategory(c.ID)
	if len(s.Categories()) != 0 {
		t.Fatal("category should be deleted")
	}
}

func TestCategoryFullUpdate(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryAdapter())
	c, _ := s.AddCategory(makkahPeriod())
	f := c.Fields()
	f.Name = "Periode Madinah"
	f.Color = CategoryColors[1]
	s.UpdateCategory(c.ID, FullCategoryUpdate(f))

	got, _ := s.Category(c.ID)
	if got.Name != "Periode Madinah" || got.Color != CategoryColors[1] || got.EventCount != 25 {
		t.Fatalf("unexpected category %+v", got)
	}
}

// ============================================================
// Persistence
// ============================================================

func TestReloadReproducesCollections(t *testing.T) {
	db := newSQLite(t)
	s := newTestStore(t, db)
	for _, title := range []string{"Wahyu Pertama", "Hijrah ke Madinah", "Fathu Makkah"} {
		f := hijrah()
		f.Title = title
		s.AddEvent(f)
	}
	s.AddCategory(makkahPeriod())
	s.SetLightColor("#ffffff")

	reloaded, err := New(db)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(s.Events(), reloaded.Events()) {
		t.Fatalf("events differ after reload:\n%v\n%v", s.Events(), reloaded.Events())
	}
	if !slices.Equal(s.Categories(), reloaded.Categories()) {
		t.Fatal("categories differ after reload")
	}
	if reloaded.Colors().Light != "#ffffff" {
		t.Fatalf("light color not reloaded: %q", reloaded.Colors().Light)
	}
}

func TestPersistedColorIsRawHex(t *testing.T) {
	kv := storage.NewMemoryAdapter()
	s := newTestStore(t, kv)
	s.SetDarkColor("#1a1511")
	if v, _ := kv.Load(KeyDarkBg); v != "#1a1511" {
		t.Fatalf("expected raw hex persisted, got %q", v)
	}
}

func TestStorageFailureKeepsMemoryState(t *testing.T) {
	kv := storage.NewMemoryAdapter()
	s := newTestStore(t, kv)
	kv.Fail(true)

	e, err := s.AddEvent(hijrah())
	if !errors.Is(err, storage.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
	if _, ok := s.Event(e.ID); !ok {
		t.Fatal("event should still be in memory")
	}
	if _, ok := kv.Load(KeyEvents); ok {
		t.Fatal("nothing should have been persisted")
	}

	kv.Fail(false)
	s.DeleteEvent(e.ID)
	if v, _ := kv.Load(KeyEvents); v != "[]" {
		t.Fatalf("expected empty array persisted, got %q", v)
	}
}

// ============================================================
// Colors
// ============================================================

func TestSetColorValidates(t *testing.T) {
	kv := storage.NewMemoryAdapter()
	s := newTestStore(t, kv)

	if err := s.SetLightColor("#zzzzzz"); !errors.Is(err, color.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
	if s.Colors().Light != DefaultLightBg {
		t.Fatal("invalid input must not change state")
	}
	if _, ok := kv.Load(KeyLightBg); ok {
		t.Fatal("invalid input must not be persisted")
	}
}

func TestSetColorDoesNotApply(t *testing.T) {
	p := &recordingPresenter{}
	s := newTestStore(t, storage.NewMemoryAdapter(), WithPresenter(p))
	s.SetLightColor("#ffffff")
	s.SetDarkColor("#000000")
	if p.calls != 0 {
		t.Fatal("setting a color must not apply it")
	}

	if err := s.ApplyColorChanges(); err != nil {
		t.Fatal(err)
	}
	if p.props[VarBackground] != "0 0% 100%" || p.props[VarDarkBackground] != "0 0% 0%" {
		t.Fatalf("unexpected vars %v", p.props)
	}
}

func TestResetColors(t *testing.T) {
	kv := storage.NewMemoryAdapter()
	p := &recordingPresenter{}
	s := newTestStore(t, kv, WithPresenter(p))
	s.SetLightColor("#ffffff")

	if err := s.ResetColors(); err != nil {
		t.Fatal(err)
	}
	if s.Colors() != (Colors{Light: DefaultLightBg, Dark: DefaultDarkBg}) {
		t.Fatalf("unexpected colors %+v", s.Colors())
	}
	if v, _ := kv.Load(KeyLightBg); v != DefaultLightBg {
		t.Fatalf("default not persisted: %q", v)
	}
	if p.props[VarBackground] != "30 40% 98%" || p.props[VarDarkBackground] != "27 21% 8%" {
		t.Fatalf("defaults not applied: %v", p.props)
	}
}

// ============================================================
// Subscribers
// ============================================================

func TestSubscribe(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryAdapter())

	var got []Snapshot
	cancel := s.Subscribe(func(snap Snapshot) { got = append(got, snap) })

	s.AddEvent(hijrah())
	s.AddCategory(makkahPeriod())
	s.SetDarkColor("#000000")
	if len(got) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(got))
	}
	last := got[2]
	if len(last.Events) != 1 || len(last.Categories) != 1 || last.Colors.Dark != "#000000" {
		t.Fatalf("unexpected snapshot %+v", last)
	}

	// Failed and no-op operations do not notify.
	s.UpdateEvent("missing", EventUpdate{})
	s.DeleteEvent("missing")
	s.SetLightColor("bad")
	if len(got) != 3 {
		t.Fatalf("unexpected notifications: %d", len(got))
	}

	cancel()
	s.AddEvent(hijrah())
	if len(got) != 3 {
		t.Fatal("cancelled subscriber still notified")
	}
}

func TestSubscriberMayReadStore(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryAdapter())
	var n int
	s.Subscribe(func(Snapshot) { n = len(s.Events()) })
	s.AddEvent(hijrah())
	if n != 1 {
		t.Fatalf("expected subscriber to observe 1 event, got %d", n)
	}
}

func TestSnapshotCarriesItsOwnMutation(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryAdapter())

	var got []Snapshot
	s.Subscribe(func(snap Snapshot) { got = append(got, snap) })

	s.SetLightColor("#ffffff")
	s.SetDarkColor("#000000")
	s.AddEvent(hijrah())
	if len(got) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(got))
	}
	for i, snap := range got {
		if snap.Version != uint64(i+1) {
			t.Fatalf("snapshot %d: expected version %d, got %d", i, i+1, snap.Version)
		}
	}
	if got[0].Colors.Dark != DefaultDarkBg {
		t.Fatalf("first snapshot should predate the dark change, got %q", got[0].Colors.Dark)
	}
	if got[1].Colors.Dark != "#000000" || len(got[1].Events) != 0 {
		t.Fatalf("unexpected second snapshot %+v", got[1])
	}
	if s.Snapshot().Version != 3 {
		t.Fatalf("expected current version 3, got %d", s.Snapshot().Version)
	}
}

func TestNewestVersionWinsUnderConcurrentDelivery(t *testing.T) {
	s := newTestStore(t, storage.NewMemoryAdapter())

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		last Snapshot
	)
	s.Subscribe(func(snap Snapshot) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu.Lock()
			defer mu.Unlock()
			if snap.Version >= last.Version {
				last = snap
			}
		}()
	})

	for range 3 {
		if _, err := s.AddEvent(hijrah()); err != nil {
			t.Fatalf("add event: %v", err)
		}
	}
	wg.Wait()

	if last.Version != 3 || len(last.Events) != 3 {
		t.Fatalf("expected version 3 with 3 events, got version %d with %d", last.Version, len(last.Events))
	}
}
