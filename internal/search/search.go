// Package search filters the mock search dataset. It simulates a backend
// with a fixed delay; Sequencer lets the caller keep only the newest result.
package search

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const (
	DefaultDelay    = 300 * time.Millisecond
	DefaultMinQuery = 2
)

type Result struct {
	ID          string
	Title       string
	Type        string // event, person, place
	Year        string
	HijriYear   string
	Description string
	Location    string
}

// Dataset is the built-in mock index.
var Dataset = []Result{
	{
		ID:          "1",
		Title:       "Fathu Makkah",
		Type:        "event",
		Year:        "629",
		HijriYear:   "8",
		Description: "Pembebasan kota Makkah oleh kaum Muslim yang menandai kemenangan besar...",
		Location:    "Makkah",
	},
	{
		ID:          "2",
		Title:       "Khalid ibn al-Walid",
		Type:        "person",
		Year:        "592-638",
		HijriYear:   "30-17",
		Description: "Panglima perang Islam yang dijuluki Saif Allah al-Maslul...",
	},
	{
		ID:          "3",
		Title:       "Masjid Nabawi",
		Type:        "place",
		Year:        "622",
		HijriYear:   "1",
		Description: "Masjid pertama yang dibangun oleh Nabi Muhammad SAW di Madinah...",
		Location:    "Madinah",
	},
}

// Filter returns the items whose title or description contains query,
// ignoring case.
func Filter(items []Result, query string) []Result {
	q := strings.ToLower(query)
	out := []Result{}
	for _, r := range items {
		if strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.Description), q) {
			out = append(out, r)
		}
	}
	return out
}

type Searcher struct {
	Items    []Result
	Delay    time.Duration
	MinQuery int
}

func NewSearcher(delay time.Duration, minQuery int) *Searcher {
	return &Searcher{Items: Dataset, Delay: delay, MinQuery: minQuery}
}

// Search returns an empty result at once for short queries. Otherwise it
// waits Delay (or until ctx is done) and filters.
func (s *Searcher) Search(ctx context.Context, query string) ([]Result, error) {
	if utf8.RuneCountInString(query) < s.MinQuery {
		return []Result{}, nil
	}

	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	return Filter(s.Items, query), nil
}

// Sequencer hands out tickets; only the latest ticket is accepted, so a
// slow earlier search cannot overwrite a newer one.
type Sequencer struct {
	mu     sync.Mutex
	latest uint64
}

func (q *Sequencer) Next() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.latest++
	return q.latest
}

func (q *Sequencer) Accept(ticket uint64) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return ticket == q.latest
}
