package content

import "fmt"

func (s *Store) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

func (s *Store) Event(id string) (Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

// AddEvent appends a new event with a fresh id. If persistence fails the
// event is still added and the returned error wraps ErrStorageUnavailable.
func (s *Store) AddEvent(f EventFields) (Event, error) {
	s.mu.Lock()
	e := f.event(s.newID())
	s.events = append(s.events, e)
	err := s.persistJSON(KeyEvents, s.events)
	snap := s.commitLocked()
	s.mu.Unlock()

	s.notify(snap)
	if err != nil {
		return e, fmt.Errorf("add event: %w", err)
	}
	return e, nil
}

// UpdateEvent merges the non-nil fields of u into the event with id.
func (s *Store) UpdateEvent(id string, u EventUpdate) error {
	s.mu.Lock()
	idx := -1
	for i := range s.events {
		if s.events[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("update event %q: %w", id, ErrNotFound)
	}
	u.apply(&s.events[idx])
	err := s.persistJSON(KeyEvents, s.events)
	snap := s.commitLocked()
	s.mu.Unlock()

	s.notify(snap)
	if err != nil {
		return fmt.Errorf("update event %q: %w", id, err)
	}
	return nil
}

// DeleteEvent removes the event with id. Unknown ids are a no-op.
func (s *Store) DeleteEvent(id string) error {
	s.mu.Lock()
	kept := make([]Event, 0, len(s.events))
	for _, e := range s.events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(s.events) {
		s.mu.Unlock()
		return nil
	}
	s.events = kept
	err := s.persistJSON(KeyEvents, s.events)
	snap := s.commitLocked()
	s.mu.Unlock()

	s.notify(snap)
	if err != nil {
		return fmt.Errorf("delete event %q: %w", id, err)
	}
	return nil
}
