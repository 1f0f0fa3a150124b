package content

import "fmt"

func (s *Store) Categories() []Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Category(nil), s.categories...)
}

func (s *Store) Category(id string) (Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

func (s *Store) AddCategory(f CategoryFields) (Category, error) {
	s.mu.Lock()
	c := f.category(s.newID())
	s.categories = append(s.categories, c)
	err := s.persistJSON(KeyCategories, s.categories)
	snap := s.commitLocked()
	s.mu.Unlock()

	s.notify(snap)
	if err != nil {
		return c, fmt.Errorf("add category: %w", err)
	}
	return c, nil
}

func (s *Store) UpdateCategory(id string, u CategoryUpdate) error {
	s.mu.Lock()
	idx := -1
	for i := range s.categories {
		if s.categories[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("update category %q: %w", id, ErrNotFound)
	}
	u.apply(&s.categories[idx])
	err := s.persistJSON(KeyCategories, s.categories)
	snap := s.commitLocked()
	s.mu.Unlock()

	s.notify(snap)
	if err != nil {
		return fmt.Errorf("update category %q: %w", id, err)
	}
	return nil
}

func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	kept := make([]Category, 0, len(s.categories))
	for _, c := range s.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(s.categories) {
		s.mu.Unlock()
		return nil
	}
	s.categories = kept
	err := s.persistJSON(KeyCategories, s.categories)
	snap := s.commitLocked()
	s.mu.Unlock()

	s.notify(snap)
	if err != nil {
		return fmt.Errorf("delete category %q: %w", id, err)
	}
	return nil
}
