package content

import (
	"errors"
	"fmt"

	"github.com/sadopc/sejarah/internal/color"
)

func (s *Store) Colors() Colors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.colors
}

// SetLightColor stores the raw hex. It does not touch the presenter; call
// ApplyColorChanges for that.
func (s *Store) SetLightColor(hex string) error {
	return s.setColor(KeyLightBg, hex, func(c *Colors) { c.Light = hex })
}

func (s *Store) SetDarkColor(hex string) error {
	return s.setColor(KeyDarkBg, hex, func(c *Colors) { c.Dark = hex })
}

func (s *Store) setColor(key, hex string, assign func(*Colors)) error {
	if err := color.Validate(hex); err != nil {
		return err
	}
	s.mu.Lock()
	assign(&s.colors)
	err := s.persist(key, hex)
	snap := s.commitLocked()
	s.mu.Unlock()

	s.notify(snap)
	if err != nil {
		return fmt.Errorf("set color: %w", err)
	}
	return nil
}

// ResetColors restores both defaults and applies them.
func (s *Store) ResetColors() error {
	s.mu.Lock()
	s.colors = Colors{Light: DefaultLightBg, Dark: DefaultDarkBg}
	err := errors.Join(
		s.persist(KeyLightBg, DefaultLightBg),
		s.persist(KeyDarkBg, DefaultDarkBg),
	)
	snap := s.commitLocked()
	s.mu.Unlock()

	s.notify(snap)
	if aerr := s.ApplyColorChanges(); aerr != nil {
		return aerr
	}
	if err != nil {
		return fmt.Errorf("reset colors: %w", err)
	}
	return nil
}

// ApplyColorChanges pushes the HSL form of both colours to the presenter.
func (s *Store) ApplyColorChanges() error {
	c := s.Colors()
	light, err := color.HexToHSL(c.Light)
	if err != nil {
		return fmt.Errorf("light background: %w", err)
	}
	dark, err := color.HexToHSL(c.Dark)
	if err != nil {
		return fmt.Errorf("dark background: %w", err)
	}
	s.presenter.SetProperty(VarBackground, light)
	s.presenter.SetProperty(VarDarkBackground, dark)
	s.log.Info("applied background colors", "light", light, "dark", dark)
	return nil
}
