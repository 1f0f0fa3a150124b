package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/sejarah/internal/config"
	"github.com/sadopc/sejarah/internal/content"
	"github.com/sadopc/sejarah/internal/search"
	"github.com/sadopc/sejarah/internal/session"
	"github.com/sadopc/sejarah/internal/storage"
	"github.com/sadopc/sejarah/internal/tui"
	"golang.org/x/exp/slog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := openLog(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	kv, err := storage.New(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	theme := tui.NewTheme()
	s, err := content.New(kv, content.WithPresenter(theme), content.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading content: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	slog.Info("starting", "db", cfg.DBPath, "events", len(s.Events()), "categories", len(s.Categories()))

	app := tui.NewApp(tui.Deps{
		Store:    s,
		KV:       kv,
		Gate:     session.New(),
		Searcher: search.NewSearcher(cfg.SearchDelay, cfg.SearchMinQuery),
		Theme:    theme,
		Log:      logger,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	// Send from a goroutine: a mutation made inside Update would otherwise
	// block on the program's message channel. Sends may arrive out of order;
	// App drops snapshots older than the one it holds.
	cancel := s.Subscribe(func(snap content.Snapshot) {
		go p.Send(tui.SnapshotMsg(snap))
	})
	defer cancel()

	if _, err := p.Run(); err != nil {
		slog.Error("program exited", "error", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func openLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
