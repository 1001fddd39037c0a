package session

import (
	"context"
	"fmt"
	"log/slog"

	"life-ca/internal/config"
	"life-ca/pkg/life"
	"life-ca/pkg/save"
)

// Open builds the store, the starting grid and the session described by cfg.
// With storage.load_on_start the grid comes from the store; otherwise a fresh
// grid is created and, when grid.density is positive, seeded with a soup.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger, onStep StepObserver) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	store, err := save.OpenStore(cfg.Storage.Backend, cfg.Storage.Path, cfg.Storage.Slot)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	var grid *life.Grid
	if cfg.Storage.LoadOnStart {
		rec, err := store.Load(ctx)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("load %s: %w", cfg.Storage.Path, err)
		}
		if grid, err = save.Restore(rec, cfg.Grid.Rule); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("restore %s: %w", cfg.Storage.Path, err)
		}
	} else if grid, err = life.NewWithConfig(cfg.GridSpec()); err != nil {
		_ = store.Close()
		return nil, err
	}

	s := New(grid, Options{
		Store:    store,
		Logger:   logger,
		Rule:     cfg.Grid.Rule,
		Autoplay: cfg.Autoplay.Enabled,
		TPS:      cfg.Autoplay.TPS,
		Seed:     cfg.Grid.Seed,
		Density:  cfg.Grid.Density,
		OnStep:   onStep,
	})
	if !cfg.Storage.LoadOnStart && cfg.Grid.Density > 0 {
		s.randomize()
	}
	logger.Info("session ready",
		"cols", grid.Cols(), "rows", grid.Rows(), "rule", grid.RuleName(),
		"generation", grid.Generation(), "score", grid.Score(), "backend", cfg.Storage.Backend)
	return s, nil
}

// Close releases the session's store.
func (s *Session) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}
