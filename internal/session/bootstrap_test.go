package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"life-ca/internal/config"
	"life-ca/pkg/save"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Grid.Rows, cfg.Grid.Cols = 12, 16
	cfg.Storage.Path = filepath.Join(t.TempDir(), "life.json")
	return cfg
}

func TestOpenFreshGrid(t *testing.T) {
	cfg := testConfig(t)
	cfg.Grid.Rule = "highlife"
	s, err := Open(context.Background(), cfg, quiet, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	g := s.Grid()
	if g.Cols() != 16 || g.Rows() != 12 || g.Score() != 0 || g.RuleName() != "highlife" {
		t.Fatalf("grid %dx%d score %d rule %q", g.Cols(), g.Rows(), g.Score(), g.RuleName())
	}
}

func TestOpenSeededSoup(t *testing.T) {
	cfg := testConfig(t)
	cfg.Grid.Density = 0.5
	cfg.Grid.Seed = 11
	a, err := Open(context.Background(), cfg, quiet, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	b, err := Open(context.Background(), cfg, quiet, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()
	if a.Grid().Score() == 0 || !a.Grid().Equal(b.Grid()) {
		t.Fatal("seeded soups differ or are empty")
	}
}

func TestOpenLoadOnStart(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.Storage.Backend = save.BackendSQLite
	cfg.Storage.Path = filepath.Join(t.TempDir(), "saves.db")

	first, err := Open(ctx, cfg, quiet, nil)
	if err != nil {
		t.Fatal(err)
	}
	first.Apply(ctx, Do(Randomize))
	first.Step()
	if _, err := first.Apply(ctx, Do(Save)); err != nil {
		t.Fatal(err)
	}
	want := first.Grid().Clone()
	first.Close()

	cfg.Storage.LoadOnStart = true
	second, err := Open(ctx, cfg, quiet, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()
	if !second.Grid().Equal(want) {
		t.Fatal("grid loaded at start differs from the saved one")
	}
}

func TestOpenLoadOnStartMissing(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.LoadOnStart = true
	if _, err := Open(context.Background(), cfg, quiet, nil); !errors.Is(err, save.ErrNotFound) {
		t.Fatalf("missing save err = %v", err)
	}
}
