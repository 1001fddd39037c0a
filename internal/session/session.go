// Package session drives a single grid: it turns front-end commands into grid
// operations, paces autoplay and reports what needs redrawing.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"life-ca/internal/core"
	pcore "life-ca/pkg/core"
	"life-ca/pkg/life"
	"life-ca/pkg/save"
)

// Update tells a renderer what changed.
type Update struct {
	// Changes lists cells with their new state for partial redraws.
	Changes []pcore.Change
	// Redraw asks for a full redraw (restart, randomize, load).
	Redraw bool
	// Resized reports that a load replaced the grid with one of another size.
	Resized bool
	// Stepped reports that a generation was computed.
	Stepped bool
	Quit    bool
}

// StepObserver is notified after every generation the session computes.
type StepObserver func(g *life.Grid, changed []pcore.Pos)

// Options configures a Session. Zero values are usable.
type Options struct {
	Store    save.Store
	Logger   *slog.Logger
	Rule     string
	Autoplay bool
	TPS      int
	Seed     int64
	Density  float64
	OnStep   StepObserver
}

// Session owns one grid. It is not safe for concurrent use; the front end
// serializes every call.
type Session struct {
	grid     *life.Grid
	store    save.Store
	log      *slog.Logger
	rule     string
	autoplay bool
	pacer    *core.FixedStep
	seed     int64
	density  float64
	status   string
	onStep   StepObserver
}

// New wraps grid in a session.
func New(grid *life.Grid, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	density := opts.Density
	if density <= 0 || density > 1 {
		density = 0.25
	}
	rule := opts.Rule
	if rule == "" {
		rule = grid.RuleName()
	}
	return &Session{
		grid:     grid,
		store:    opts.Store,
		log:      logger,
		rule:     rule,
		autoplay: opts.Autoplay,
		pacer:    core.NewFixedStep(opts.TPS),
		seed:     opts.Seed,
		density:  density,
		onStep:   opts.OnStep,
	}
}

// Grid returns the current grid. A successful Load replaces it.
func (s *Session) Grid() *life.Grid { return s.grid }

// Autoplay reports whether generations advance on Tick.
func (s *Session) Autoplay() bool { return s.autoplay }

// Status returns the last user-facing message, such as a failed save.
func (s *Session) Status() string { return s.status }

// Full enumerates every cell with its state for an initial draw.
func (s *Session) Full() []pcore.Change {
	size := s.grid.Size()
	cells := s.grid.Cells()
	out := make([]pcore.Change, 0, size.Area())
	for x := 0; x < size.W; x++ {
		for y := 0; y < size.H; y++ {
			out = append(out, pcore.Change{Pos: pcore.Pos{X: x, Y: y}, State: cells[y*size.W+x]})
		}
	}
	return out
}

// Apply executes one command. Validation and persistence errors are returned
// to the caller and leave the grid as it was.
func (s *Session) Apply(ctx context.Context, cmd Command) (Update, error) {
	switch cmd.Kind {
	case Quit:
		return Update{Quit: true}, nil
	case ToggleAutoplay:
		s.autoplay = !s.autoplay
		if s.autoplay {
			s.pacer.Reset()
		}
		s.log.Debug("autoplay toggled", "enabled", s.autoplay)
		return Update{}, nil
	case StepOnce:
		return s.Step(), nil
	case ToggleCell:
		state, err := s.grid.Toggle(cmd.Pos)
		if err != nil {
			return Update{}, err
		}
		return Update{Changes: []pcore.Change{{Pos: cmd.Pos, State: state}}}, nil
	case Restart:
		s.grid.Restart()
		s.log.Info("grid restarted", "generation", s.grid.Generation())
		return Update{Redraw: true}, nil
	case Randomize:
		s.randomize()
		return Update{Redraw: true}, nil
	case Save:
		return Update{}, s.save(ctx)
	case Load:
		return s.load(ctx)
	default:
		return Update{}, fmt.Errorf("unknown command %v", cmd.Kind)
	}
}

// Tick advances one generation when autoplay is on and the pacer allows it.
func (s *Session) Tick() Update {
	if !s.autoplay || !s.pacer.ShouldStep() {
		return Update{}
	}
	return s.Step()
}

// Step computes one generation.
func (s *Session) Step() Update {
	changed := s.grid.Step()
	if s.onStep != nil {
		s.onStep(s.grid, changed)
	}
	out := make([]pcore.Change, len(changed))
	cells := s.grid.Cells()
	cols := s.grid.Cols()
	for i, p := range changed {
		out[i] = pcore.Change{Pos: p, State: cells[p.Y*cols+p.X]}
	}
	return Update{Changes: out, Stepped: true}
}

// Run computes n generations, stopping early when ctx is cancelled.
func (s *Session) Run(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Step()
	}
	return nil
}

func (s *Session) randomize() {
	s.grid.Restart()
	for _, p := range pcore.NewRNG(s.seed).Scatter(s.grid.Size(), s.density) {
		_ = s.grid.Activate(p)
	}
	s.log.Info("grid randomized", "seed", s.seed, "density", s.density, "score", s.grid.Score())
	s.seed++
}

func (s *Session) save(ctx context.Context) error {
	if s.store == nil {
		s.status = "no save store configured"
		return errors.New(s.status)
	}
	rec := save.Snapshot(s.grid)
	if err := s.store.Save(ctx, rec); err != nil {
		s.status = "save failed: " + err.Error()
		s.log.Error("save failed", "error", err)
		return err
	}
	s.status = fmt.Sprintf("saved generation %d", rec.Generation)
	s.log.Info("grid saved", "generation", rec.Generation, "active", len(rec.Active))
	return nil
}

func (s *Session) load(ctx context.Context) (Update, error) {
	if s.store == nil {
		s.status = "no save store configured"
		return Update{}, errors.New(s.status)
	}
	rec, err := s.store.Load(ctx)
	if err == nil {
		var g *life.Grid
		if g, err = save.Restore(rec, s.rule); err == nil {
			resized := g.Size() != s.grid.Size()
			s.grid = g
			s.status = fmt.Sprintf("loaded generation %d", g.Generation())
			s.log.Info("grid loaded", "generation", g.Generation(), "cols", g.Cols(), "rows", g.Rows(), "score", g.Score())
			return Update{Redraw: true, Resized: resized}, nil
		}
	}
	s.status = "load failed: " + err.Error()
	s.log.Error("load failed", "error", err)
	return Update{}, err
}
