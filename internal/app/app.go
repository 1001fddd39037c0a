//go:build ebiten

package app

import (
	"context"
	"errors"
	"image/color"
	"log/slog"

	"life-ca/internal/render"
	"life-ca/internal/session"
	"life-ca/internal/ui"
	"life-ca/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	activeColor   = color.RGBA{R: 255, A: 255}
	inactiveColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	ctx     context.Context
	sess    *session.Session
	log     *slog.Logger
	layout  Layout
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	width, height int
}

// New constructs a Game for a width×height window.
func New(ctx context.Context, sess *session.Session, logger *slog.Logger, width, height int) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Game{
		ctx:     ctx,
		sess:    sess,
		log:     logger,
		overlay: ui.NewOverlay(),
		width:   width,
		height:  height,
	}
	g.rebuild()
	return g
}

// rebuild sizes the painter and HUD for the session's current grid.
func (g *Game) rebuild() {
	grid := g.sess.Grid()
	g.layout = NewLayout(grid.Cols(), grid.Rows(), g.width, g.height)
	g.painter = render.NewGridPainter(grid.Cols(), grid.Rows(), activeColor, inactiveColor)
	g.painter.Reset(grid.Cells())
	g.hud = ui.NewHUD(g.layout.BoardHeight, g.width, g.layout.HUDHeight)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	g.overlay.Update()
	for _, cmd := range g.commands() {
		up, err := g.sess.Apply(g.ctx, cmd)
		if err != nil {
			if errors.Is(err, life.ErrOutOfBounds) {
				continue
			}
			g.log.Warn("command failed", "command", cmd.Kind.String(), "error", err)
		}
		if up.Quit {
			return ebiten.Termination
		}
		g.apply(up)
	}
	g.apply(g.sess.Tick())

	grid := g.sess.Grid()
	g.hud.Update(ui.Info{
		Generation: grid.Generation(),
		Score:      grid.Score(),
		Rule:       grid.RuleName(),
		Autoplay:   g.sess.Autoplay(),
		Status:     g.sess.Status(),
	})
	return nil
}

func (g *Game) commands() []session.Command {
	var cmds []session.Command
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		cmds = append(cmds, session.Do(session.Quit))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		cmds = append(cmds, session.Do(session.StepOnce))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		cmds = append(cmds, session.Do(session.ToggleAutoplay))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		cmds = append(cmds, session.Do(session.Restart))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		cmds = append(cmds, session.Do(session.Randomize))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		cmds = append(cmds, session.Do(session.Save))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		cmds = append(cmds, session.Do(session.Load))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if p, ok := g.layout.CellAt(ebiten.CursorPosition()); ok {
			cmds = append(cmds, session.Toggle(p))
		}
	}
	return cmds
}

func (g *Game) apply(up session.Update) {
	switch {
	case up.Resized:
		g.rebuild()
	case up.Redraw:
		g.painter.Reset(g.sess.Grid().Cells())
	case len(up.Changes) > 0:
		g.painter.Apply(up.Changes)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	cw, ch := g.layout.CellSize()
	g.painter.Draw(screen, cw, ch)
	g.hud.Draw(screen)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
