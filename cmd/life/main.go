//go:build ebiten

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"life-ca/internal/app"
	"life-ca/internal/config"
	"life-ca/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse("life", os.Args[1:], nil)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	logger, err := cfg.Log.Logger(os.Stderr)
	if err != nil {
		slog.Error("invalid log configuration", "error", err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	ctx := context.Background()
	sess, err := session.Open(ctx, cfg, logger, nil)
	if err != nil {
		logger.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer sess.Close()

	game := app.New(ctx, sess, logger, cfg.Window.Width, cfg.Window.Height)

	ebiten.SetWindowTitle(cfg.Window.Title + " - " + sess.Grid().RuleName())
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop failed", "error", err)
		sess.Close()
		os.Exit(1)
	}
}
