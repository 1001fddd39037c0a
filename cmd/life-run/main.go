// Command life-run evolves a grid without a window, optionally recording
// per-generation statistics and saving the final state.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"life-ca/internal/config"
	"life-ca/internal/session"
	"life-ca/internal/stats"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "life-run:", err)
		os.Exit(1)
	}
}

func run(args []string, logOut io.Writer) error {
	var (
		steps    int
		saveDone bool
	)
	extra := func(fs *flag.FlagSet) {
		fs.IntVar(&steps, "steps", 100, "generations to compute")
		fs.BoolVar(&saveDone, "save-final", false, "save the final state to the configured store")
	}
	cfg, err := config.Parse("life-run", args, extra)
	if err != nil {
		return err
	}
	logger, err := cfg.Log.Logger(logOut)
	if err != nil {
		return err
	}

	var out io.Writer
	if cfg.Stats.Output != "" {
		f, err := os.Create(cfg.Stats.Output)
		if err != nil {
			return fmt.Errorf("creating stats output: %w", err)
		}
		defer f.Close()
		out = f
	}
	recorder := stats.NewRecorder(out)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sess, err := session.Open(ctx, cfg, logger, recorder.Observe)
	if err != nil {
		return err
	}
	defer sess.Close()

	runErr := sess.Run(ctx, steps)
	if err := recorder.Err(); err != nil {
		return err
	}
	grid := sess.Grid()
	logger.Info("run finished",
		"generation", grid.Generation(),
		"score", grid.Score(),
		"summary", recorder.Summary())
	if runErr != nil {
		return runErr
	}
	if saveDone {
		if _, err := sess.Apply(ctx, session.Do(session.Save)); err != nil {
			return err
		}
	}
	return nil
}
