package config

import (
	"flag"
	"io"
)

// Bind attaches the configuration to the provided FlagSet. Current values
// become the flag defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Grid.Rows, "rows", c.Grid.Rows, "number of grid rows")
	fs.IntVar(&c.Grid.Cols, "cols", c.Grid.Cols, "number of grid columns")
	fs.StringVar(&c.Grid.Rule, "rule", c.Grid.Rule, "rule variant: standard, highlife or B/S notation")
	fs.Int64Var(&c.Grid.Seed, "seed", c.Grid.Seed, "seed for random soups")
	fs.Float64Var(&c.Grid.Density, "density", c.Grid.Density, "fraction of cells seeded active at start (0 = empty grid)")
	fs.IntVar(&c.Window.Width, "width", c.Window.Width, "window width in pixels")
	fs.IntVar(&c.Window.Height, "height", c.Window.Height, "window height in pixels")
	fs.IntVar(&c.Window.TPS, "tps", c.Window.TPS, "frame ticks per second")
	fs.BoolVar(&c.Autoplay.Enabled, "autoplay", c.Autoplay.Enabled, "start with autoplay running")
	fs.IntVar(&c.Autoplay.TPS, "autoplay-tps", c.Autoplay.TPS, "generations per second while autoplaying")
	fs.StringVar(&c.Storage.Backend, "backend", c.Storage.Backend, "save backend: file or sqlite")
	fs.StringVar(&c.Storage.Path, "save", c.Storage.Path, "save file or database path")
	fs.StringVar(&c.Storage.Slot, "slot", c.Storage.Slot, "save slot (sqlite backend)")
	fs.Func("load", "load this save file at start", func(path string) error {
		c.Storage.Path = path
		c.Storage.LoadOnStart = true
		return nil
	})
	fs.StringVar(&c.Log.Level, "log-level", c.Log.Level, "log level: debug, info, warn, error")
	fs.StringVar(&c.Log.Format, "log-format", c.Log.Format, "log format: text or json")
	fs.StringVar(&c.Stats.Output, "stats", c.Stats.Output, "write per-generation statistics to this CSV file")
}

// Parse builds a validated Config from args. The -config flag names an
// optional YAML file; every other flag overrides file and environment values.
// extra, when non-nil, registers additional flags owned by the caller.
func Parse(name string, args []string, extra func(fs *flag.FlagSet)) (*Config, error) {
	return parse(name, args, extra, Load)
}

func parse(name string, args []string, extra func(fs *flag.FlagSet), loader func(string) (*Config, error)) (*Config, error) {
	// First pass only discovers -config; the real pass needs the loaded
	// values as flag defaults.
	probe := flag.NewFlagSet(name, flag.ContinueOnError)
	probe.SetOutput(io.Discard)
	path := probe.String("config", "", "path to config.yaml (empty = embedded defaults)")
	Default().Bind(probe)
	if extra != nil {
		extra(probe)
	}
	_ = probe.Parse(args)

	cfg, err := loader(*path)
	if err != nil {
		return nil, err
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.String("config", *path, "path to config.yaml (empty = embedded defaults)")
	cfg.Bind(fs)
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
