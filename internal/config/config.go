// Package config loads application settings from embedded defaults, an
// optional YAML file, LIFE_* environment variables and command-line flags, in
// that order of precedence.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"life-ca/pkg/life"
	"life-ca/pkg/save"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all application settings.
type Config struct {
	Grid     GridConfig     `yaml:"grid" envPrefix:"GRID_"`
	Window   WindowConfig   `yaml:"window" envPrefix:"WINDOW_"`
	Autoplay AutoplayConfig `yaml:"autoplay" envPrefix:"AUTOPLAY_"`
	Storage  StorageConfig  `yaml:"storage" envPrefix:"STORAGE_"`
	Log      LogConfig      `yaml:"log" envPrefix:"LOG_"`
	Stats    StatsConfig    `yaml:"stats" envPrefix:"STATS_"`
}

// GridConfig sizes the grid and picks its rule. A positive density seeds a
// random soup using Seed.
type GridConfig struct {
	Rows    int     `yaml:"rows" env:"ROWS"`
	Cols    int     `yaml:"cols" env:"COLS"`
	Rule    string  `yaml:"rule" env:"RULE"`
	Seed    int64   `yaml:"seed" env:"SEED"`
	Density float64 `yaml:"density" env:"DENSITY"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width  int    `yaml:"width" env:"WIDTH"`
	Height int    `yaml:"height" env:"HEIGHT"`
	TPS    int    `yaml:"tps" env:"TPS"`
	Title  string `yaml:"title" env:"TITLE"`
}

// AutoplayConfig controls continuous evolution.
type AutoplayConfig struct {
	Enabled bool `yaml:"enabled" env:"ENABLED"`
	TPS     int  `yaml:"tps" env:"TPS"`
}

// StorageConfig selects where saves go.
type StorageConfig struct {
	Backend     string `yaml:"backend" env:"BACKEND"`
	Path        string `yaml:"path" env:"PATH"`
	Slot        string `yaml:"slot" env:"SLOT"`
	LoadOnStart bool   `yaml:"load_on_start" env:"LOAD_ON_START"`
}

// LogConfig controls slog output.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
}

// StatsConfig controls per-generation statistics output.
type StatsConfig struct {
	// Output is a CSV path. Empty disables the recorder.
	Output string `yaml:"output" env:"OUTPUT"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load merges the embedded defaults with the YAML file at path (if any) and
// LIFE_* environment variables.
func Load(path string) (*Config, error) {
	return load(path, os.Environ())
}

func load(path string, environ []string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file are overwritten.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	opts := env.Options{Prefix: "LIFE_", Environment: env.ToMap(environ)}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks that the settings can build a grid and a store.
func (c *Config) Validate() error {
	var errs []error
	if err := life.CheckDimensions(c.Grid.Rows, c.Grid.Cols); err != nil {
		errs = append(errs, fmt.Errorf("grid: %w", err))
	}
	if _, err := life.LookupRule(c.Grid.Rule); err != nil {
		errs = append(errs, fmt.Errorf("grid: %w", err))
	}
	if c.Grid.Density < 0 || c.Grid.Density > 1 {
		errs = append(errs, fmt.Errorf("grid: density %v outside [0, 1]", c.Grid.Density))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 || c.Autoplay.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive (window %d, autoplay %d)", c.Window.TPS, c.Autoplay.TPS))
	}
	switch strings.ToLower(c.Storage.Backend) {
	case save.BackendFile, save.BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("storage: unknown backend %q", c.Storage.Backend))
	}
	if strings.TrimSpace(c.Storage.Path) == "" {
		errs = append(errs, errors.New("storage: path is required"))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log: unknown format %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// GridSpec converts the grid section into a life.Config.
func (c *Config) GridSpec() life.Config {
	return life.Config{Rows: c.Grid.Rows, Cols: c.Grid.Cols, Rule: c.Grid.Rule}
}

// Logger builds the slog logger described by the log section.
func (l LogConfig) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(l.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("unknown level %q", s)
	}
	return level, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
