// Package config holds the command-line configuration of the livetext demo.
package config

import (
	"errors"
	"flag"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Backend selects where the live text is displayed.
type Backend string

const (
	BackendWindow   Backend = "window"
	BackendTerminal Backend = "terminal"
)

const maxWaveGlyphs = 10000

var (
	ErrBackend   = errors.New("unknown backend")
	ErrInspector = errors.New("inspector requires the window backend")
)

type Config struct {
	Backend    Backend
	Width      int
	Height     int
	TPS        int
	WaveGlyphs int
	Inspector  bool
	LogLevel   log.Level
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Backend:    BackendWindow,
		Width:      1280,
		Height:     720,
		TPS:        60,
		WaveGlyphs: 100,
		LogLevel:   log.InfoLevel,
	}
}

// Parse reads flags from args into a validated Config.
func Parse(name string, args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	backend := fs.String("backend", string(cfg.Backend), "Where to display the text: window or terminal.")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Window width in pixels.")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Window height in pixels.")
	fs.IntVar(&cfg.TPS, "tps", cfg.TPS, "Simulation ticks per second.")
	fs.IntVar(&cfg.WaveGlyphs, "wave-glyphs", cfg.WaveGlyphs, "Number of digit glyphs in the wave.")
	fs.BoolVar(&cfg.Inspector, "inspector", cfg.Inspector, "Show the Dear ImGui inspector overlay.")
	level := fs.String("log-level", cfg.LogLevel.String(), "Log level (trace, debug, info, warn, error).")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Backend = Backend(*backend)
	lvl, err := log.ParseLevel(*level)
	if err != nil {
		return Config{}, fmt.Errorf("log level: %w", err)
	}
	cfg.LogLevel = lvl

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the demo cannot run with.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return fmt.Errorf("%w: %q", ErrBackend, c.Backend)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.WaveGlyphs < 1 || c.WaveGlyphs > maxWaveGlyphs {
		return fmt.Errorf("wave glyphs must be within 1..%d, got %d", maxWaveGlyphs, c.WaveGlyphs)
	}
	if c.Inspector && c.Backend != BackendWindow {
		return ErrInspector
	}
	return nil
}
