// Command livetext shows text bound to a pulsing color, a frame-rate readout
// and a traveling wave, either in a window or in the terminal.
//
// Usage:
//
//	livetext [-backend window|terminal] [-inspector] [-wave-glyphs N]
package main

import (
	"errors"
	"flag"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/plus3/livetext/internal/app"
	"github.com/plus3/livetext/internal/config"
	"github.com/plus3/livetext/internal/tui"
	"github.com/plus3/livetext/internal/window"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetOutput(colorable.NewColorableStderr())
	log.SetFormatter(&log.TextFormatter{ForceColors: true, FullTimestamp: true})

	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}
	log.SetLevel(cfg.LogLevel)

	world, err := app.NewWorld(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to build scene")
	}
	log.WithFields(log.Fields{
		"backend":  cfg.Backend,
		"elements": world.Binder.Len(),
		"glyphs":   cfg.WaveGlyphs,
	}).Info("Scene ready")

	switch cfg.Backend {
	case config.BackendTerminal:
		err = tui.Run(cfg, world)
	default:
		err = window.Run(cfg, world)
	}
	if err != nil {
		log.WithError(err).Fatal("Backend stopped")
	}
}
