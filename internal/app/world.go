// Package app builds the live text scene: the ECS storage holding the text
// entities, the singletons feeding the binder, and the update scheduler.
// Backends add their own drawing on top of a World.
package app

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/plus3/livetext/ecs"
	"github.com/plus3/livetext/internal/config"
	"github.com/plus3/livetext/internal/layout"
	"github.com/plus3/livetext/livetext"
	log "github.com/sirupsen/logrus"
)

const (
	PulsingID livetext.ElementID = iota + 1
	MetricID
	WaveID
	FooterID
)

var (
	White = colorful.Color{R: 1, G: 1, B: 1}
	Gold  = colorful.Color{R: 1, G: 215.0 / 255.0, B: 0}
)

// World is a ready-to-tick live text scene.
type World struct {
	Registry *ecs.ComponentRegistry
	Storage  *ecs.Storage
	Update   *ecs.Scheduler
	Binder   *livetext.Binder
	Fonts    *ecs.Singleton[FontBook]
	Clock    *ecs.Singleton[SimClock]
	Metrics  *ecs.Singleton[FrameMetrics]
}

// NewWorld registers components, creates singletons, spawns the scene's text
// entities and binds them.
func NewWorld(cfg config.Config) (*World, error) {
	fonts, err := LoadFontBook()
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Text](registry)
	ecs.RegisterComponent[StaticText](registry)
	ecs.RegisterComponent[Placement](registry)

	storage := ecs.NewStorage(registry)
	binder := livetext.NewBinder()

	w := &World{
		Registry: registry,
		Storage:  storage,
		Binder:   binder,
		Fonts:    ecs.NewSingleton[FontBook](storage, fonts),
		Clock:    ecs.NewSingleton[SimClock](storage),
		Metrics:  ecs.NewSingleton[FrameMetrics](storage),
	}
	ecs.NewSingleton[LiveText](storage, LiveText{Binder: binder})

	if err := w.spawnScene(cfg.WaveGlyphs); err != nil {
		return nil, err
	}

	w.Update = ecs.NewScheduler(storage)
	w.Update.Register(&ClockSystem{})
	w.Update.Register(&FrameMetricsSystem{})
	w.Update.Register(&BindSystem{})

	return w, nil
}

func (w *World) spawnScene(waveGlyphs int) error {
	pulsing := livetext.NewTextElement(PulsingID, livetext.Segment{
		Text:     "hello\nlivetext!",
		Color:    White,
		FontSize: 80,
		Font:     livetext.FontSans,
	})
	if err := w.bind(pulsing, livetext.RolePulsingColor, Placement{
		Anchor:  layout.Anchor{Horizontal: layout.EdgeEnd, Vertical: layout.EdgeEnd, X: 5, Y: 5},
		Justify: layout.JustifyCenter,
	}); err != nil {
		return err
	}

	metric := livetext.NewTextElement(MetricID,
		livetext.Segment{Text: "FPS: ", Color: White, FontSize: 50, Font: livetext.FontSans},
		livetext.Segment{Color: Gold, FontSize: 40, Font: livetext.FontMono},
	)
	if err := w.bind(metric, livetext.RoleMetric, Placement{}); err != nil {
		return err
	}

	wave := livetext.NewTextElement(WaveID)
	for i := 0; i < waveGlyphs; i++ {
		wave.Segments = append(wave.Segments, livetext.Segment{
			Text:     strconv.Itoa(i % 10),
			Color:    Gold,
			FontSize: 10,
			Font:     livetext.FontMono,
			Offset:   mgl64.Vec2{0, float64(i)},
		})
	}
	if err := w.bind(wave, livetext.RoleWaveAnimated, Placement{
		Anchor: layout.Anchor{Horizontal: layout.EdgeStart, Vertical: layout.EdgeEnd, X: 15, Y: 60},
	}); err != nil {
		return err
	}

	w.Storage.Spawn(
		StaticText{Element: *livetext.NewTextElement(FooterID, livetext.Segment{
			Text:     "Static text in the default mono face",
			Color:    White,
			FontSize: 24,
			Font:     livetext.FontMono,
		})},
		Placement{
			Anchor: layout.Anchor{Horizontal: layout.EdgeStart, Vertical: layout.EdgeEnd, X: 15, Y: 5},
		},
	)
	log.WithField("id", FooterID).Debug("Spawned static text")

	return nil
}

func (w *World) bind(el *livetext.TextElement, role livetext.Role, placement Placement) error {
	if err := w.Binder.Add(el, role); err != nil {
		return fmt.Errorf("bind element %d: %w", el.ID, err)
	}
	w.Storage.Spawn(Text{ID: el.ID}, placement)

	log.WithFields(log.Fields{
		"id":       el.ID,
		"role":     role,
		"segments": len(el.Segments),
	}).Debug("Bound live text")
	return nil
}

// Tick advances the scene by dt seconds.
func (w *World) Tick(dt float64) {
	w.Update.Once(dt)
}
