package window

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/livetext/ecs"
	"github.com/plus3/livetext/internal/app"
	"github.com/plus3/livetext/internal/config"
	"github.com/plus3/livetext/internal/inspector"
	log "github.com/sirupsen/logrus"
)

const title = "livetext"

// Game drives the world from ebiten's update loop and draws it.
type Game struct {
	world  *app.World
	draw   *ecs.Scheduler
	screen *ecs.Singleton[Screen]
	imgui  *ecs.Singleton[inspector.Backend]

	tps  int
	last time.Time
}

// NewGame registers the render system on its own scheduler so drawing runs
// once per ebiten Draw, separate from the update systems.
func NewGame(cfg config.Config, world *app.World) *Game {
	g := &Game{
		world:  world,
		draw:   ecs.NewScheduler(world.Storage),
		screen: ecs.NewSingleton[Screen](world.Storage),
		tps:    cfg.TPS,
	}
	g.draw.Register(&RenderSystem{})

	if cfg.Inspector {
		g.imgui = inspector.Attach(world, inspector.NewBackend(title, cfg.Width, cfg.Height))
	}
	return g
}

// frameTime returns the wall time since the previous update, or one nominal
// tick for the first update.
func (g *Game) frameTime(now time.Time) float64 {
	dt := 1 / float64(g.tps)
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now
	return dt
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := g.frameTime(time.Now())
	if g.imgui != nil {
		g.imgui.Get().BeginFrame()
		g.world.Tick(dt)
		g.imgui.Get().EndFrame()
		return nil
	}

	g.world.Tick(dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Get().Image = screen
	g.draw.Once(0)

	if g.imgui != nil {
		g.imgui.Get().Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Get().Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Config, world *app.World) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	game := NewGame(cfg, world)

	log.WithFields(log.Fields{
		"width":     cfg.Width,
		"height":    cfg.Height,
		"tps":       cfg.TPS,
		"inspector": cfg.Inspector,
	}).Info("Opening window")

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
