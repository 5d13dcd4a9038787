package app

import (
	"testing"

	"github.com/plus3/livetext/ecs"
	"github.com/plus3/livetext/internal/config"
	"github.com/plus3/livetext/livetext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(config.Default())
	require.NoError(t, err)
	return w
}

func TestNewWorldScene(t *testing.T) {
	w := newTestWorld(t)

	assert.Equal(t, 3, w.Binder.Len())

	roles := map[livetext.ElementID]livetext.Role{
		PulsingID: livetext.RolePulsingColor,
		MetricID:  livetext.RoleMetric,
		WaveID:    livetext.RoleWaveAnimated,
	}
	for id, want := range roles {
		role, ok := w.Binder.Role(id)
		require.True(t, ok, "element %d", id)
		assert.Equal(t, want, role)
	}

	wave, ok := w.Binder.Element(WaveID)
	require.True(t, ok)
	require.Len(t, wave.Segments, 100)
	assert.Equal(t, "7", wave.Segments[17].Text)
	assert.Equal(t, 17.0, wave.Segments[17].Offset.Y())
	assert.Equal(t, Gold, wave.Segments[17].Color)

	stats := w.Storage.CollectStats()
	assert.Equal(t, 4, stats.TotalEntityCount)
	assert.Equal(t, 2, stats.ArchetypeCount)
	assert.Equal(t, 4, stats.SingletonCount)

	var live *LiveText
	require.True(t, w.Storage.ReadSingleton(&live))
	assert.Same(t, w.Binder, live.Binder)
}

func TestNewWorldWaveGlyphs(t *testing.T) {
	cfg := config.Default()
	cfg.WaveGlyphs = 3

	w, err := NewWorld(cfg)
	require.NoError(t, err)

	wave, ok := w.Binder.Element(WaveID)
	require.True(t, ok)
	assert.Equal(t, "012", wave.String())
}

func TestTickAdvancesClock(t *testing.T) {
	w := newTestWorld(t)

	deltas := []float64{0.016, 0.017, 0.5, 0}
	var sum float64
	for _, dt := range deltas {
		w.Tick(dt)
		sum += dt
	}

	assert.InDelta(t, sum, w.Clock.Get().Elapsed, 1e-12)

	wave, _ := w.Binder.Element(WaveID)
	for i, seg := range wave.Segments {
		assert.Equal(t, livetext.WaveOffset(sum, i), seg.Offset)
	}

	pulsing, _ := w.Binder.Element(PulsingID)
	assert.Equal(t, livetext.PulsingColor(sum), pulsing.Segments[0].Color)
}

func TestMetricWaitsForSample(t *testing.T) {
	w := newTestWorld(t)
	metric, ok := w.Binder.Element(MetricID)
	require.True(t, ok)

	assert.Equal(t, "FPS: ", metric.String())

	w.Tick(0)
	assert.Equal(t, "", metric.Segments[1].Text, "a zero-length frame is not a sample")

	w.Tick(0.02)
	assert.Equal(t, "50.00", metric.Segments[1].Text)
	assert.Equal(t, "FPS: ", metric.Segments[0].Text)

	w.Tick(0.02)
	assert.Equal(t, "FPS: 50.00", metric.String())
}

func TestUpdateSchedulerStats(t *testing.T) {
	w := newTestWorld(t)
	for range 5 {
		w.Tick(1.0 / 60.0)
	}

	stats := w.Update.GetStats()
	assert.Equal(t, 3, stats.SystemCount)
	assert.Equal(t, int64(15), stats.TotalExecutions)

	names := make([]string, 0, len(stats.Systems))
	for _, s := range stats.Systems {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"ClockSystem", "FrameMetricsSystem", "BindSystem"}, names)
}

func TestSystemsShareSingletons(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	storage := ecs.NewStorage(registry)
	ecs.NewSingleton[SimClock](storage, SimClock{Elapsed: 10})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&ClockSystem{})
	scheduler.Once(0.25)

	var clock *SimClock
	require.True(t, storage.ReadSingleton(&clock))
	assert.Equal(t, 10.25, clock.ElapsedSeconds())
}
