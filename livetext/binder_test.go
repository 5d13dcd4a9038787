package livetext

import (
	"context"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock float64

func (c fixedClock) ElapsedSeconds() float64 { return float64(c) }

type fixedFeed struct {
	value float64
	ok    bool
	calls int
}

func (f *fixedFeed) SmoothedSample() (float64, bool) {
	f.calls++
	return f.value, f.ok
}

func newScene(t *testing.T, waveGlyphs int) (*Binder, *TextElement, *TextElement, *TextElement) {
	t.Helper()

	pulsing := NewTextElement(1, Segment{Text: "hello\nlivetext!"})
	metric := NewTextElement(2, Segment{Text: "FPS: "}, Segment{})
	wave := newWave(waveGlyphs)
	wave.ID = 3

	b := NewBinder()
	require.NoError(t, b.Add(pulsing, RolePulsingColor))
	require.NoError(t, b.Add(metric, RoleMetric))
	require.NoError(t, b.Add(wave, RoleWaveAnimated))
	return b, pulsing, metric, wave
}

func TestBinderAdd(t *testing.T) {
	b, pulsing, _, _ := newScene(t, 10)
	assert.Equal(t, 3, b.Len())

	t.Run("duplicate id", func(t *testing.T) {
		err := b.Add(NewTextElement(pulsing.ID, Segment{}), RoleWaveAnimated)
		assert.ErrorIs(t, err, ErrDuplicateElement)
		assert.Equal(t, 3, b.Len())
	})

	t.Run("unknown role", func(t *testing.T) {
		err := b.Add(NewTextElement(10, Segment{}), Role(42))
		assert.ErrorIs(t, err, ErrUnknownRole)
	})

	t.Run("metric without value segment", func(t *testing.T) {
		err := b.Add(NewTextElement(11, Segment{Text: "FPS: "}), RoleMetric)
		assert.ErrorIs(t, err, ErrMetricSegments)
		_, ok := b.Element(11)
		assert.False(t, ok)
	})

	t.Run("lookup", func(t *testing.T) {
		el, ok := b.Element(pulsing.ID)
		require.True(t, ok)
		assert.Same(t, pulsing, el)

		role, ok := b.Role(3)
		require.True(t, ok)
		assert.Equal(t, RoleWaveAnimated, role)

		_, ok = b.Role(99)
		assert.False(t, ok)
	})

	t.Run("insertion order", func(t *testing.T) {
		var roles []Role
		for role := range b.All() {
			roles = append(roles, role)
		}
		assert.Equal(t, []Role{RolePulsingColor, RoleMetric, RoleWaveAnimated}, roles)
	})
}

func TestBinderTick(t *testing.T) {
	b, pulsing, metric, wave := newScene(t, 100)

	b.Tick(Tick{Elapsed: 1.5, Sample: 59.996, HasSample: true})
	assert.Equal(t, PulsingColor(1.5), pulsing.Segments[0].Color)
	assert.Equal(t, "60.00", metric.Segments[1].Text)
	for i, seg := range wave.Segments {
		assert.Equal(t, WaveOffset(1.5, i), seg.Offset)
	}

	b.Tick(Tick{Elapsed: 1.6})
	assert.Equal(t, "60.00", metric.Segments[1].Text, "stale value survives a tick without a sample")
	assert.Equal(t, PulsingColor(1.6), pulsing.Segments[0].Color)
	assert.Equal(t, colorful.Color{}, metric.Segments[0].Color, "metric colors are not animated")
}

func TestBinderTickParallel(t *testing.T) {
	seq := NewBinder()
	par := NewBinder()
	for i := 0; i < 64; i++ {
		role := Role(i % 3)
		for _, b := range []*Binder{seq, par} {
			el := newWave(25)
			el.ID = ElementID(i)
			require.NoError(t, b.Add(el, role))
		}
	}

	in := Tick{Elapsed: 12.75, Sample: 30.5, HasSample: true}
	seq.Tick(in)
	require.NoError(t, par.TickParallel(context.Background(), in, 4))

	for id := ElementID(0); id < 64; id++ {
		want, _ := seq.Element(id)
		got, _ := par.Element(id)
		assert.Equal(t, want.Segments, got.Segments, "element %d", id)
	}

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, par.TickParallel(ctx, in, 4), context.Canceled)
	})

	t.Run("single worker falls back to Tick", func(t *testing.T) {
		require.NoError(t, par.TickParallel(context.Background(), Tick{Elapsed: 1}, 1))
		el, _ := par.Element(1)
		assert.Equal(t, PulsingColor(1), el.Segments[0].Color)
	})
}

func TestReadTick(t *testing.T) {
	feed := &fixedFeed{value: 75, ok: true}
	in := ReadTick(fixedClock(3.25), feed)
	assert.Equal(t, Tick{Elapsed: 3.25, Sample: 75, HasSample: true}, in)
	assert.Equal(t, 1, feed.calls)

	in = ReadTick(fixedClock(4), nil)
	assert.Equal(t, Tick{Elapsed: 4}, in)
}
