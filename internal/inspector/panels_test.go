package inspector

import (
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/plus3/livetext/ecs"
	"github.com/plus3/livetext/livetext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreview(t *testing.T) {
	assert.Equal(t, "hello world", preview("hello\nworld", 24))
	assert.Equal(t, "0123…", preview("0123456789", 5))
	assert.Equal(t, "", preview("", 5))
}

func TestElementRows(t *testing.T) {
	binder := livetext.NewBinder()
	require.NoError(t, binder.Add(livetext.NewTextElement(7, livetext.Segment{
		Text:  "hi\nthere",
		Color: colorful.Color{R: 1, G: 0.5, B: 0},
	}), livetext.RolePulsingColor))
	require.NoError(t, binder.Add(livetext.NewTextElement(8,
		livetext.Segment{Text: "FPS: "},
		livetext.Segment{Text: "60.00"},
	), livetext.RoleMetric))

	rows := elementRows(binder)
	require.Len(t, rows, 2)

	assert.Equal(t, "7", rows[0].ID)
	assert.Equal(t, livetext.RolePulsingColor.String(), rows[0].Role)
	assert.Equal(t, "hi there", rows[0].Preview)
	assert.Equal(t, "#ff8000", rows[0].Hex)
	assert.Equal(t, float32(1), rows[0].Color.W)

	assert.Equal(t, "2", rows[1].Segments)
	assert.Equal(t, "FPS: 60.00", rows[1].Preview)
}

func TestSystemRows(t *testing.T) {
	rows := systemRows(&ecs.SchedulerStats{
		Systems: []ecs.SystemStats{
			{Name: "BindSystem", ExecutionCount: 3, AvgDuration: 1500 * time.Nanosecond, MaxDuration: 2 * time.Millisecond},
			{Name: "Idle"},
		},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, systemRow{Name: "BindSystem", Runs: "3", Avg: "2µs", Max: "2ms"}, rows[0])
	assert.Equal(t, "-", rows[1].Max)
	assert.Equal(t, "0s", rows[1].Avg)
}
