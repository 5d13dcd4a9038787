package inspector

import (
	"fmt"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/livetext/ecs"
	"github.com/plus3/livetext/internal/app"
	"github.com/plus3/livetext/livetext"
)

const maxPreview = 24

type elementRow struct {
	ID       string
	Role     string
	Segments string
	Preview  string
	Color    imgui.Vec4
	Hex      string
}

func elementRows(binder *livetext.Binder) []elementRow {
	rows := make([]elementRow, 0, binder.Len())
	for role, el := range binder.All() {
		row := elementRow{
			ID:       fmt.Sprintf("%d", el.ID),
			Role:     role.String(),
			Segments: fmt.Sprintf("%d", len(el.Segments)),
			Preview:  preview(el.String(), maxPreview),
		}
		if len(el.Segments) > 0 {
			c := el.Segments[0].Color.Clamped()
			row.Color = imgui.NewVec4(float32(c.R), float32(c.G), float32(c.B), 1)
			row.Hex = c.Hex()
		}
		rows = append(rows, row)
	}
	return rows
}

// preview flattens line breaks and cuts s to at most n runes.
func preview(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

type liveTextPanel struct {
	binder *livetext.Binder
}

func newLiveTextPanel(binder *livetext.Binder) *liveTextPanel {
	return &liveTextPanel{binder: binder}
}

func (p *liveTextPanel) Render() {
	if !imgui.BeginV("Live Text", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("LiveTextTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Role")
		imgui.TableSetupColumn("Segments")
		imgui.TableSetupColumn("Text")
		imgui.TableHeadersRow()

		for _, row := range elementRows(p.binder) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(row.ID)
			imgui.TableNextColumn()
			imgui.Text(row.Role)
			imgui.TableNextColumn()
			imgui.Text(row.Segments)
			imgui.TableNextColumn()
			imgui.TextColored(row.Color, row.Preview)
		}

		imgui.EndTable()
	}

	imgui.End()
}

type systemRow struct {
	Name string
	Runs string
	Avg  string
	Max  string
}

func systemRows(stats *ecs.SchedulerStats) []systemRow {
	rows := make([]systemRow, 0, len(stats.Systems))
	for _, s := range stats.Systems {
		row := systemRow{
			Name: s.Name,
			Runs: fmt.Sprintf("%d", s.ExecutionCount),
			Avg:  s.AvgDuration.Round(time.Microsecond).String(),
			Max:  "-",
		}
		if s.ExecutionCount > 0 {
			row.Max = s.MaxDuration.Round(time.Microsecond).String()
		}
		rows = append(rows, row)
	}
	return rows
}

type performancePanel struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	metrics   *ecs.Singleton[app.FrameMetrics]
}

func newPerformancePanel(w *app.World) *performancePanel {
	return &performancePanel{
		storage:   w.Storage,
		scheduler: w.Update,
		metrics:   w.Metrics,
	}
}

func (p *performancePanel) Render() {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := p.storage.CollectStats()
	imgui.Text(fmt.Sprintf("Total Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))

	metrics := p.metrics.Get()
	if fps, ok := metrics.SmoothedSample(); ok {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", 1000/fps, fps))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	if history := metrics.History(); len(history) > 0 {
		imgui.PlotLinesFloatPtr("##frametime", &history[0], int32(len(history)))
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg

	if imgui.TreeNodeStr("Systems") {
		if imgui.BeginTableV("SystemsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, row := range systemRows(p.scheduler.GetStats()) {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(row.Name)
				imgui.TableNextColumn()
				imgui.Text(row.Runs)
				imgui.TableNextColumn()
				imgui.Text(row.Avg)
				imgui.TableNextColumn()
				imgui.Text(row.Max)
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Archetype Details") {
		if imgui.BeginTableV("ArchStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Archetype ID")
			imgui.TableSetupColumn("Components")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, arch := range stats.ArchetypeBreakdown {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("0x%X", arch.ID))
				imgui.TableNextColumn()
				imgui.Text(strings.Join(arch.ComponentTypes, ", "))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", arch.EntityCount))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singleton Details") {
		for _, singletonType := range stats.SingletonTypes {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}

	imgui.End()
}
