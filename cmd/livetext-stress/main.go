// Command livetext-stress ticks a large binder as fast as it can and prints
// a Markdown report of tick times and memory use.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/plus3/livetext/internal/app"
	"github.com/plus3/livetext/livetext"
	log "github.com/sirupsen/logrus"
)

var roles = []livetext.Role{
	livetext.RoleMetric,
	livetext.RolePulsingColor,
	livetext.RoleWaveAnimated,
}

// buildBinder binds count elements of segments segments each, rotating
// through the roles.
func buildBinder(count, segments int) (*livetext.Binder, map[string]int, error) {
	binder := livetext.NewBinder()
	breakdown := make(map[string]int, len(roles))

	for i := 0; i < count; i++ {
		el := livetext.NewTextElement(livetext.ElementID(i + 1))
		for s := 0; s < segments; s++ {
			el.Segments = append(el.Segments, livetext.Segment{
				Text:     strconv.Itoa(s % 10),
				Color:    app.Gold,
				FontSize: 10,
				Font:     livetext.FontMono,
			})
		}

		role := roles[i%len(roles)]
		if err := binder.Add(el, role); err != nil {
			return nil, nil, err
		}
		breakdown[role.String()]++
	}

	return binder, breakdown, nil
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	elementCount := flag.Int("elements", 1000, "The number of bound text elements.")
	segmentCount := flag.Int("segments", 100, "Segments per element (at least 2).")
	workers := flag.Int("workers", 1, "Workers for parallel ticks; 1 ticks on the calling goroutine.")
	flag.Parse()

	log.SetOutput(colorable.NewColorableStderr())

	if *segmentCount < 2 {
		log.Fatalf("segments must be at least 2, got %d", *segmentCount)
	}

	log.Info("Starting live text stress test...")

	binder, breakdown, err := buildBinder(*elementCount, *segmentCount)
	if err != nil {
		log.WithError(err).Fatal("Failed to bind elements")
	}
	log.WithFields(log.Fields{
		"elements": *elementCount,
		"segments": *segmentCount,
		"workers":  *workers,
	}).Info("Binding complete")

	report := &Report{
		Duration: *duration,
		Elements: *elementCount,
		Segments: *segmentCount,
		Workers:  *workers,
		Roles:    breakdown,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Infof("Running for %s...", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	var (
		clock   app.SimClock
		metrics app.FrameMetrics
	)

	startTime := time.Now()
	lastFrameTime := startTime

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			now := time.Now()
			dt := now.Sub(lastFrameTime).Seconds()
			lastFrameTime = now

			clock.Elapsed += dt
			metrics.Record(dt)
			in := livetext.ReadTick(&clock, &metrics)

			tickStart := time.Now()
			if *workers > 1 {
				if err := binder.TickParallel(ctx, in, *workers); err != nil {
					if errors.Is(err, context.DeadlineExceeded) {
						break Loop
					}
					log.WithError(err).Fatal("Tick failed")
				}
			} else {
				binder.Tick(in)
			}
			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
			report.TotalTicks++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	for role, el := range binder.All() {
		if role == livetext.RoleMetric {
			report.LastMetric = el.Segments[1].Text
			break
		}
	}

	log.Info("Stress run finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.WithError(err).Fatal("Failed to generate report")
	}
	fmt.Println("--- End of Report ---")
}
