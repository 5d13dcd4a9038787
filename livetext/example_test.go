package livetext_test

import (
	"fmt"

	"github.com/plus3/livetext/livetext"
)

type stopwatch float64

func (s stopwatch) ElapsedSeconds() float64 { return float64(s) }

type fpsFeed struct{ fps []float64 }

func (f *fpsFeed) SmoothedSample() (float64, bool) {
	if len(f.fps) == 0 {
		return 0, false
	}
	v := f.fps[0]
	f.fps = f.fps[1:]
	return v, true
}

// ExampleBinder binds a frame-rate readout and ticks it with and without a
// sample; the readout keeps its last value while no sample is available.
func ExampleBinder() {
	fps := livetext.NewTextElement(1,
		livetext.Segment{Text: "FPS: ", FontSize: 50},
		livetext.Segment{FontSize: 40, Font: livetext.FontMono},
	)

	binder := livetext.NewBinder()
	if err := binder.Add(fps, livetext.RoleMetric); err != nil {
		panic(err)
	}

	feed := &fpsFeed{fps: []float64{59.996}}
	binder.Tick(livetext.ReadTick(stopwatch(0.016), feed))
	fmt.Println(fps)

	binder.Tick(livetext.ReadTick(stopwatch(0.032), feed))
	fmt.Println(fps)

	// Output:
	// FPS: 60.00
	// FPS: 60.00
}

// ExampleWaveOffset shows the vertical displacement of the first glyphs of a
// wave at a quarter cycle.
func ExampleWaveOffset() {
	for i := 0; i < 6; i++ {
		fmt.Printf("%d: %.1f\n", i, livetext.WaveOffset(0.5, i).Y())
	}

	// Output:
	// 0: 40.0
	// 1: 38.0
	// 2: 32.4
	// 3: 23.5
	// 4: 12.4
	// 5: 0.0
}
