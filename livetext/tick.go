package livetext

// Clock reports the elapsed simulation time. Values never decrease.
type Clock interface {
	ElapsedSeconds() float64
}

// MetricFeed reports the current smoothed metric sample, if one is available.
type MetricFeed interface {
	SmoothedSample() (float64, bool)
}

// Tick carries the read-only inputs of a single update.
type Tick struct {
	Elapsed   float64
	Sample    float64
	HasSample bool
}

// ReadTick queries clock and feed once each. A nil feed yields no sample.
func ReadTick(clock Clock, feed MetricFeed) Tick {
	in := Tick{Elapsed: clock.ElapsedSeconds()}
	if feed != nil {
		in.Sample, in.HasSample = feed.SmoothedSample()
	}
	return in
}

// Apply runs the update rule for role against el.
func (in Tick) Apply(role Role, el *TextElement) {
	switch role {
	case RoleMetric:
		UpdateMetricText(el, in.Sample, in.HasSample)
	case RolePulsingColor:
		UpdatePulsingColor(el, in.Elapsed)
	case RoleWaveAnimated:
		UpdateWaveOffsets(el, in.Elapsed)
	}
}
