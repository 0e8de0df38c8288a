package metrics

import "github.com/san-kum/rmatrix/internal/rain"

// LiveStreams is the mean number of streams alive after each frame.
type LiveStreams struct {
	name    string
	total   int
	peak    int
	samples int
}

func NewLiveStreams() *LiveStreams {
	return &LiveStreams{name: "live_streams"}
}

func (l *LiveStreams) Name() string { return l.name }

func (l *LiveStreams) Observe(frame int, stats rain.FrameStats) {
	l.total += stats.Live
	l.peak = max(l.peak, stats.Live)
	l.samples++
}

func (l *LiveStreams) Value() float64 {
	if l.samples == 0 {
		return 0
	}
	return float64(l.total) / float64(l.samples)
}

func (l *LiveStreams) Peak() int { return l.peak }

func (l *LiveStreams) Reset() {
	l.total = 0
	l.peak = 0
	l.samples = 0
}
