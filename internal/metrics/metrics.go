// Package metrics aggregates per-frame statistics of a rain field.
package metrics

import "github.com/san-kum/rmatrix/internal/rain"

type Metric interface {
	Name() string
	Observe(frame int, stats rain.FrameStats)
	Value() float64
	Reset()
}

// Defaults returns the metrics reported by bench runs.
func Defaults() []Metric {
	return []Metric{
		NewLiveStreams(),
		NewAdmission(),
		NewChurn(),
	}
}
