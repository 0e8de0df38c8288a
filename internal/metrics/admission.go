package metrics

import "github.com/san-kum/rmatrix/internal/rain"

// Admission is the fraction of spawn attempts the placement policy accepted.
type Admission struct {
	name     string
	attempts int
	spawned  int
}

func NewAdmission() *Admission {
	return &Admission{name: "admission_ratio"}
}

func (a *Admission) Name() string {
	return a.name
}

func (a *Admission) Observe(frame int, stats rain.FrameStats) {
	a.attempts += stats.Attempts
	a.spawned += stats.Spawned
}

func (a *Admission) Value() float64 {
	if a.attempts == 0 {
		return 1.0
	}
	return float64(a.spawned) / float64(a.attempts)
}

func (a *Admission) Reset() {
	a.attempts = 0
	a.spawned = 0
}
