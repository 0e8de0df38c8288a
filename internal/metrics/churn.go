package metrics

import "github.com/san-kum/rmatrix/internal/rain"

// Churn is the mean number of streams culled per frame.
type Churn struct {
	name    string
	culled  int
	samples int
}

func NewChurn() *Churn {
	return &Churn{
		name: "culled_per_frame",
	}
}

func (c *Churn) Name() string {
	return c.name
}

func (c *Churn) Observe(frame int, stats rain.FrameStats) {
	c.culled += stats.Culled
	c.samples++
}

func (c *Churn) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.culled) / float64(c.samples)
}

func (c *Churn) Reset() {
	c.culled = 0
	c.samples = 0
}
