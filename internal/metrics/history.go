package metrics

import "github.com/san-kum/rmatrix/internal/rain"

const historyCapacity = 600

// History keeps the live-stream count of the most recent frames for plotting.
type History struct {
	live  []float64
	limit int
}

func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = historyCapacity
	}
	return &History{live: make([]float64, 0, capacity), limit: capacity}
}

func (h *History) Name() string { return "history" }

func (h *History) Observe(frame int, stats rain.FrameStats) {
	h.live = append(h.live, float64(stats.Live))
	if len(h.live) > h.limit {
		h.live = h.live[1:]
	}
}

// Value is the most recent live count.
func (h *History) Value() float64 {
	if len(h.live) == 0 {
		return 0
	}
	return h.live[len(h.live)-1]
}

func (h *History) Reset() { h.live = h.live[:0] }

// Live returns a copy of the recorded live counts, oldest first.
func (h *History) Live() []float64 {
	out := make([]float64, len(h.live))
	copy(out, h.live)
	return out
}
