package rain

import (
	"math/rand/v2"
)

// Collection owns the live streams.
type Collection struct {
	streams []*Stream
	params  Params
}

func NewCollection(params Params) *Collection {
	return &Collection{
		streams: make([]*Stream, 0, 64),
		params:  params,
	}
}

func (c *Collection) Len() int { return len(c.streams) }

// Streams returns the streams in insertion order. The slice must not be
// modified by the caller.
func (c *Collection) Streams() []*Stream { return c.streams }

// Add appends s without consulting the placement policy.
func (c *Collection) Add(s *Stream) { c.streams = append(c.streams, s) }

// TrySpawn builds a random candidate and appends it if MayAdmit allows.
func (c *Collection) TrySpawn(width, height int, rng *rand.Rand) bool {
	if width <= 0 {
		return false
	}
	candidate := NewStream(rng.IntN(width), c.trailLength(height, rng))
	return c.Admit(candidate, height)
}

// Admit appends candidate if the placement policy allows it.
func (c *Collection) Admit(candidate *Stream, height int) bool {
	if !MayAdmit(candidate, height, c.streams) {
		return false
	}
	c.streams = append(c.streams, candidate)
	return true
}

func (c *Collection) trailLength(height int, rng *rand.Rand) int {
	lo, hi := c.params.TrailMin, c.params.TrailMax
	if c.params.TrailFromHeight {
		lo, hi = 0, height
	}
	if hi <= lo {
		return max(lo, 0)
	}
	return lo + rng.IntN(hi-lo)
}

// AdvanceAll advances and renders every live stream once. Streams that die
// are left in place for Cull. The first render error aborts the pass.
func (c *Collection) AdvanceAll(surface Surface, height int, rng *rand.Rand, opts RenderOptions) error {
	for _, s := range c.streams {
		if !s.Alive() {
			continue
		}
		if _, err := s.AdvanceAndRender(surface, height, rng, opts); err != nil {
			return err
		}
	}
	return nil
}

// Cull drops dead streams and returns how many were removed.
func (c *Collection) Cull() int {
	kept := c.streams[:0]
	for _, s := range c.streams {
		if s.Alive() {
			kept = append(kept, s)
		}
	}
	removed := len(c.streams) - len(kept)
	for i := len(kept); i < len(c.streams); i++ {
		c.streams[i] = nil
	}
	c.streams = kept
	return removed
}
