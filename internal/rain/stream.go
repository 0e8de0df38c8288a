package rain

import (
	"fmt"
	"math/rand/v2"

	"github.com/san-kum/rmatrix/internal/glyph"
)

// Stream is one falling column. Column and trail length are fixed at
// creation; row advances by one per surviving frame.
type Stream struct {
	column int
	trail  int
	row    int
	dead   bool
}

func NewStream(column, trail int) *Stream {
	if trail < 0 {
		trail = 0
	}
	return &Stream{column: column, trail: trail}
}

func (s *Stream) Column() int      { return s.column }
func (s *Stream) TrailLength() int { return s.trail }
func (s *Stream) Row() int         { return s.row }
func (s *Stream) Alive() bool      { return !s.dead }

// Tail is the row of the trailing erase point, saturating at zero.
func (s *Stream) Tail() int {
	return satSub(s.row, s.trail)
}

// RenderOptions carries the per-run settings a stream needs to draw itself.
type RenderOptions struct {
	Mode       glyph.Mode
	Bold       bool
	BoldChance float64
}

// AdvanceAndRender draws the stream's current frame and moves it down one
// row. It returns false once the tail has passed the bottom of the screen;
// a dead stream draws nothing.
func (s *Stream) AdvanceAndRender(surface Surface, height int, rng *rand.Rand, opts RenderOptions) (bool, error) {
	if s.dead {
		return false, nil
	}

	r, err := glyph.Next(rng, opts.Mode)
	if err != nil {
		return false, fmt.Errorf("stream at column %d row %d: %w", s.column, s.row, err)
	}
	surface.SetCell(s.column, s.row, r, StyleTrail)
	surface.Restyle(s.column, s.row, StyleLeader)

	if s.row > 0 {
		style := StyleTrail
		if opts.Bold && rng.Float64() < opts.BoldChance {
			style = StyleTrailBold
		}
		surface.Restyle(s.column, s.row-1, style)
	}

	if s.row >= s.trail {
		surface.ClearCell(s.column, s.row-s.trail)
	}

	if s.Tail() > height {
		s.dead = true
		return false, nil
	}

	s.row++
	return true, nil
}

func satSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}
