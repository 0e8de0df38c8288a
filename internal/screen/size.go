package screen

import (
	"sync"

	"github.com/san-kum/rmatrix/internal/rain"
)

// SizeState holds the terminal geometry shared between the resize
// listener (sole writer) and the frame loop (reader).
type SizeState struct {
	mu     sync.RWMutex
	width  int
	height int
	gen    uint64
}

func NewSizeState(w, h int) *SizeState {
	return &SizeState{width: w, height: h}
}

// Set records a new size. Only the resize listener calls it.
func (s *SizeState) Set(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	s.gen++
}

// Snapshot returns a consistent view of the size and its generation,
// which increments on every change.
func (s *SizeState) Snapshot() (rain.Size, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return rain.Size{Width: s.width, Height: s.height}, s.gen
}
