package screen

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/rmatrix/internal/rain"
	"github.com/san-kum/rmatrix/internal/theme"
)

var ErrNoSize = errors.New("screen: terminal reported zero size")

const closeTimeout = time.Second

// Screen adapts a tcell.Screen to rain.Surface and owns the event pump.
type Screen struct {
	tc     tcell.Screen
	theme  theme.Theme
	size   *SizeState
	quit   chan struct{}
	done   chan struct{}
	logger *slog.Logger
}

// Open creates and initializes a terminal screen.
func Open(th theme.Theme, logger *slog.Logger) (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return New(tc, th, logger)
}

// New wraps an already created tcell screen, initializing it. Tests pass a
// simulation screen here.
func New(tc tcell.Screen, th theme.Theme, logger *slog.Logger) (*Screen, error) {
	if err := tc.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	tc.HideCursor()
	tc.SetStyle(th.Blank())
	tc.Clear()

	w, h := tc.Size()
	s := &Screen{
		tc:     tc,
		theme:  th,
		size:   NewSizeState(w, h),
		quit:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		logger: logger,
	}
	if w <= 0 || h <= 0 {
		tc.Fini()
		return nil, ErrNoSize
	}

	go s.pump()
	return s, nil
}

func (s *Screen) Size() *SizeState { return s.size }

// Snapshot returns the size to use for the next frame.
func (s *Screen) Snapshot() (rain.Size, uint64) { return s.size.Snapshot() }

// pump forwards tcell events until the screen is finalized. It is the only
// writer of the size state.
func (s *Screen) pump() {
	defer close(s.done)
	for {
		ev := s.tc.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			s.size.Set(w, h)
			s.logger.Debug("resize", "width", w, "height", h)
		case *tcell.EventKey:
			if IsQuitKey(ev) {
				s.logger.Debug("quit key", "key", ev.Name())
				select {
				case s.quit <- struct{}{}:
				default:
				}
			}
		}
	}
}

// QuitRequested reports, without blocking, whether a quit key arrived.
func (s *Screen) QuitRequested() bool {
	select {
	case <-s.quit:
		return true
	default:
		return false
	}
}

// IsQuitKey matches q, Escape, Ctrl-C and Ctrl-D.
func IsQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlD:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func (s *Screen) SetCell(x, y int, r rune, style rain.Style) {
	s.tc.SetContent(x, y, r, nil, s.theme.Tcell(style))
}

func (s *Screen) Restyle(x, y int, style rain.Style) {
	w, h := s.tc.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	mainc, comb, _, _ := s.tc.GetContent(x, y)
	s.tc.SetContent(x, y, mainc, comb, s.theme.Tcell(style))
}

func (s *Screen) ClearCell(x, y int) {
	s.tc.SetContent(x, y, ' ', nil, s.theme.Blank())
}

// Show presents the frame.
func (s *Screen) Show() { s.tc.Show() }

// Reset clears the screen and forces a full redraw after a resize.
func (s *Screen) Reset() {
	s.tc.Clear()
	s.tc.Sync()
}

// Close restores the terminal and waits for the event pump to exit.
func (s *Screen) Close() {
	s.tc.Fini()
	select {
	case <-s.done:
	case <-time.After(closeTimeout):
		s.logger.Warn("event pump did not stop")
	}
}
