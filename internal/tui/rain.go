// Package tui runs the rain effect as a Bubble Tea program.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/rmatrix/internal/rain"
	"github.com/san-kum/rmatrix/internal/screen"
	"github.com/san-kum/rmatrix/internal/theme"
)

type frameMsg time.Time

func tick(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Model renders a rain.Field into a canvas on every frame tick. Bubble Tea
// delivers messages one at a time, so the size read in a frame is always
// the last WindowSizeMsg.
type Model struct {
	field    *rain.Field
	canvas   *screen.Canvas
	theme    theme.Theme
	delay    time.Duration
	size     rain.Size
	logger   *slog.Logger
	err      error
	quitting bool
}

func NewModel(field *rain.Field, th theme.Theme, delay time.Duration, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return Model{
		field:  field,
		canvas: screen.NewCanvas(0, 0),
		theme:  th,
		delay:  delay,
		logger: logger,
	}
}

func (m Model) Init() tea.Cmd { return tick(m.delay) }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "Q", "esc", "ctrl+c", "ctrl+d":
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.size = rain.Size{Width: msg.Width, Height: msg.Height}
		m.canvas.Resize(msg.Width, msg.Height)
		m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
	case frameMsg:
		if m.size.Width > 0 && m.size.Height > 0 {
			if _, err := m.field.Frame(m.canvas, m.size); err != nil {
				m.err = fmt.Errorf("frame %d: %w", m.field.Frames(), err)
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m, tick(m.delay)
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.canvas.Render(m.theme)
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error { return m.err }

// Run blocks until the user quits or ctx is canceled.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
