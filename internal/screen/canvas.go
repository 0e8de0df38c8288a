package screen

import (
	"strings"

	"github.com/san-kum/rmatrix/internal/rain"
	"github.com/san-kum/rmatrix/internal/theme"
)

// Cell is one character position of a Canvas.
type Cell struct {
	Rune  rune
	Style rain.Style
}

var blank = Cell{Rune: ' ', Style: rain.StyleTrail}

// Canvas is an in-memory cell grid implementing rain.Surface. It backs the
// Bubble Tea renderer and headless runs.
type Canvas struct {
	Width, Height int
	Grid          [][]Cell
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the grid; contents are discarded.
func (c *Canvas) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	c.Width, c.Height = w, h
	c.Grid = make([][]Cell, h)
	for i := range c.Grid {
		c.Grid[i] = make([]Cell, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.Width && y < c.Height
}

func (c *Canvas) SetCell(x, y int, r rune, style rain.Style) {
	if !c.inside(x, y) {
		return
	}
	c.Grid[y][x] = Cell{Rune: r, Style: style}
}

func (c *Canvas) Restyle(x, y int, style rain.Style) {
	if !c.inside(x, y) {
		return
	}
	c.Grid[y][x].Style = style
}

func (c *Canvas) ClearCell(x, y int) {
	if !c.inside(x, y) {
		return
	}
	c.Grid[y][x] = blank
}

// Cell returns the cell at (x, y); out of range yields a blank.
func (c *Canvas) Cell(x, y int) Cell {
	if !c.inside(x, y) {
		return blank
	}
	return c.Grid[y][x]
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// Occupied counts non-blank cells.
func (c *Canvas) Occupied() int {
	n := 0
	for _, row := range c.Grid {
		for _, cell := range row {
			if cell.Rune != ' ' {
				n++
			}
		}
	}
	return n
}

// String returns the grid as plain text, one line per row.
func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		for _, cell := range row {
			b.WriteRune(cell.Rune)
		}
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Render paints the grid with th. Runs of equally styled cells share one
// lipgloss render call.
func (c *Canvas) Render(th theme.Theme) string {
	styles := map[rain.Style]func(...string) string{
		rain.StyleTrail:     th.Lipgloss(rain.StyleTrail).Render,
		rain.StyleTrailBold: th.Lipgloss(rain.StyleTrailBold).Render,
		rain.StyleLeader:    th.Lipgloss(rain.StyleLeader).Render,
	}

	var b strings.Builder
	var run strings.Builder
	for i, row := range c.Grid {
		for j := 0; j < len(row); {
			style := row[j].Style
			run.Reset()
			for j < len(row) && row[j].Style == style {
				run.WriteRune(row[j].Rune)
				j++
			}
			b.WriteString(styles[style](run.String()))
		}
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
