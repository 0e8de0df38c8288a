package screen

import (
	"errors"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/san-kum/rmatrix/internal/glyph"
	"github.com/san-kum/rmatrix/internal/rain"
	"github.com/san-kum/rmatrix/internal/theme"
)

func TestCanvasCells(t *testing.T) {
	c := NewCanvas(4, 3)

	c.SetCell(1, 2, 'a', rain.StyleTrail)
	c.Restyle(1, 2, rain.StyleLeader)
	if got := c.Cell(1, 2); got.Rune != 'a' || got.Style != rain.StyleLeader {
		t.Errorf("unexpected cell %+v", got)
	}

	c.ClearCell(1, 2)
	if got := c.Cell(1, 2); got.Rune != ' ' {
		t.Errorf("expected blank, got %q", got.Rune)
	}

	// out of range writes are dropped
	c.SetCell(4, 0, 'x', rain.StyleLeader)
	c.SetCell(0, -1, 'x', rain.StyleLeader)
	c.Restyle(9, 9, rain.StyleLeader)
	c.ClearCell(-3, 1)
	if c.Occupied() != 0 {
		t.Errorf("expected empty canvas, got %d occupied", c.Occupied())
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	c.SetCell(0, 0, 'a', rain.StyleTrail)
	c.SetCell(2, 1, 'b', rain.StyleTrail)

	if got, want := c.String(), "a  \n  b"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCanvasRender(t *testing.T) {
	c := NewCanvas(5, 2)
	c.SetCell(0, 0, 'x', rain.StyleLeader)
	c.SetCell(1, 0, 'y', rain.StyleTrailBold)

	out := c.Render(theme.ThemeMatrix)
	if !strings.Contains(out, "x") || !strings.Contains(out, "y") {
		t.Error("render lost glyphs")
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("expected 1 newline, got %d", n)
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SetCell(0, 0, 'a', rain.StyleTrail)
	c.Resize(6, 3)

	if c.Width != 6 || c.Height != 3 || len(c.Grid) != 3 || len(c.Grid[0]) != 6 {
		t.Fatalf("unexpected geometry %dx%d", c.Width, c.Height)
	}
	if c.Occupied() != 0 {
		t.Error("resize should clear")
	}

	c.Resize(-1, -1)
	if c.Width != 0 || c.Height != 0 {
		t.Error("negative size should clamp to zero")
	}
}

func TestCanvasWithField(t *testing.T) {
	c := NewCanvas(40, 12)
	f := rain.NewField(rain.DefaultParams(), glyph.ASCII, 5)
	for i := 0; i < 30; i++ {
		if _, err := f.Frame(c, rain.Size{Width: 40, Height: 12}); err != nil {
			t.Fatal(err)
		}
	}
	if c.Occupied() == 0 {
		t.Error("expected glyphs on canvas")
	}
}

func TestSizeState(t *testing.T) {
	s := NewSizeState(80, 24)
	size, gen := s.Snapshot()
	if size.Width != 80 || size.Height != 24 || gen != 0 {
		t.Fatalf("unexpected snapshot %+v gen %d", size, gen)
	}

	s.Set(80, 24)
	if _, g := s.Snapshot(); g != 0 {
		t.Error("same size should not bump generation")
	}

	s.Set(100, 30)
	size, gen = s.Snapshot()
	if size.Width != 100 || size.Height != 30 || gen != 1 {
		t.Errorf("unexpected snapshot %+v gen %d", size, gen)
	}
}

func TestSizeStateConcurrent(t *testing.T) {
	s := NewSizeState(10, 10)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= 1000; i++ {
			s.Set(i, i)
		}
	}()

	for i := 0; i < 1000; i++ {
		size, _ := s.Snapshot()
		if size.Width != size.Height {
			t.Fatalf("torn snapshot %+v", size)
		}
	}
	wg.Wait()
}

func TestProbeNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "probe")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := Probe(int(f.Fd())); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("expected ErrNotTerminal, got %v", err)
	}
}
