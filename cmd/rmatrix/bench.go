package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/rmatrix/internal/config"
	"github.com/san-kum/rmatrix/internal/metrics"
	"github.com/san-kum/rmatrix/internal/rain"
	"github.com/san-kum/rmatrix/internal/screen"
	"github.com/san-kum/rmatrix/internal/theme"
)

// benchResult is the outcome of a headless run.
type benchResult struct {
	Frames   int
	Elapsed  time.Duration
	Live     int
	Occupied int
	Metrics  []metrics.Metric
	History  *metrics.History
}

func runHeadless(cfg *config.Config, size rain.Size, n int) (*benchResult, error) {
	if n <= 0 {
		return nil, fmt.Errorf("frames must be positive, got %d", n)
	}
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("size must be positive, got %dx%d", size.Width, size.Height)
	}

	field := rain.NewField(cfg.Params(), cfg.GlyphMode(), cfg.Seed)
	canvas := screen.NewCanvas(size.Width, size.Height)
	res := &benchResult{
		Metrics: metrics.Defaults(),
		History: metrics.NewHistory(n),
	}

	start := time.Now()
	for i := 0; i < n; i++ {
		stats, err := field.Frame(canvas, size)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		for _, m := range res.Metrics {
			m.Observe(i, stats)
		}
		res.History.Observe(i, stats)
	}
	res.Elapsed = time.Since(start)
	res.Frames = field.Frames()
	res.Live = field.Streams().Len()
	res.Occupied = canvas.Occupied()
	return res, nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	size := rain.Size{Width: benchWidth, Height: benchHeight}
	res, err := runHeadless(cfg, size, frames)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	heading := theme.Get(cfg.Theme).Lipgloss(rain.StyleLeader).Bold(true)
	fmt.Fprintln(out, heading.Render(fmt.Sprintf("benchmarking %dx%d, %d frames, mode %s, seed %d",
		size.Width, size.Height, res.Frames, cfg.GlyphMode(), cfg.Seed)))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, m := range res.Metrics {
		fmt.Fprintf(w, "%s\t%.4f\n", m.Name(), m.Value())
	}
	fmt.Fprintf(w, "final_streams\t%d\n", res.Live)
	fmt.Fprintf(w, "occupied_cells\t%d\n", res.Occupied)
	if res.Elapsed > 0 {
		fmt.Fprintf(w, "frames_per_sec\t%.0f\n", float64(res.Frames)/res.Elapsed.Seconds())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	graph := asciigraph.Plot(res.History.Live(),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("live streams per frame"),
	)
	fmt.Fprintf(out, "\n%s\n", graph)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMODE\tDELAY\tDIVISOR\tTRAIL")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		trail := fmt.Sprintf("[%d,%d)", p.Rain.TrailMin, p.Rain.TrailMax)
		if p.Rain.TrailFromHeight {
			trail = "[0,height)"
		}
		fmt.Fprintf(w, "%s\t%s\t%dms\t%d\t%s\n", name, p.Mode, p.DelayMs, p.Rain.SpawnDivisor, trail)
	}
	return w.Flush()
}
