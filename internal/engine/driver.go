package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/san-kum/rmatrix/internal/metrics"
	"github.com/san-kum/rmatrix/internal/rain"
)

var (
	// ErrNoTerminalSize indicates the terminal geometry could not be read.
	ErrNoTerminalSize = errors.New("engine: unable to get console size")

	// ErrInvalidDelay indicates a non-positive frame delay.
	ErrInvalidDelay = errors.New("engine: frame delay must be positive")
)

// Display is the terminal the driver renders to.
type Display interface {
	rain.Surface
	// Snapshot returns the current size and a generation that changes on
	// every resize.
	Snapshot() (rain.Size, uint64)
	Show()
	// Reset clears the display after a resize.
	Reset()
	// QuitRequested must not block.
	QuitRequested() bool
}

// Driver paces frames of a field onto a display.
type Driver struct {
	display   Display
	field     *rain.Field
	delay     time.Duration
	logger    *slog.Logger
	observers []metrics.Metric
	lastGen   uint64
}

func New(display Display, field *rain.Field, delay time.Duration, logger *slog.Logger) (*Driver, error) {
	if delay <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDelay, delay)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	_, gen := display.Snapshot()
	return &Driver{
		display:   display,
		field:     field,
		delay:     delay,
		logger:    logger,
		observers: make([]metrics.Metric, 0),
		lastGen:   gen,
	}, nil
}

func (d *Driver) AddObserver(m metrics.Metric) { d.observers = append(d.observers, m) }

// Run renders frames until ctx is done or a quit key is read. Quitting is
// not an error; a failed frame is.
func (d *Driver) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			d.logger.Info("stopped", "reason", context.Cause(ctx), "frames", d.field.Frames())
			return nil
		}

		quit, err := d.Step()
		if err != nil {
			return err
		}
		if quit {
			d.logger.Info("quit requested", "frames", d.field.Frames())
			return nil
		}

		timer := time.NewTimer(d.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
		case <-timer.C:
		}
	}
}

// Step renders one frame from a single size snapshot, presents it and
// polls for quit.
func (d *Driver) Step() (bool, error) {
	size, gen := d.display.Snapshot()
	if gen != d.lastGen {
		d.logger.Debug("resized", "width", size.Width, "height", size.Height)
		d.display.Reset()
		d.lastGen = gen
	}

	stats, err := d.field.Frame(d.display, size)
	if err != nil {
		return false, fmt.Errorf("frame %d: %w", d.field.Frames(), err)
	}
	frame := d.field.Frames()
	for _, m := range d.observers {
		m.Observe(frame, stats)
	}

	d.display.Show()
	return d.display.QuitRequested(), nil
}
