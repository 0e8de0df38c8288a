package engine_test

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rmatrix/internal/engine"
	"github.com/san-kum/rmatrix/internal/glyph"
	"github.com/san-kum/rmatrix/internal/metrics"
	"github.com/san-kum/rmatrix/internal/rain"
	"github.com/san-kum/rmatrix/internal/screen"
	"github.com/san-kum/rmatrix/internal/theme"
)

// fakeDisplay renders into a canvas and asks to quit after quitAfter frames.
type fakeDisplay struct {
	*screen.Canvas
	size      *screen.SizeState
	shows     int
	resets    int
	quitAfter int
	onShow    func(n int)
}

func newFakeDisplay(w, h, quitAfter int) *fakeDisplay {
	return &fakeDisplay{
		Canvas:    screen.NewCanvas(w, h),
		size:      screen.NewSizeState(w, h),
		quitAfter: quitAfter,
	}
}

func (f *fakeDisplay) Snapshot() (rain.Size, uint64) { return f.size.Snapshot() }

func (f *fakeDisplay) Show() {
	f.shows++
	if f.onShow != nil {
		f.onShow(f.shows)
	}
}

func (f *fakeDisplay) Reset() {
	f.resets++
	size, _ := f.size.Snapshot()
	f.Resize(size.Width, size.Height)
}

func (f *fakeDisplay) QuitRequested() bool {
	return f.quitAfter > 0 && f.shows >= f.quitAfter
}

var _ = Describe("Driver", func() {
	var (
		field *rain.Field
	)

	BeforeEach(func() {
		field = rain.NewField(rain.DefaultParams(), glyph.ASCII, 42)
	})

	It("rejects a non-positive delay", func() {
		_, err := engine.New(newFakeDisplay(10, 10, 0), field, 0, nil)
		Expect(errors.Is(err, engine.ErrInvalidDelay)).To(BeTrue())
	})

	It("stops cleanly when a quit key is read", func() {
		display := newFakeDisplay(80, 24, 5)
		d, err := engine.New(display, field, time.Millisecond, nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(d.Run(context.Background())).To(Succeed())
		Expect(display.shows).To(Equal(5))
		Expect(field.Frames()).To(Equal(5))
		Expect(display.Occupied()).To(BeNumerically(">", 0))
	})

	It("stops cleanly when the context is canceled", func() {
		display := newFakeDisplay(80, 24, 0)
		d, err := engine.New(display, field, time.Millisecond, nil)
		Expect(err).NotTo(HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		display.onShow = func(n int) {
			if n == 3 {
				cancel()
			}
		}

		Expect(d.Run(ctx)).To(Succeed())
		Expect(display.shows).To(Equal(3))
	})

	It("does not render when started with a canceled context", func() {
		display := newFakeDisplay(80, 24, 0)
		d, err := engine.New(display, field, time.Millisecond, nil)
		Expect(err).NotTo(HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		Expect(d.Run(ctx)).To(Succeed())
		Expect(display.shows).To(BeZero())
	})

	It("feeds frame stats to observers", func() {
		display := newFakeDisplay(80, 24, 10)
		d, err := engine.New(display, field, time.Millisecond, nil)
		Expect(err).NotTo(HaveOccurred())

		live := metrics.NewLiveStreams()
		history := metrics.NewHistory(0)
		d.AddObserver(live)
		d.AddObserver(history)

		Expect(d.Run(context.Background())).To(Succeed())
		Expect(history.Live()).To(HaveLen(10))
		Expect(history.Value()).To(BeNumerically("==", field.Streams().Len()))
		Expect(live.Peak()).To(BeNumerically(">", 0))
	})

	Context("when the terminal is resized", func() {
		It("resets the display once and renders at the new size", func() {
			display := newFakeDisplay(80, 24, 0)
			d, err := engine.New(display, field, time.Millisecond, nil)
			Expect(err).NotTo(HaveOccurred())

			_, err = d.Step()
			Expect(err).NotTo(HaveOccurred())
			Expect(display.resets).To(BeZero())

			display.size.Set(20, 10)
			_, err = d.Step()
			Expect(err).NotTo(HaveOccurred())
			_, err = d.Step()
			Expect(err).NotTo(HaveOccurred())

			Expect(display.resets).To(Equal(1))
			Expect(display.Width).To(Equal(20))
			Expect(field.SpawnCount(20)).To(Equal(1))
		})
	})

	Context("with a tcell simulation screen", func() {
		It("renders until q is pressed", func() {
			tc := tcell.NewSimulationScreen("UTF-8")
			scr, err := screen.New(tc, theme.ThemeMatrix, nil)
			Expect(err).NotTo(HaveOccurred())
			defer scr.Close()

			d, err := engine.New(scr, field, 2*time.Millisecond, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(tc.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))).To(Succeed())

			done := make(chan error, 1)
			go func() { done <- d.Run(context.Background()) }()
			Eventually(done, 2*time.Second).Should(Receive(BeNil()))
			Expect(field.Frames()).To(BeNumerically(">=", 1))
		})
	})
})
