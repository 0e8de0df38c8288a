package rain

import (
	"math/rand/v2"

	"github.com/san-kum/rmatrix/internal/glyph"
)

// Field runs the spawn, advance and cull cycle for one screen.
// It is not safe for concurrent use.
type Field struct {
	streams *Collection
	rng     *rand.Rand
	params  Params
	opts    RenderOptions
	frames  int
}

func NewField(params Params, mode glyph.Mode, seed uint64) *Field {
	if params.SpawnDivisor <= 0 {
		params.SpawnDivisor = DefaultSpawnDivisor
	}
	return &Field{
		streams: NewCollection(params),
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		params:  params,
		opts: RenderOptions{
			Mode:       mode,
			Bold:       params.Bold,
			BoldChance: params.BoldChance,
		},
	}
}

func (f *Field) Streams() *Collection { return f.streams }
func (f *Field) Frames() int          { return f.frames }

// SpawnCount is the number of spawn attempts made for a screen width.
func (f *Field) SpawnCount(width int) int {
	if width <= 0 {
		return 0
	}
	return (width + f.params.SpawnDivisor - 1) / f.params.SpawnDivisor
}

// Frame runs one cycle against surface using a single size snapshot.
func (f *Field) Frame(surface Surface, size Size) (FrameStats, error) {
	stats := FrameStats{Attempts: f.SpawnCount(size.Width)}
	for i := 0; i < stats.Attempts; i++ {
		if f.streams.TrySpawn(size.Width, size.Height, f.rng) {
			stats.Spawned++
		}
	}

	if err := f.streams.AdvanceAll(surface, size.Height, f.rng, f.opts); err != nil {
		return stats, err
	}
	stats.Culled = f.streams.Cull()
	stats.Live = f.streams.Len()
	f.frames++
	return stats, nil
}
