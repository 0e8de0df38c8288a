// Package rain implements the stream lifecycle behind the falling-glyph effect.
//
// The pieces, from the bottom up:
//
//   - [Stream]: one falling column with a leader and a fixed-length trail
//   - [MayAdmit]: placement rule that keeps same-column leaders apart
//   - [Collection]: owns the live streams; spawn, advance, cull
//   - [Field]: one frame of spawn → advance → cull for a screen size
//
// Rendering goes through the [Surface] interface, so the same field drives
// the tcell screen, the Bubble Tea canvas and headless benchmarks.
//
// # Example
//
//	field := rain.NewField(rain.DefaultParams(), glyph.Kana, seed)
//	stats, err := field.Frame(surface, rain.Size{Width: 80, Height: 24})
package rain
