// Package engine drives the rain effect on a live terminal.
//
// A [Driver] repeats one frame at a time:
//
//  1. read one size snapshot from the [Display]
//  2. run [rain.Field.Frame] (spawn, advance, cull)
//  3. present the frame and poll for a quit key without blocking
//  4. wait for the frame delay or context cancellation
//
// # Thread Safety
//
// The loop itself is single threaded. The only state shared with another
// goroutine is the display size, which the display's resize listener writes
// and the loop reads once per frame.
package engine
