// Package screen provides the terminal surfaces streams are drawn on.
//
//   - [Screen]: tcell-backed terminal with a background event pump
//   - [Canvas]: in-memory cell grid for the Bubble Tea view and headless runs
//   - [SizeState]: terminal size shared by the resize listener and the
//     frame loop, read as one snapshot per frame
package screen
