package screen

import (
	"errors"
	"fmt"

	"golang.org/x/term"

	"github.com/san-kum/rmatrix/internal/rain"
)

var ErrNotTerminal = errors.New("screen: unable to get console size")

// Probe reads the size of the terminal attached to fd before any screen is
// opened.
func Probe(fd int) (rain.Size, error) {
	if !term.IsTerminal(fd) {
		return rain.Size{}, ErrNotTerminal
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return rain.Size{}, fmt.Errorf("%w: %v", ErrNotTerminal, err)
	}
	if w <= 0 || h <= 0 {
		return rain.Size{}, ErrNotTerminal
	}
	return rain.Size{Width: w, Height: h}, nil
}
