package console

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned by CheckSize when f is not a terminal.
var ErrNotTerminal = errors.New("console: not a terminal")

// CheckSize reports whether the terminal behind f has at least w columns
// and h rows, along with its actual size.
func CheckSize(f *os.File, w, h int) (fits bool, cols, rows int, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return false, 0, 0, ErrNotTerminal
	}
	cols, rows, err = term.GetSize(fd)
	if err != nil {
		return false, 0, 0, fmt.Errorf("console: get terminal size: %w", err)
	}
	return cols >= w && rows >= h, cols, rows, nil
}
