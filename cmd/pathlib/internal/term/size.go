package term

import (
	"os"

	"golang.org/x/term"
)

// GetSize returns the dimensions of the terminal attached to f, or an error
// if f is not a terminal.
func GetSize(f *os.File) (width, height int, err error) {
	return term.GetSize(int(f.Fd()))
}
