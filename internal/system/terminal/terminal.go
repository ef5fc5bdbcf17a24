// Released under an MIT license. See LICENSE.

// Package terminal reports the size of the terminal.
package terminal

const fallback = 80

// Width returns the width, in columns, of the terminal open on fd. If fd
// is not a terminal, a conventional width is returned.
func Width(fd int) int {
	if w := width(fd); w > 0 {
		return w
	}

	return fallback
}
