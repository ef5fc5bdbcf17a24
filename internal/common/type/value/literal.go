// Released under an MIT license. See LICENSE.

package value

import (
	"fmt"
	"strings"

	"github.com/michaelmacinnis/value/internal/common/interface/literal"
	"github.com/michaelmacinnis/value/internal/common/type/erased"
)

const cycle = "#<cycle>"

// Literal returns the literal representation of v. A cell reached again
// while its own contents are being written is shown as #<cycle>.
func (v value) Literal() string {
	var b strings.Builder

	write(&b, v, map[*cell]bool{})

	return b.String()
}

// String returns the text representation of v.
func (v value) String() string {
	return v.Literal()
}

func atomLiteral(h erased.T) string {
	p := h.Payload()

	if s, ok := literal.String(p); ok {
		return s
	}

	return "(|" + h.Tag().String() + " " + fmt.Sprint(p) + "|)"
}

func write(b *strings.Builder, v value, path map[*cell]bool) {
	switch v.kind {
	case KindEmpty:
		b.WriteString("()")
	case KindAtom:
		b.WriteString(atomLiteral(v.atom))
	case KindPair:
		writeList(b, v.pair, path)
	}
}

func writeList(b *strings.Builder, c *cell, path map[*cell]bool) {
	if path[c] {
		b.WriteString(cycle)

		return
	}

	spine := []*cell{}

	b.WriteByte('(')

	for {
		if len(spine) > 0 {
			b.WriteByte(' ')
		}

		path[c] = true
		spine = append(spine, c)

		write(b, c.head, path)

		t := c.tail
		if t.kind == KindEmpty {
			break
		}

		if t.kind != KindPair {
			b.WriteString(" . ")
			write(b, t, path)

			break
		}

		if path[t.pair] {
			b.WriteString(" . " + cycle)

			break
		}

		c = t.pair
	}

	b.WriteByte(')')

	for _, c := range spine {
		delete(path, c)
	}
}
