// Released under an MIT license. See LICENSE.

// Package engine provides the heap inspector's command evaluator.
//
// Commands are a verb followed by arguments, separated by whitespace.
// Values live in named registers. Every register is rooted, so the values
// it holds survive a release.
package engine

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/michaelmacinnis/value/internal/common/interface/collector"
	"github.com/michaelmacinnis/value/internal/common/type/list"
	"github.com/michaelmacinnis/value/internal/common/type/sym"
	"github.com/michaelmacinnis/value/internal/common/type/value"
	"github.com/michaelmacinnis/value/internal/common/validate"
	"github.com/michaelmacinnis/value/internal/system/census"
)

// Empty is the register name that always refers to the empty value.
const Empty = "()"

// ErrQuit is returned by Evaluate when the quit command is evaluated.
var ErrQuit = errors.New("quit") //nolint:gochecknoglobals

// T (engine) holds the inspector's registers and collector.
type T struct {
	census    *census.T
	out       io.Writer
	previous  collector.I
	registers map[string]value.T
	width     int
}

type engine = T

// New creates a new engine that writes to out, truncating values to width
// columns. The engine's census becomes the current collector until Close.
func New(out io.Writer, width int) *T {
	c := census.New()

	return &engine{
		census:    c,
		out:       out,
		previous:  collector.Use(c),
		registers: map[string]value.T{},
		width:     width,
	}
}

// Census returns the engine's collector.
func (e *engine) Census() *census.T {
	return e.census
}

// Close restores the collector that was current when e was created.
func (e *engine) Close() {
	collector.Use(e.previous)
}

// Evaluate evaluates each command in line. Commands are separated by ';'.
func (e *engine) Evaluate(line string) error {
	for _, command := range strings.Split(line, ";") {
		if err := e.evaluate(command); err != nil {
			return err
		}
	}

	return nil
}

// Lookup returns the value in the register name.
func (e *engine) Lookup(name string) (value.T, bool) {
	if name == Empty {
		return value.Empty(), true
	}

	v, ok := e.registers[name]

	return v, ok
}

// Verbs returns the names of all commands, sorted.
func (e *engine) Verbs() []string {
	verbs := make([]string, 0, len(commands))
	for k := range commands {
		verbs = append(verbs, k)
	}

	sort.Strings(verbs)

	return verbs
}

func (e *engine) define(name string, v value.T) error {
	if name == Empty {
		return fmt.Errorf("cannot assign to %s", Empty)
	}

	v.Root()

	if old, ok := e.registers[name]; ok {
		old.Unroot()
	}

	e.registers[name] = v

	return nil
}

func (e *engine) evaluate(command string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	words := make([]value.T, 0, len(fields))
	for _, f := range fields {
		words = append(words, value.Atom(sym.New(f)))
	}

	// Command words are transient and are not shown to the census.
	previous := collector.Use(collector.Runtime)
	l := list.New(words...)
	collector.Use(previous)

	verb, _ := l.Car()
	args, _ := l.Cdr()

	name := text(verb)

	c, ok := commands[name]
	if !ok {
		return fmt.Errorf("%s: unknown command", name)
	}

	var (
		v   []value.T
		err error
	)

	if c.variadic {
		var rest value.T

		v, rest, err = validate.Variadic(args, c.min, c.max)
		if err == nil {
			extra, _ := list.ToSlice(rest)
			v = append(v, extra...)
		}
	} else {
		v, err = validate.Fixed(args, c.min, c.max)
	}

	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	s := make([]string, 0, len(v))
	for _, a := range v {
		s = append(s, text(a))
	}

	if err = c.fn(e, s); err != nil && !errors.Is(err, ErrQuit) {
		return fmt.Errorf("%s: %w", name, err)
	}

	return err
}

func (e *engine) lookup(name string) (value.T, error) {
	v, ok := e.Lookup(name)
	if !ok {
		return v, fmt.Errorf("%s: no such register", name)
	}

	return v, nil
}

func (e *engine) println(a ...any) {
	fmt.Fprintln(e.out, a...)
}

func (e *engine) truncate(s string) string {
	if e.width <= 3 {
		return s
	}

	r := []rune(s)
	if len(r) <= e.width {
		return s
	}

	return string(r[:e.width-3]) + "..."
}

func (e *engine) undefine(name string) error {
	v, ok := e.registers[name]
	if !ok {
		return fmt.Errorf("%s: no such register", name)
	}

	v.Unroot()

	delete(e.registers, name)

	return nil
}

func text(v value.T) string {
	s, ok := value.AtomRef[*sym.T](v)
	if !ok {
		return v.String()
	}

	return s.String()
}
