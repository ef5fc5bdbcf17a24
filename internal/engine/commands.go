// Released under an MIT license. See LICENSE.

package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/value/internal/common/type/boolean"
	"github.com/michaelmacinnis/value/internal/common/type/list"
	"github.com/michaelmacinnis/value/internal/common/type/num"
	"github.com/michaelmacinnis/value/internal/common/type/ref"
	"github.com/michaelmacinnis/value/internal/common/type/str"
	"github.com/michaelmacinnis/value/internal/common/type/sym"
	"github.com/michaelmacinnis/value/internal/common/type/value"
)

type command struct {
	fn       func(e *T, args []string) error
	min      int
	max      int
	variadic bool
	usage    string
}

//nolint:gochecknoglobals
var commands map[string]command

func init() { //nolint:gochecknoinits
	commands = map[string]command{
		"bool":      {fn: boolCommand, min: 2, max: 2, usage: "NAME true|false"},
		"car":       {fn: carCommand, min: 2, max: 2, usage: "NAME PAIR"},
		"cdr":       {fn: cdrCommand, min: 2, max: 2, usage: "NAME PAIR"},
		"census":    {fn: censusCommand, usage: ""},
		"clone":     {fn: cloneCommand, min: 2, max: 2, usage: "NAME SOURCE"},
		"cons":      {fn: consCommand, min: 3, max: 3, usage: "NAME CAR CDR"},
		"deref":     {fn: derefCommand, min: 2, max: 2, usage: "NAME REF"},
		"drop":      {fn: dropCommand, min: 1, max: 1, usage: "NAME"},
		"empty":     {fn: emptyCommand, min: 1, max: 1, usage: "NAME"},
		"help":      {fn: helpCommand, usage: ""},
		"length":    {fn: lengthCommand, min: 1, max: 1, usage: "LIST"},
		"list":      {fn: listCommand, min: 1, max: 1, variadic: true, usage: "NAME [ELEMENT...]"},
		"num":       {fn: numCommand, min: 2, max: 2, usage: "NAME NUMBER"},
		"quit":      {fn: quitCommand, usage: ""},
		"ref":       {fn: refCommand, min: 2, max: 2, usage: "NAME SOURCE"},
		"registers": {fn: registersCommand, max: 1, usage: "[PATTERN]"},
		"release":   {fn: releaseCommand, usage: ""},
		"set-car":   {fn: setCarCommand, min: 2, max: 2, usage: "PAIR SOURCE"},
		"set-cdr":   {fn: setCdrCommand, min: 2, max: 2, usage: "PAIR SOURCE"},
		"set-ref":   {fn: setRefCommand, min: 2, max: 2, usage: "REF SOURCE"},
		"show":      {fn: showCommand, min: 1, max: 1, usage: "NAME"},
		"str":       {fn: strCommand, min: 2, max: 2, usage: "NAME TEXT"},
		"sym":       {fn: symCommand, min: 2, max: 2, usage: "NAME TEXT"},
		"type":      {fn: typeCommand, min: 1, max: 1, usage: "NAME"},
	}
}

func boolCommand(e *T, args []string) error {
	b, err := boolean.New(args[1])
	if err != nil {
		return err
	}

	return e.define(args[0], value.Atom(b))
}

func carCommand(e *T, args []string) error {
	p, err := e.lookup(args[1])
	if err != nil {
		return err
	}

	v, ok := p.Car()
	if !ok {
		return fmt.Errorf("%s: %s is %w", args[1], p.Kind(), value.ErrNotPair)
	}

	return e.define(args[0], v)
}

func cdrCommand(e *T, args []string) error {
	p, err := e.lookup(args[1])
	if err != nil {
		return err
	}

	v, ok := p.Cdr()
	if !ok {
		return fmt.Errorf("%s: %s is %w", args[1], p.Kind(), value.ErrNotPair)
	}

	return e.define(args[0], v)
}

func censusCommand(e *T, _ []string) error {
	e.println(e.census.Pass().String())

	return nil
}

func cloneCommand(e *T, args []string) error {
	v, err := e.lookup(args[1])
	if err != nil {
		return err
	}

	return e.define(args[0], v.Clone())
}

func consCommand(e *T, args []string) error {
	car, err := e.lookup(args[1])
	if err != nil {
		return err
	}

	cdr, err := e.lookup(args[2])
	if err != nil {
		return err
	}

	return e.define(args[0], value.Cons(car, cdr))
}

func derefCommand(e *T, args []string) error {
	v, err := e.lookup(args[1])
	if err != nil {
		return err
	}

	r, ok := value.AtomRef[*ref.T](v)
	if !ok {
		return fmt.Errorf("%s: not a ref", args[1])
	}

	return e.define(args[0], r.Get())
}

func dropCommand(e *T, args []string) error {
	return e.undefine(args[0])
}

func emptyCommand(e *T, args []string) error {
	return e.define(args[0], value.Empty())
}

func helpCommand(e *T, _ []string) error {
	for _, verb := range e.Verbs() {
		e.println(strings.TrimSpace(verb + " " + commands[verb].usage))
	}

	return nil
}

func lengthCommand(e *T, args []string) error {
	v, err := e.lookup(args[0])
	if err != nil {
		return err
	}

	n, ok := list.Length(v)
	if !ok {
		return fmt.Errorf("%s: not a proper list", args[0])
	}

	e.println(n)

	return nil
}

func listCommand(e *T, args []string) error {
	elements := make([]value.T, 0, len(args)-1)

	for _, name := range args[1:] {
		v, err := e.lookup(name)
		if err != nil {
			return err
		}

		elements = append(elements, v)
	}

	return e.define(args[0], list.New(elements...))
}

func numCommand(e *T, args []string) error {
	n, err := num.New(args[1])
	if err != nil {
		return err
	}

	return e.define(args[0], value.Atom(n))
}

func quitCommand(*T, []string) error {
	return ErrQuit
}

func refCommand(e *T, args []string) error {
	v, err := e.lookup(args[1])
	if err != nil {
		return err
	}

	return e.define(args[0], value.Atom(ref.New(v)))
}

func registersCommand(e *T, args []string) error {
	pattern := "*"
	if len(args) > 0 {
		pattern = args[0]
	}

	names := []string{}

	for name := range e.registers {
		ok, err := adapted.Match(pattern, name)
		if err != nil {
			return err
		}

		if ok {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	for _, name := range names {
		e.println(name, e.registers[name].Kind())
	}

	return nil
}

func releaseCommand(e *T, _ []string) error {
	e.println("released", e.census.Release())

	return nil
}

func setCarCommand(e *T, args []string) error {
	return set(e, args, value.T.SetCar)
}

func setCdrCommand(e *T, args []string) error {
	return set(e, args, value.T.SetCdr)
}

func setRefCommand(e *T, args []string) error {
	v, err := e.lookup(args[0])
	if err != nil {
		return err
	}

	r, ok := value.AtomRef[*ref.T](v)
	if !ok {
		return fmt.Errorf("%s: not a ref", args[0])
	}

	n, err := e.lookup(args[1])
	if err != nil {
		return err
	}

	r.Set(n)

	return nil
}

func showCommand(e *T, args []string) error {
	v, err := e.lookup(args[0])
	if err != nil {
		return err
	}

	e.println(e.truncate(v.Literal()))

	return nil
}

func strCommand(e *T, args []string) error {
	s, err := adapted.ActualBytes(args[1])
	if err != nil {
		return err
	}

	return e.define(args[0], value.Atom(str.New(s)))
}

func symCommand(e *T, args []string) error {
	s, err := adapted.ActualBytes(args[1])
	if err != nil {
		return err
	}

	return e.define(args[0], value.Atom(sym.New(s)))
}

func typeCommand(e *T, args []string) error {
	v, err := e.lookup(args[0])
	if err != nil {
		return err
	}

	if tag, ok := v.AtomType(); ok {
		e.println(v.Kind(), tag)
	} else {
		e.println(v.Kind())
	}

	return nil
}

func set(e *T, args []string, op func(value.T, value.T) error) error {
	p, err := e.lookup(args[0])
	if err != nil {
		return err
	}

	v, err := e.lookup(args[1])
	if err != nil {
		return err
	}

	if err = op(p, v); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	return nil
}
