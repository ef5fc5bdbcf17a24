/*
Value is an inspector for a garbage-collected value heap. It builds atoms,
pairs and lists in named registers and reports what a tracing collector
can reach from them:

    num a 3
    num b 4
    list l a b
    show l
    set-cdr l l
    show l
    drop l
    census
    release

For the full list of commands, run value and type help.

Value is released under an MIT-style license.
*/
package main

import (
	"log"
	"os"
	"strings"

	"github.com/michaelmacinnis/value/internal/engine"
	"github.com/michaelmacinnis/value/internal/system/options"
	"github.com/michaelmacinnis/value/internal/system/terminal"
	"github.com/michaelmacinnis/value/internal/ui"
)

func main() {
	options.Parse(os.Args[1:])

	logger := log.New(os.Stderr, "value: ", 0)

	e := engine.New(os.Stdout, terminal.Width(int(os.Stdout.Fd())))
	defer e.Close()

	var err error

	switch {
	case options.Command() != "":
		err = ui.Script(strings.NewReader(options.Command()), e, engine.ErrQuit)
	case options.Script() != "":
		err = script(e, options.Script())
	case options.Interactive():
		err = ui.Run(e, engine.ErrQuit)
	default:
		err = ui.Script(os.Stdin, e, engine.ErrQuit)
	}

	if err != nil {
		e.Close()
		logger.Fatal(err)
	}
}

func script(e *engine.T, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return ui.Script(f, e, engine.ErrQuit)
}
