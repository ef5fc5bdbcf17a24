// Released under an MIT license. See LICENSE.

// Package ui reads inspector commands from a terminal or a stream.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/michaelmacinnis/value/internal/system/history"
	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to process commands.
type Evaluator interface {
	Evaluate(line string) error
	Verbs() []string
}

// Run reads commands interactively, with line editing and history, until
// e returns quit or the user closes the terminal. Other errors from e are
// reported and the session continues.
func Run(e Evaluator, quit error) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetCompleter(completer(e.Verbs()))

	if err := history.Load(cli.ReadHistory); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
	}

	defer func() {
		if err := history.Save(cli.WriteHistory); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
		}
	}()

	for {
		line, err := cli.Prompt("> ")

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			os.Stdout.Write([]byte("quit\n"))

			return nil
		default:
			return err
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		err = e.Evaluate(line)
		if errors.Is(err, quit) {
			return nil
		} else if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
		}
	}
}

// Script evaluates each line read from r. It stops at the first error.
func Script(r io.Reader, e Evaluator, quit error) error {
	s := bufio.NewScanner(r)

	for n := 1; s.Scan(); n++ {
		err := e.Evaluate(s.Text())
		if errors.Is(err, quit) {
			return nil
		} else if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}

	return s.Err()
}

func completer(verbs []string) liner.Completer {
	return func(line string) []string {
		if strings.ContainsAny(line, " \t;") {
			return nil
		}

		cs := []string{}

		for _, v := range verbs {
			if strings.HasPrefix(v, line) {
				cs = append(cs, v+" ")
			}
		}

		return cs
	}
}
