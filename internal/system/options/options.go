// Released under an MIT license. See LICENSE.

// Package options parses the inspector's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "value 0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	script      string
	usage       = `value

Usage:
  value SCRIPT
  value -c COMMAND
  value [-i]
  value -h
  value -v

Arguments:
  SCRIPT     Path to a file of inspector commands, one per line.

Options:
  -c, --command=COMMAND  Run the specified commands. Separate commands with ';'.
  -i, --interactive      Invert interactive mode.
  -h, --help             Display this help.
  -v, --version          Print the version.

If stdin is a TTY, and no script or command was given, commands are read
interactively with line editing and history. Otherwise, commands are read
from stdin.
`
)

// Command returns the commands passed with -c, if any.
func Command() string {
	return command
}

// Interactive returns true if commands should be read interactively.
func Interactive() bool {
	return interactive
}

// Parse parses the command line arguments in args.
func Parse(args []string) {
	opts, err := docopt.ParseArgs(usage, args, Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")

	interactive = false
	if command == "" && script == "" {
		interactive = isatty.IsTerminal(os.Stdin.Fd())
	}

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive
}

// Script returns the path of the script to run, if any.
func Script() string {
	return script
}

// Usage returns the usage document.
func Usage() string {
	return usage
}
