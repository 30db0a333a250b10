package matrixops

import (
	"fmt"
	"os"
)

// Aliases for the CLI commands for convenience.
var (
	aliasesRun  = map[string]bool{"r": true, "-r": true, "run": true, "--run": true}
	aliasesDemo = map[string]bool{"d": true, "-d": true, "demo": true, "--demo": true}
	aliasesHelp = map[string]bool{"h": true, "-h": true, "help": true, "--help": true}
)

// RunCLI parses os.Args and dispatches to the interactive session or the
// scripted demo. With no arguments it starts the interactive session.
func RunCLI(argv []string) error {
	if len(argv) < 2 || aliasesRun[argv[1]] {
		s := NewSession(os.Stdin, os.Stdout)
		return s.Run()
	}

	cmd := argv[1]
	switch {
	case aliasesDemo[cmd]:
		Demo(os.Stdout)
		return nil

	case aliasesHelp[cmd]:
		printHelp()
		return nil

	default:
		return fmt.Errorf("unknown command %q. Use --help", cmd)
	}
}

// printHelp prints CLI usage and examples.
func printHelp() {
	fmt.Println(`matrix-ops — interactive dense matrix arithmetic

USAGE:
  matrix-ops                      Start the interactive session
  matrix-ops (r|-r|run|--run)     Same as above
  matrix-ops (d|-d|demo|--demo)   Print the scripted demo and exit
  matrix-ops (h|-h|help|--help)

OPERATIONS:
  add, subtract, multiply, and invert dense matrices entered row by row,
  pasted as one line, or filled with random values. Results may be rendered
  as a heatmap PNG.

DEPENDENCIES:
  - gonum.org/v1/gonum/mat
  - gonum.org/v1/plot

EXAMPLES:
  matrix-ops
  matrix-ops demo`)
}
