package main

import (
	"fmt"
	"os"

	matrixops "github.com/Amaury/matrix-ops/internal/matrix-ops"
)

// main is the entrypoint. It delegates argument parsing and command handling
// to the matrixops package.
func main() {
	if err := matrixops.RunCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
