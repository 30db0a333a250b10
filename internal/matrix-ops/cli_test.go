package matrixops

import (
	"strings"
	"testing"
)

func TestRunCLIUnknownCommand(t *testing.T) {
	err := RunCLI([]string{"matrix-ops", "bogus"})
	if err == nil {
		t.Fatal("expected an error for an unknown command")
	}
	if !strings.Contains(err.Error(), `unknown command "bogus"`) {
		t.Errorf("error = %v, want unknown command message", err)
	}
}

func TestRunCLIHelp(t *testing.T) {
	for _, alias := range []string{"h", "-h", "help", "--help"} {
		if err := RunCLI([]string{"matrix-ops", alias}); err != nil {
			t.Errorf("RunCLI(%q) returned error: %v", alias, err)
		}
	}
}

func TestRunCLIDemo(t *testing.T) {
	if err := RunCLI([]string{"matrix-ops", "demo"}); err != nil {
		t.Errorf("RunCLI(demo) returned error: %v", err)
	}
}
