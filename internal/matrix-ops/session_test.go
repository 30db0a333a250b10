package matrixops

import (
	"bytes"
	"strings"
	"testing"
)

// runScript drives a full session from scripted input and returns its output.
func runScript(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	s := NewSession(strings.NewReader(input), &out)
	if err := s.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return out.String()
}

func TestSessionAdd(t *testing.T) {
	out := runScript(t, strings.Join([]string{
		"1",    // add
		"2",    // rows A
		"2",    // cols A
		"",     // mode: default row-by-row
		"1 2",  // row 1
		"3 4",  // row 2
		"2",    // rows B
		"2",    // cols B
		"1",    // mode: row-by-row
		"5 6",  // row 1
		"7 8",  // row 2
		"",     // heatmap: default no
		"q",    // quit
	}, "\n") + "\n")

	for _, want := range []string{
		"Result (A + B):",
		"6.000",
		"12.000",
		"Goodbye!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSessionShapeMismatchContinues(t *testing.T) {
	out := runScript(t, strings.Join([]string{
		"3",   // multiply
		"2",   // rows A
		"2",   // cols A
		"1",   // mode
		"1 2", // row 1
		"3 4", // row 2
		"3",   // rows B: inner dimensions cannot match
		"2",   // cols B
		"3",   // mode: random
		"",    // scale: default
		"q",   // quit
	}, "\n") + "\n")

	if !strings.Contains(out, "shape mismatch") {
		t.Errorf("output missing shape mismatch error:\n%s", out)
	}
	// The error must return to the menu, not end the process.
	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("session did not continue to a clean quit:\n%s", out)
	}
}

func TestSessionSingularInverse(t *testing.T) {
	out := runScript(t, strings.Join([]string{
		"4",   // inverse
		"2",   // rows A
		"2",   // cols A
		"1",   // mode
		"1 2", // row 1
		"2 4", // row 2: twice row 1
		"q",   // quit
	}, "\n") + "\n")

	if !strings.Contains(out, "singular matrix") {
		t.Errorf("output missing singular matrix error:\n%s", out)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("session did not continue to a clean quit:\n%s", out)
	}
}

func TestSessionUnknownChoice(t *testing.T) {
	out := runScript(t, "7\nq\n")

	if !strings.Contains(out, "Unknown choice. Try again.") {
		t.Errorf("output missing unknown-choice message:\n%s", out)
	}
}

func TestSessionEOFExitsCleanly(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader(""), &out)
	if err := s.Run(); err != nil {
		t.Errorf("Run at EOF returned error: %v", err)
	}
}
