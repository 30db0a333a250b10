package matrixops

import (
	"bytes"
	"strings"
	"testing"
)

func TestDemoOutput(t *testing.T) {
	var out bytes.Buffer
	Demo(&out)
	got := out.String()

	for _, want := range []string{
		"Demo with A=[[1,2],[3,4]] and B=[[5,6],[7,8]]",
		"A + B:",
		"6.000", // A+B top-left
		"A - B:",
		"-4.000", // A-B is all -4
		"A * B:",
		"19.000", // A*B top-left
		"Inverse of A:",
		"-2.000",
		"1.500",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("demo output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Error:") {
		t.Errorf("demo reported an operation error:\n%s", got)
	}
}
