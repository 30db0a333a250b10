package matrixops

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Session represents one interactive run. It encapsulates the input scanner
// and output writer so the menu loop can be driven by any reader in tests.
type Session struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewSession creates a session reading prompts' answers from r and writing
// all user-facing output to w.
func NewSession(r io.Reader, w io.Writer) *Session {
	return &Session{in: bufio.NewScanner(r), out: w}
}

// readLine prints a prompt and reads one trimmed line of input. It returns
// io.EOF when the input is exhausted.
func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// Run drives the operation menu until the user quits or input ends.
// Operation errors are reported as plain messages and return to the menu;
// they never terminate the session.
func (s *Session) Run() error {
	fmt.Fprintf(s.out, "matrix-ops — dense matrix arithmetic\n\n")

	for {
		fmt.Fprintln(s.out, "Select operation:")
		fmt.Fprintln(s.out, "  1) Add (A + B)")
		fmt.Fprintln(s.out, "  2) Subtract (A - B)")
		fmt.Fprintln(s.out, "  3) Multiply (A * B)")
		fmt.Fprintln(s.out, "  4) Inverse (A^-1)")
		fmt.Fprintln(s.out, "  5) Demo (sample matrices)")
		fmt.Fprintln(s.out, "  q) Quit")

		choice, err := s.readLine("Choice: ")
		if err != nil {
			return ignoreEOF(err)
		}

		switch strings.ToLower(choice) {
		case "q":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		case "1", "2", "3":
			err = s.runBinary(choice)
		case "4":
			err = s.runInverse()
		case "5":
			Demo(s.out)
		default:
			fmt.Fprintln(s.out, "Unknown choice. Try again.")
		}
		if err != nil {
			return ignoreEOF(err)
		}
	}
}

// runBinary reads matrices A and B, applies the chosen binary operation, and
// prints the result or the operation error.
func (s *Session) runBinary(choice string) error {
	a, err := s.readMatrix("A")
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Matrix A:")
	WriteMatrix(s.out, a)

	b, err := s.readMatrix("B")
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Matrix B:")
	WriteMatrix(s.out, b)

	var (
		res   *mat.Dense
		opErr error
		label string
	)
	switch choice {
	case "1":
		res, opErr = Add(a, b)
		label = "Result (A + B):"
	case "2":
		res, opErr = Sub(a, b)
		label = "Result (A - B):"
	case "3":
		res, opErr = Mul(a, b)
		label = "Result (A * B):"
	}
	if opErr != nil {
		fmt.Fprintln(s.out, "Error:", opErr)
		return nil
	}

	fmt.Fprintln(s.out, label)
	WriteMatrix(s.out, res)
	return s.offerHeatMap(res, "Result")
}

// runInverse reads matrix A, inverts it, and prints the inverse or the
// operation error.
func (s *Session) runInverse() error {
	a, err := s.readMatrix("A")
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Matrix A:")
	WriteMatrix(s.out, a)

	inv, opErr := Invert(a)
	if opErr != nil {
		fmt.Fprintln(s.out, "Error:", opErr)
		return nil
	}

	fmt.Fprintln(s.out, "Inverse (A^-1):")
	WriteMatrix(s.out, inv)
	return s.offerHeatMap(inv, "Inverse")
}

// offerHeatMap optionally renders m as a heatmap PNG at a user-supplied path.
// Declining the prompt or leaving the path empty skips rendering; a render
// failure is reported but does not end the session.
func (s *Session) offerHeatMap(m *mat.Dense, title string) error {
	ans, err := s.readLine("Render heatmap to PNG? (y/N): ")
	if err != nil {
		return err
	}
	if !strings.EqualFold(ans, "y") {
		return nil
	}

	path, err := s.readLine("PNG path: ")
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	if err := SaveHeatMap(m, title, path); err != nil {
		fmt.Fprintln(s.out, "Failed to render:", err)
		return nil
	}
	fmt.Fprintf(s.out, "Saved heatmap to %s\n", path)
	return nil
}

// ignoreEOF maps end-of-input to a clean exit.
func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
