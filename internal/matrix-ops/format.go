package matrixops

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
)

// WriteMatrix prints m as an aligned grid with three decimal places,
// followed by a blank line.
func WriteMatrix(w io.Writer, m mat.Matrix) {
	fmt.Fprintf(w, "%.3f\n\n", mat.Formatted(m, mat.Prefix(""), mat.Squeeze()))
}
