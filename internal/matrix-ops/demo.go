package matrixops

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
)

// Demo prints every operation applied to the sample matrices
// A=[[1,2],[3,4]] and B=[[5,6],[7,8]].
func Demo(w io.Writer) {
	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	b := mat.NewDense(2, 2, []float64{5, 6, 7, 8})

	fmt.Fprintln(w, "Demo with A=[[1,2],[3,4]] and B=[[5,6],[7,8]]")
	fmt.Fprintln(w, "Matrix A:")
	WriteMatrix(w, a)
	fmt.Fprintln(w, "Matrix B:")
	WriteMatrix(w, b)

	steps := []struct {
		label string
		run   func() (*mat.Dense, error)
	}{
		{"A + B:", func() (*mat.Dense, error) { return Add(a, b) }},
		{"A - B:", func() (*mat.Dense, error) { return Sub(a, b) }},
		{"A * B:", func() (*mat.Dense, error) { return Mul(a, b) }},
		{"Inverse of A:", func() (*mat.Dense, error) { return Invert(a) }},
	}
	for _, st := range steps {
		fmt.Fprintln(w, st.label)
		res, err := st.run()
		if err != nil {
			fmt.Fprintln(w, "Error:", err)
			continue
		}
		WriteMatrix(w, res)
	}
}
