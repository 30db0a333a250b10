package matrixops

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Add returns a + b. Both matrices must have identical shapes.
func Add(a, b *mat.Dense) (*mat.Dense, error) {
	if err := sameShape("addition", a, b); err != nil {
		return nil, err
	}
	var c mat.Dense
	c.Add(a, b)
	return &c, nil
}

// Sub returns a - b. Both matrices must have identical shapes.
func Sub(a, b *mat.Dense) (*mat.Dense, error) {
	if err := sameShape("subtraction", a, b); err != nil {
		return nil, err
	}
	var c mat.Dense
	c.Sub(a, b)
	return &c, nil
}

// Mul returns the matrix product a * b. The column count of a must equal the
// row count of b.
func Mul(a, b *mat.Dense) (*mat.Dense, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return nil, fmt.Errorf("multiplication requires inner dimensions to match, got %dx%d and %dx%d: %w",
			ar, ac, br, bc, ErrShapeMismatch)
	}
	var c mat.Dense
	c.Mul(a, b)
	return &c, nil
}

// Invert returns the multiplicative inverse of a. The matrix must be square
// and must not be singular. An ill-conditioned but representable inverse is
// returned as-is; only a failed inversion reports ErrSingular.
func Invert(a *mat.Dense) (*mat.Dense, error) {
	r, c := a.Dims()
	if r != c {
		return nil, fmt.Errorf("inversion requires a square matrix, got %dx%d: %w", r, c, ErrShapeMismatch)
	}

	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		// gonum reports a finite mat.Condition when the inverse was computed
		// but the matrix is badly conditioned. An infinite condition number
		// means the matrix is singular and the result is unusable.
		var cond mat.Condition
		if errors.As(err, &cond) && !math.IsInf(float64(cond), 1) {
			return &inv, nil
		}
		return nil, fmt.Errorf("%dx%d matrix cannot be inverted: %w", r, c, ErrSingular)
	}
	return &inv, nil
}

// sameShape validates that a and b have identical dimensions for the named
// element-wise operation.
func sameShape(op string, a, b *mat.Dense) error {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return fmt.Errorf("%s requires matrices of the same shape, got %dx%d and %dx%d: %w",
			op, ar, ac, br, bc, ErrShapeMismatch)
	}
	return nil
}
