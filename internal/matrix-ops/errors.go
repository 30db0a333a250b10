package matrixops

import "errors"

// Sentinel errors reported to the user. Operations return these wrapped with
// the offending dimensions; callers match them with errors.Is. User input can
// never cause a panic, only one of these.
var (
	// ErrShapeMismatch indicates incompatible dimensions between operands:
	// different shapes for add/subtract, an inner-dimension mismatch for
	// multiply, or a non-square matrix for inversion.
	ErrShapeMismatch = errors.New("matrixops: shape mismatch")

	// ErrSingular indicates that inversion was requested for a matrix whose
	// determinant is zero or numerically indistinguishable from zero.
	ErrSingular = errors.New("matrixops: singular matrix")
)
