// Package linalg provides dense matrix helpers used as building blocks
// for normal-equations style computations: in-place row scaling and the
// matrix cross-product X'*X.
package linalg

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// ErrShapeMismatch is returned when argument dimensions disagree.
var ErrShapeMismatch = errors.New("linalg: shape mismatch")

// ScaleRows multiplies every entry of row i of a by b[i], in place,
// so that a becomes diag(b)*a. b is read-only.
//
// Returns ErrShapeMismatch when len(b) differs from the row count of a;
// a is left untouched in that case.
func ScaleRows(a *mat.Dense, b []float64) error {
	r, _ := a.Dims()
	if len(b) != r {
		return fmt.Errorf("linalg: %d rows, %d scale factors: %w", r, len(b), ErrShapeMismatch)
	}

	for i, s := range b {
		vecmath.ScaleBlockInPlace(a.RawRowView(i), s)
	}

	return nil
}

// Crossprod returns the cross-product of x, i.e. X'*X, the Gram matrix
// of its columns. The result is a fresh n-by-n symmetric
// positive-semidefinite matrix; x is not modified.
func Crossprod(x mat.Matrix) *mat.Dense {
	var m mat.Dense
	m.Mul(x.T(), x)

	return &m
}
