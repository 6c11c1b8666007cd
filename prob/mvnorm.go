package prob

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// Errors returned by MVNormLogPDF.
var (
	ErrShapeMismatch       = errors.New("prob: shape mismatch")
	ErrNotLowerTriangular  = errors.New("prob: factor must be lower triangular")
	ErrNonPositiveDiagonal = errors.New("prob: factor diagonal must be positive")
)

// MVNormLogPDF returns the log-density at x of the multivariate normal
// distribution with mean zero and covariance S = L*L', where l is the
// lower Cholesky factor L of S:
//
//	log p(x) = -|z|^2/2 - n*log(2*pi)/2 - sum(log(diag(L)))
//
// with z the solution of the triangular system L*z = x. Solving the
// system costs O(n^2) and avoids forming inv(L) or inv(S); the
// normalizing constant comes from the summed log-diagonal rather than
// the determinant, so it cannot overflow for large or tiny covariance
// scales. x is not modified.
//
// The factor must be lower triangular with strictly positive diagonal
// and its dimension must match len(x); violations are reported as
// ErrNotLowerTriangular, ErrNonPositiveDiagonal and ErrShapeMismatch.
func MVNormLogPDF(x []float64, l *mat.TriDense) (float64, error) {
	n, kind := l.Triangle()
	if kind != mat.Lower {
		return 0, ErrNotLowerTriangular
	}
	if len(x) != n {
		return 0, fmt.Errorf("prob: vector length %d, factor dimension %d: %w", len(x), n, ErrShapeMismatch)
	}

	var logDiag float64
	for i := 0; i < n; i++ {
		d := l.At(i, i)
		if d <= 0 {
			return 0, fmt.Errorf("prob: L[%d,%d] = %g: %w", i, i, d, ErrNonPositiveDiagonal)
		}
		logDiag += math.Log(d)
	}

	var z mat.VecDense
	if err := z.SolveVec(l, mat.NewVecDense(n, x)); err != nil {
		return 0, fmt.Errorf("prob: triangular solve failed: %w", err)
	}

	zd := z.RawVector().Data
	quad := vecmath.DotProduct(zd, zd)

	return -quad/2 - float64(n)*math.Log(2*math.Pi)/2 - logDiag, nil
}
