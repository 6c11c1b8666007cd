// Package prob provides numerically careful probability helpers: a
// stable softmax, a guarded proportional normalization, and the
// log-density of a zero-mean multivariate normal distribution given a
// Cholesky factor of its covariance.
//
// All routines operate on float64 vectors and guard against the usual
// floating-point degeneracies: exponentiation is max-shifted so it can
// neither overflow nor collapse to zero, normalization of an all-zero
// vector falls back to the uniform distribution instead of dividing by
// zero, and the normal log-density works through a triangular solve and
// a log-diagonal sum so neither the quadratic form nor the determinant
// term can overflow.
//
// # Usage
//
// Turn scores into a probability vector:
//
//	y, _ := prob.Softmax([]float64{1, 2, 3})
//
// Normalize nonnegative weights in place:
//
//	prob.SafeNormalize(weights)
//
// Evaluate a zero-mean normal log-density from a lower Cholesky factor:
//
//	lp, err := prob.MVNormLogPDF(x, chol)
package prob
