package prob_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-stat/prob"
)

func ExampleSoftmax() {
	y, _ := prob.Softmax([]float64{1, 2, 3})
	fmt.Printf("%.4f %.4f %.4f\n", y[0], y[1], y[2])

	// Output:
	// 0.0900 0.2447 0.6652
}

func ExampleSafeNormalize() {
	x := []float64{1, 2, 3, 4}
	prob.SafeNormalize(x)
	fmt.Printf("%.1f %.1f %.1f %.1f\n", x[0], x[1], x[2], x[3])

	// Output:
	// 0.1 0.2 0.3 0.4
}

func ExampleMVNormLogPDF() {
	// Standard bivariate normal at the origin.
	l := mat.NewTriDense(2, mat.Lower, []float64{
		1, 0,
		0, 1,
	})
	lp, _ := prob.MVNormLogPDF([]float64{0, 0}, l)
	fmt.Printf("%.4f\n", lp)

	// Output:
	// -1.8379
}
