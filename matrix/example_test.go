package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/stochastic/matrix"
)

// ExampleSolve solves a 2×2 system that needs a row swap.
func ExampleSolve() {
	A, _ := matrix.NewDenseFromRows([][]float64{
		{0, 2},
		{1, 1},
	})
	x, err := matrix.Solve(A, []float64{4, 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("x = [%.1f %.1f]\n", x[0], x[1])
	// Output:
	// x = [1.0 2.0]
}

// ExamplePowerIterate finds the stationary distribution of a two-state chain.
func ExamplePowerIterate() {
	P, _ := matrix.NewDenseFromRows([][]float64{
		{0.9, 0.1},
		{0.2, 0.8},
	})
	pi, conv, _ := matrix.PowerIterate(P)
	fmt.Printf("pi = [%.4f %.4f] converged=%v\n", pi[0], pi[1], conv.Converged)
	// Output:
	// pi = [0.6667 0.3333] converged=true
}

// ExampleNormalizeRowsL1 turns transition counts into probabilities.
func ExampleNormalizeRowsL1() {
	counts, _ := matrix.NewDenseFromRows([][]float64{
		{2, 2},
		{1, 3},
	})
	P, _, _ := matrix.NormalizeRowsL1(counts)
	fmt.Println(P)
	// Output:
	// [0.5, 0.5]
	// [0.25, 0.75]
}
