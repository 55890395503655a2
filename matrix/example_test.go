package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/matcache/matrix"
)

// ExampleSolve inverts a diagonal matrix: no RHS option means B = I.
func ExampleSolve() {
	a, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 4}})

	inv, _ := matrix.Solve(a)
	fmt.Print(inv)

	// Output:
	// [0.5, 0]
	// [0, 0.25]
}

// ExampleSolve_withRHS solves A·x = b for a single column vector, which is
// cheaper than forming A⁻¹ and multiplying.
func ExampleSolve_withRHS() {
	a, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 2}})
	b, _ := matrix.NewDenseFromRows([][]float64{{2}, {4}})

	x, _ := matrix.Solve(a, matrix.WithRHS(b))
	fmt.Print(x)

	// Output:
	// [1]
	// [2]
}
