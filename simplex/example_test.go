package simplex_test

import (
	"fmt"

	"github.com/katalvlaran/linprog/simplex"
)

// ExampleSolve maximizes 3x₁ + 2x₂ subject to x₁ + x₂ ≤ 4, x ≥ 0 and prints
// the structural part of the optimal vertex.
func ExampleSolve() {
	lp, err := simplex.New(
		[][]float64{{1, 1}},
		[]float64{4},
		[]float64{3, 2},
		false)
	if err != nil {
		fmt.Println(err)

		return
	}

	res, err := simplex.Solve(lp, simplex.DefaultOptions())
	if err != nil {
		fmt.Println(err)

		return
	}

	x := res.Path[len(res.Path)-1][:lp.N()]
	fmt.Printf("optimal=%t value=%g x=%v\n", res.Optimal, res.Value, x)
	// Output:
	// optimal=true value=12 x=[4 0]
}

// ExampleAllBasicFeasibleSolutions enumerates every vertex of the same
// polytope together with its objective value.
func ExampleAllBasicFeasibleSolutions() {
	lp, err := simplex.New(
		[][]float64{{1, 1}},
		[]float64{4},
		[]float64{3, 2},
		false)
	if err != nil {
		fmt.Println(err)

		return
	}

	_, bases, values, err := simplex.AllBasicFeasibleSolutions(lp)
	if err != nil {
		fmt.Println(err)

		return
	}

	for i, basis := range bases {
		fmt.Printf("basis=%v value=%g\n", basis, values[i])
	}
	// Output:
	// basis=[0] value=12
	// basis=[1] value=8
	// basis=[2] value=0
}
