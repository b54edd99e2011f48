package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lplab/matrix"
)

// ExampleDense_Pivot runs one Gauss–Jordan step on a tiny simplex tableau:
// column 2 enters on row 0 and the objective row is reduced.
func ExampleDense_Pivot() {
	tab, _ := matrix.NewDenseFrom([][]float64{
		{1, 1, 1, 1, 10},
		{1, 2, 3, 0, 0},
	})
	if err := tab.Pivot(0, 2, 1e-10); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(tab)
	// Output:
	// [1, 1, 1, 1, 10]
	// [-2, -1, 0, -3, -30]
}

// ExampleSolve2 intersects x = 4 with 3x + 2y = 18.
func ExampleSolve2() {
	x, y, err := matrix.Solve2([2]float64{1, 0}, 4, [2]float64{3, 2}, 18, 1e-8)
	fmt.Println(x, y, err)
	// Output: 4 3 <nil>
}
