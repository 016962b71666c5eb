package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/magiccoupling/matrix"
)

// ExampleRowSums shows the line statistics of the Lo Shu square.
func ExampleRowSums() {
	m, _ := matrix.NewDenseFrom([][]float64{
		{8, 1, 6},
		{3, 5, 7},
		{4, 9, 2},
	})
	rows, _ := matrix.RowSums(m)
	cols, _ := matrix.ColSums(m)
	d, _ := matrix.DiagSum(m)
	ad, _ := matrix.AntiDiagSum(m)
	fmt.Println(rows, cols, d, ad)
	// Output: [15 15 15] [15 15 15] 15 15
}

// ExampleLowRank keeps the dominant singular direction of a diagonal matrix.
func ExampleLowRank() {
	m, _ := matrix.NewDenseFrom([][]float64{
		{3, 0},
		{0, 1},
	})
	top, _ := matrix.LowRank(m, 1)
	fmt.Print(top)
	// Output:
	// [3, 0]
	// [0, 0]
}
