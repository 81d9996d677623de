// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvmat/matrix"
)

// ExampleDense_Inverse inverts a 2×2 matrix and checks A·A⁻¹ = I.
func ExampleDense_Inverse() {
	a := matrix.MustFromRows([][]float64{{4, 7}, {2, 6}})
	inv, err := a.Inverse()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(inv)

	p, _ := matrix.Mul(a, inv)
	I, _ := matrix.Identity(2)
	fmt.Println("A·A⁻¹ = I:", p.Equal(I))
	// Output:
	// [
	// [0.6000 -0.7000]
	// [-0.2000 0.4000]
	// ]
	// A·A⁻¹ = I: true
}

// ExampleDeterminant expands along the first row.
func ExampleDeterminant() {
	d, _ := matrix.Determinant(matrix.MustFromRows([][]float64{
		{1, 0, 0},
		{0, 2, 0},
		{0, 0, 3},
	}))
	fmt.Println(d)
	// Output: 6
}

// ExampleConcatenate stacks two blocks side by side.
func ExampleConcatenate() {
	a := matrix.MustFromRows([][]float64{{1}, {2}})
	b := matrix.MustFromRows([][]float64{{3, 4}, {5, 6}})
	c, _ := matrix.Concatenate(a, b, matrix.AxisCol)
	fmt.Println(c.Rows(), c.Cols())
	fmt.Println(c)
	// Output:
	// 2 3
	// [
	// [1.0000 3.0000 4.0000]
	// [2.0000 5.0000 6.0000]
	// ]
}

// ExampleScalarSub shows scalar broadcasting: 10 − M.
func ExampleScalarSub() {
	m := matrix.MustFromRows([][]float64{{1, 2}, {3, 4}})
	r, _ := matrix.ScalarSub(10, m)
	fmt.Println(r.Data())
	// Output: [9 8 7 6]
}
