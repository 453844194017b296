// SPDX-License-Identifier: MIT
package gonumblocks_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/modeblocks/interop/gonumblocks"
)

func ExamplePartitionSym() {
	cov := mat.NewSymDense(3, []float64{
		1, 2, 3,
		2, 4, 5,
		3, 5, 6,
	})
	a, _, _, err := gonumblocks.PartitionSym(cov, []int{1})
	if err != nil {
		fmt.Println(err)
		return
	}
	full, _ := gonumblocks.ReassembleSym(a, []int{1})
	fmt.Printf("%v\n", mat.Formatted(full))
	// Output:
	// ⎡1  0  3⎤
	// ⎢0  1  0⎥
	// ⎣3  0  6⎦
}
