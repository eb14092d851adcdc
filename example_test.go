package sublevel_test

import (
	"fmt"

	"github.com/katalvlaran/sublevel"
	"github.com/katalvlaran/sublevel/diagram"
)

// ExampleCompute shows the diagram of two basins separated by a peak.
func ExampleCompute() {
	d, err := sublevel.Compute([]float64{1, 5, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(d.Shape())
	fmt.Println(d.Tensor())
	// Output:
	// [1 2 3]
	// [[[0 0 0] [1 5 0]]]
}

// ExampleCompute_noise shows how the noise threshold removes shallow basins.
func ExampleCompute_noise() {
	values := []float64{0, 0.4, 0.1, 3, -1}

	loose, _ := sublevel.Compute(values)
	strict, _ := sublevel.Compute(values, diagram.WithNoiseThreshold(0.5))
	fmt.Println(loose.Rows())
	fmt.Println(strict.Rows())
	// Output:
	// [[0 0 0] [0.1 0.4 0] [0 3 0]]
	// [[0 0 0] [0 3 0]]
}
