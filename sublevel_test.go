package sublevel_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sublevel"
	"github.com/katalvlaran/sublevel/diagram"
	"github.com/katalvlaran/sublevel/filtration"
)

// TestCompute_InvalidInput checks that invalid series surface the filtration sentinel.
func TestCompute_InvalidInput(t *testing.T) {
	_, err := sublevel.Compute(nil)
	assert.ErrorIs(t, err, filtration.ErrInvalidInput)

	_, err = sublevel.Compute([]float64{1, math.NaN()})
	assert.ErrorIs(t, err, filtration.ErrInvalidInput)

	tensor, err := sublevel.ComputeTensor([]float64{math.Inf(1)})
	assert.ErrorIs(t, err, filtration.ErrInvalidInput)
	assert.Nil(t, tensor)
}

// TestCompute_Shape checks the (1, M, 3) output for a handful of series.
func TestCompute_Shape(t *testing.T) {
	for _, values := range [][]float64{{0}, {1, 2}, {2, 1, 2, 0, 3}, {1, 5, 1, 5, 1}} {
		tensor, err := sublevel.ComputeTensor(values)
		require.NoError(t, err)
		require.Len(t, tensor, 1)
		require.NotEmpty(t, tensor[0])
		assert.Equal(t, diagram.Row{0, 0, 0}, tensor[0][0])
	}
}

// TestCompute_Options forwards finalization options.
func TestCompute_Options(t *testing.T) {
	d, err := sublevel.Compute([]float64{0, 0.5, 0}, diagram.WithNoiseThreshold(0.1), diagram.WithCanonicalPoint(false))
	require.NoError(t, err)
	assert.Equal(t, []diagram.Row{{0, 0.5, 0}}, d.Rows())
}

// TestCompute_Concurrent runs Compute from many goroutines on shared input.
func TestCompute_Concurrent(t *testing.T) {
	values := []float64{3, 0, 2, -1, 4, 1, 5, 0}
	want, err := sublevel.Compute(values)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]diagram.Diagram, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d, err := sublevel.Compute(values)
			if err == nil {
				results[i] = d
			}
		}(i)
	}
	wg.Wait()

	for _, d := range results {
		assert.True(t, want.Equal(d))
	}
}
