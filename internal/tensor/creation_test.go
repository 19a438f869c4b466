package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeros(t *testing.T) {
	tensor := Zeros[int32](Shape{2, 3})

	require.True(t, tensor.Shape().Equal(Shape{2, 3}))
	require.Len(t, tensor.Data(), 6)
	for i, v := range tensor.Data() {
		assert.Equal(t, int32(0), v, "element %d", i)
	}
}

func TestZerosScalar(t *testing.T) {
	tensor := Zeros[float32](Shape{})

	assert.Equal(t, 0, tensor.Rank())
	assert.Equal(t, 1, tensor.NumElements())
	assert.Equal(t, float32(0), tensor.Item())
}

func TestZerosZeroSizeDim(t *testing.T) {
	tensor := Zeros[float32](Shape{3, 0})

	assert.Equal(t, 0, tensor.NumElements())
	assert.Empty(t, tensor.Data())
}

func TestZerosOverflowIsFatal(t *testing.T) {
	huge := Shape{math.MaxInt, 2}

	assert.Panics(t, func() { Zeros[uint8](huge) })
}

func TestZerosNegativeDimIsFatal(t *testing.T) {
	assert.Panics(t, func() { Zeros[int32](Shape{2, -3}) })
}

func TestOnes(t *testing.T) {
	tensor := Ones[float64](Shape{2, 2})

	require.Len(t, tensor.Data(), 4)
	for _, v := range tensor.Data() {
		assert.Equal(t, float64(1), v)
	}
}

func TestOnesBool(t *testing.T) {
	tensor := Ones[bool](Shape{3})

	for _, v := range tensor.Data() {
		assert.True(t, v)
	}
}

func TestFull(t *testing.T) {
	tensor := Full(Shape{2, 3}, float32(3.14))

	require.True(t, tensor.Shape().Equal(Shape{2, 3}))
	for _, v := range tensor.Data() {
		assert.Equal(t, float32(3.14), v)
	}
}

func TestFrom1D(t *testing.T) {
	tensor := From1D([]int32{1, 2, 3})

	assert.True(t, tensor.Shape().Equal(Shape{3}))
	assert.Equal(t, []int32{1, 2, 3}, tensor.Data())
}

func TestFrom1DCopiesInput(t *testing.T) {
	values := []int32{1, 2, 3}
	tensor := From1D(values)

	values[0] = 99
	assert.Equal(t, int32(1), tensor.Data()[0])
}

func TestFrom2D(t *testing.T) {
	tensor := From2D([][]int32{{1, 2}, {3, 4}})

	assert.True(t, tensor.Shape().Equal(Shape{2, 2}))
	assert.Equal(t, []int32{1, 2, 3, 4}, tensor.Data())

	// Round-trip: the literal form equals the explicit constructor.
	explicit, err := New([]int32{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	assert.True(t, tensor.Equal(explicit))
}

func TestFrom2DRaggedIsFatal(t *testing.T) {
	assert.Panics(t, func() {
		From2D([][]int32{{1, 2}, {3}})
	})
}

func TestFrom2DEmpty(t *testing.T) {
	tensor := From2D[int32](nil)

	assert.True(t, tensor.Shape().Equal(Shape{0, 0}))
	assert.Empty(t, tensor.Data())
}

func TestFrom3D(t *testing.T) {
	tensor := From3D([][][]int32{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8}},
	})

	assert.True(t, tensor.Shape().Equal(Shape{2, 2, 2}))
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6, 7, 8}, tensor.Data())

	// Outer-to-inner flattening matches the row-major strides.
	assert.Equal(t, []int{4, 2, 1}, tensor.Strides())
	assert.Equal(t, int32(7), tensor.At(1, 1, 0))
}

func TestFrom3DRaggedRowIsFatal(t *testing.T) {
	assert.Panics(t, func() {
		From3D([][][]int32{
			{{1, 2}, {3, 4}},
			{{5, 6}, {7}},
		})
	})
}

func TestFrom3DRaggedBlockIsFatal(t *testing.T) {
	assert.Panics(t, func() {
		From3D([][][]int32{
			{{1, 2}, {3, 4}},
			{{5, 6}},
		})
	})
}
