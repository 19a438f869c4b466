package tensor

import "fmt"

// Tensor is a generic N-dimensional array with element type T.
// It stores elements in a contiguous flat buffer in row-major order,
// together with the shape and the strides derived from it.
//
// A Tensor is created only through New (directly or via the factories in
// creation.go) and is never mutated afterwards, so instances can be
// shared freely across goroutines for reads.
//
// Example:
//
//	t, err := tensor.New([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
type Tensor[T DType] struct {
	data    []T
	shape   Shape
	strides []int
}

// New creates a Tensor from a flat data slice and a shape.
// The data must hold exactly shape.NumElements() elements; otherwise a
// *ShapeError naming both quantities is returned and no tensor is
// constructed. The data slice is adopted as-is, without copying or
// reordering. This is the single point where the tensor invariants are
// enforced; every other constructor routes through it.
//
// A negative dimension or a shape whose element count overflows int is a
// programming error and panics.
func New[T DType](data []T, shape Shape) (*Tensor[T], error) {
	expected := shape.checkedNumElements()
	if len(data) != expected {
		return nil, &ShapeError{DataLen: len(data), Expected: expected, Shape: shape.Clone()}
	}

	return &Tensor[T]{
		data:    data,
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}, nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's row-major memory strides.
func (t *Tensor[T]) Strides() []int {
	return t.strides
}

// Rank returns the number of dimensions.
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return t.shape.NumElements()
}

// DType returns runtime type information for the element type.
func (t *Tensor[T]) DType() DataType {
	var dummy T
	return inferDataType(dummy)
}

// Data returns the tensor's flat data buffer.
//
// WARNING: The slice aliases the tensor's memory (zero-copy). Callers
// must treat it as read-only; tensors are immutable after construction.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// At returns the element at the given indices.
// Panics if the number of indices does not match the rank or an index is
// out of bounds.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4})
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T]) At(indices ...int) T {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}

	// Calculate flat index using strides
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.strides[i]
	}

	return t.data[offset]
}

// Item returns the scalar value of a 0-D tensor.
// Panics if the tensor is not a scalar.
func (t *Tensor[T]) Item() T {
	if len(t.shape) != 0 {
		panic(fmt.Sprintf("Item() only works for scalar tensors, got shape %v", t.shape))
	}
	return t.data[0]
}

// Equal reports structural equality: same shape and element-wise equal
// data. Strides are derived from the shape and carry no extra
// information, so they do not participate.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		if t.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return &Tensor[T]{
		data:    append([]T(nil), t.data...),
		shape:   t.shape.Clone(),
		strides: append([]int(nil), t.strides...),
	}
}
