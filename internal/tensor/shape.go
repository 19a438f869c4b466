package tensor

import (
	"fmt"
	"math"
)

// Shape represents the dimensions of a tensor, outer to inner.
type Shape []int

// NumElements returns the total number of elements in the tensor.
// The empty shape describes a scalar and has one element; any zero-size
// dimension makes the count zero.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// checkedNumElements is NumElements with overflow and sign checking.
// Fill factories allocate this many elements, so a silently wrapped
// count would allocate the wrong buffer; that condition is fatal.
func (s Shape) checkedNumElements() int {
	n := 1
	for i, dim := range s {
		if dim < 0 {
			panic(fmt.Sprintf("shape %v: negative dimension at index %d", s, i))
		}
		if dim != 0 && n > math.MaxInt/dim {
			panic(fmt.Sprintf("shape %v: element count overflows int", s))
		}
		n *= dim
	}
	return n
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
// The empty shape yields empty strides; zero-size dimensions go through
// the same recurrence as any other.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}
