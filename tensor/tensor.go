// Copyright 2026 Loom ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the Loom tensor value type.
//
// The package re-exports the core types and constructors:
//   - Tensor[T]: generic N-dimensional array with row-major layout
//   - Shape: dimension descriptor with derived strides
//   - ShapeError: the single recoverable construction error
//
// Example:
//
//	t, err := tensor.New([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	z := tensor.Zeros[float32](tensor.Shape{2, 3})
package tensor

import (
	"github.com/loom-ml/loom/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// DataType represents the underlying element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Shape represents the dimensions of a tensor, outer to inner.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// ShapeError reports a mismatch between a flat data buffer and the
// shape it was supposed to fill. It is returned only by New.
type ShapeError = tensor.ShapeError

// Tensor is a generic N-dimensional array.
//
// T is the element type (float32, float64, int32, int64, uint8, bool).
//
// A Tensor owns a contiguous row-major buffer and is immutable after
// construction. Equality is structural (shape plus data) and display is
// the recursive nested-bracket rendering described in the package
// documentation.
type Tensor[T DType] = tensor.Tensor[T]

// Creation functions

// New creates a tensor from a flat data slice and a shape.
// It is the single validated constructor: the data length must equal the
// product of the shape's dimensions, otherwise a *ShapeError is
// returned.
//
// Example:
//
//	t, err := tensor.New([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func New[T DType](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.New(data, shape)
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
func Zeros[T DType](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	x := tensor.Ones[float32](tensor.Shape{2, 3})
func Ones[T DType](shape Shape) *Tensor[T] {
	return tensor.Ones[T](shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x := tensor.Full(tensor.Shape{2, 3}, float32(3.14))
func Full[T DType](shape Shape, value T) *Tensor[T] {
	return tensor.Full(shape, value)
}

// From1D creates a rank-1 tensor from a flat slice of values.
//
// Example:
//
//	v := tensor.From1D([]int32{1, 2, 3}) // shape {3}
func From1D[T DType](values []T) *Tensor[T] {
	return tensor.From1D(values)
}

// From2D creates a rank-2 tensor from a slice of equal-length rows.
// Ragged input panics.
//
// Example:
//
//	m := tensor.From2D([][]int32{{1, 2}, {3, 4}}) // shape {2, 2}
func From2D[T DType](rows [][]T) *Tensor[T] {
	return tensor.From2D(rows)
}

// From3D creates a rank-3 tensor from a slice of uniform rank-2 blocks.
// Ragged input panics.
//
// Example:
//
//	c := tensor.From3D([][][]int32{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}})
func From3D[T DType](blocks [][][]T) *Tensor[T] {
	return tensor.From3D(blocks)
}
