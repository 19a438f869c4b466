// Copyright 2026 Loom ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides a minimal N-dimensional array value type.
//
// # Overview
//
// A Tensor is a contiguous flat buffer plus shape and stride metadata.
// This package provides:
//   - Generic type-safe tensors (Tensor[T])
//   - Validated construction from flat data and a shape
//   - Zero-fill and literal-style factories
//   - Structural equality and recursive bracketed display
//
// It defines the value type only: there are no arithmetic operations,
// no broadcasting, no views, and no device placement.
//
// # Basic Usage
//
//	import "github.com/loom-ml/loom/tensor"
//
//	func main() {
//	    // Validated constructor
//	    t, err := tensor.New([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//
//	    // Factories
//	    z := tensor.Zeros[float32](tensor.Shape{2, 3})
//	    m := tensor.From2D([][]int32{{1, 2}, {3, 4}})
//
//	    fmt.Println(m) // nested bracketed rendering
//	}
//
// # Supported Element Types
//
// The package supports the following element types via the DType constraint:
//   - float32, float64 (floating-point)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers, useful for images)
//   - bool (boolean masks)
//
// # Memory Layout
//
// Data is stored row-major: the first dimension varies slowest. Strides
// are derived from the shape (strides[last] = 1, strides[i] =
// strides[i+1] * shape[i+1]) and are never mutated independently.
//
// # Errors
//
// New returns a *ShapeError when the data length does not match the
// shape product. Ragged literal input and element-count overflow in the
// fill factories are programmer errors and panic.
//
// # Concurrency
//
// Tensors are immutable after construction and safe for concurrent
// reads without additional locking.
package tensor
