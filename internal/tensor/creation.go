package tensor

import "fmt"

// Zeros creates a tensor filled with zeros.
// An element count that overflows int is fatal: the allocation would be
// wrong, so the count is checked rather than silently wrapped.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4})
func Zeros[T DType](shape Shape) *Tensor[T] {
	data := make([]T, shape.checkedNumElements())

	t, err := New(data, shape)
	if err != nil {
		panic(err) // data length matches the shape product by construction
	}
	return t
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t := tensor.Ones[float64](Shape{2, 3})
func Ones[T DType](shape Shape) *Tensor[T] {
	// Type-specific one value
	var dummy T
	var one any
	switch any(dummy).(type) {
	case float32:
		one = float32(1)
	case float64:
		one = float64(1)
	case int32:
		one = int32(1)
	case int64:
		one = int64(1)
	case uint8:
		one = uint8(1)
	case bool:
		one = true
	}

	return Full(shape, one.(T))
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(Shape{3, 3}, float32(3.14))
func Full[T DType](shape Shape, value T) *Tensor[T] {
	t := Zeros[T](shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// From1D creates a rank-1 tensor from a flat slice of values.
// The shape is {len(values)}; the values are copied.
//
// Example:
//
//	v := tensor.From1D([]int32{1, 2, 3}) // shape {3}
func From1D[T DType](values []T) *Tensor[T] {
	data := append([]T(nil), values...)

	t, err := New(data, Shape{len(values)})
	if err != nil {
		panic(err) // shape is derived from the data, cannot mismatch
	}
	return t
}

// From2D creates a rank-2 tensor from a slice of rows.
// All rows must have the same length as the first; a ragged literal is a
// programming error and panics rather than being padded or truncated.
// Rows are flattened top to bottom, matching the row-major layout.
//
// Example:
//
//	m := tensor.From2D([][]int32{{1, 2}, {3, 4}}) // shape {2, 2}
func From2D[T DType](rows [][]T) *Tensor[T] {
	if len(rows) == 0 {
		return Zeros[T](Shape{0, 0})
	}

	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("From2D: row %d has length %d, want %d", i, len(row), cols))
		}
		data = append(data, row...)
	}

	t, err := New(data, Shape{len(rows), cols})
	if err != nil {
		panic(err) // uniform rows guarantee agreement
	}
	return t
}

// From3D creates a rank-3 tensor from a slice of rank-2 blocks.
// Every block must have the same row count as the first block, and every
// row the same length as the first row; any inconsistency panics.
// Blocks are flattened first to last, rows within a block top to bottom.
//
// Example:
//
//	c := tensor.From3D([][][]int32{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}}) // shape {2, 2, 2}
func From3D[T DType](blocks [][][]T) *Tensor[T] {
	if len(blocks) == 0 {
		return Zeros[T](Shape{0, 0, 0})
	}

	numRows := len(blocks[0])
	cols := 0
	if numRows > 0 {
		cols = len(blocks[0][0])
	}

	data := make([]T, 0, len(blocks)*numRows*cols)
	for i, block := range blocks {
		if len(block) != numRows {
			panic(fmt.Sprintf("From3D: block %d has %d rows, want %d", i, len(block), numRows))
		}
		for j, row := range block {
			if len(row) != cols {
				panic(fmt.Sprintf("From3D: block %d row %d has length %d, want %d", i, j, len(row), cols))
			}
			data = append(data, row...)
		}
	}

	t, err := New(data, Shape{len(blocks), numRows, cols})
	if err != nil {
		panic(err) // uniform blocks guarantee agreement
	}
	return t
}
