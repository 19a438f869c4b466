package tensor

import (
	"fmt"
	"strings"
)

// String renders the tensor as nested bracketed text mirroring its shape.
// Scalars (rank 0) and tensors containing a zero-size dimension render as
// the empty-bracket placeholder "[]". Otherwise each dimension adds one
// bracket level: the innermost dimension renders on a single line, outer
// dimensions put each child on its own line, indented two spaces per
// depth, with a comma after every child but the last.
//
// Example (shape {2, 2}, data [1 2 3 4]):
//
//	[
//	  [1, 2],
//	  [3, 4]
//	]
func (t *Tensor[T]) String() string {
	if len(t.shape) == 0 || t.shape.NumElements() == 0 {
		return "[]"
	}

	var sb strings.Builder
	formatDim(&sb, t.data, t.shape, t.strides, 0)
	return sb.String()
}

// formatDim renders one dimension level. It walks the first dimension by
// its stride and recurses on the remaining shape/stride suffixes, so no
// intermediate nested containers are built.
func formatDim[T DType](sb *strings.Builder, data []T, shape Shape, strides []int, depth int) {
	indent := strings.Repeat("  ", depth)

	if len(shape) == 1 {
		sb.WriteString(indent)
		sb.WriteString("[")
		for i := 0; i < shape[0]; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(sb, "%v", data[i*strides[0]])
		}
		sb.WriteString("]")
		return
	}

	sb.WriteString(indent)
	sb.WriteString("[\n")
	for i := 0; i < shape[0]; i++ {
		formatDim(sb, data[i*strides[0]:], shape[1:], strides[1:], depth+1)
		if i < shape[0]-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(indent)
	sb.WriteString("]")
}
