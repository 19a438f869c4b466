package tensor

import "fmt"

// ShapeError reports a mismatch between a flat data buffer and the shape
// it was supposed to fill. It is the only recoverable error in the
// package and originates exclusively in New.
type ShapeError struct {
	DataLen  int   // length of the supplied data
	Expected int   // product of the supplied shape
	Shape    Shape // the supplied shape
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("shape %v requires %d elements, but got %d", e.Shape, e.Expected, e.DataLen)
}
