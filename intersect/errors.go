package intersect

import (
	"fmt"
)

// UnsupportedDimensionError reports a dispatch for a combination of
// topological and geometric dimensions that has no specialized routine.
// It indicates a caller contract violation and is not retryable.
type UnsupportedDimensionError struct {
	D0, D1  int // topological dimensions of the two simplices
	GeomDim int // dimension of the embedding space
}

func (e *UnsupportedDimensionError) Error() string {
	return fmt.Sprintf(
		"intersection not implemented for topological dimensions "+
			"%d / %d in geometric dimension %d", e.D0, e.D1, e.GeomDim,
	)
}

// InvariantError reports an internal inconsistency: a routine produced
// a result that its own construction rules out, such as more than two
// distinct points from a segment-segment intersection or a non-finite
// coordinate. It indicates a bug, not bad input.
type InvariantError struct {
	Routine string
	Detail  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: invariant violated: %s", e.Routine, e.Detail)
}

func errNonFinite(routine string) error {
	return &InvariantError{Routine: routine, Detail: "non-finite coordinate in result"}
}
