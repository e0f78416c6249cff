package intersect

import (
	"github.com/meshkit/overlap/geom"
)

// uniquePoints reduces a candidate multiset to the subsequence of
// points with no exactly-equal duplicate later in the sequence.
// Equality is exact component-wise equality: near-coincident points are
// deliberately kept apart, since merging them needs a tolerance model
// that belongs to downstream consumers.
func uniquePoints(points []geom.Vec) []geom.Vec {
	unique := make([]geom.Vec, 0, len(points))
	for i := range points {
		found := false
		for j := i + 1; j < len(points); j++ {
			if points[i] == points[j] {
				found = true
				break
			}
		}
		if !found {
			unique = append(unique, points[i])
		}
	}
	return unique
}

// Dedup returns the distinct points of the given candidate sequence,
// under exact equality. Applying Dedup to its own output returns an
// equal slice.
func Dedup(points []geom.Vec) []geom.Vec {
	return uniquePoints(points)
}

// addIfEqual appends a to points if a and b are exactly equal and
// neither has been added before, marking both as added. It is the
// duplicate guard used by the segment routines when collecting
// coincident end points.
func addIfEqual(points *[]geom.Vec, a, b geom.Vec, ai, bi *bool) {
	if !*ai && !*bi && a == b {
		*points = append(*points, a)
		*ai = true
		*bi = true
	}
}

// addIfEqual1D is addIfEqual for scalar coordinates.
func addIfEqual1D(points *[]float64, a, b float64, ai, bi *bool) {
	if !*ai && !*bi && a == b {
		*points = append(*points, a)
		*ai = true
		*bi = true
	}
}
