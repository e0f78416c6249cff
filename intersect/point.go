package intersect

import (
	"github.com/meshkit/overlap/geom"
)

// The leaf routines return the query point itself or nothing. They
// delegate the membership decision to the oracle and never compute new
// coordinates.

// PointPoint1D intersects two points on the line.
func (k *Kernel) PointPoint1D(p0, q0 float64) []float64 {
	if p0 == q0 {
		return []float64{p0}
	}
	return nil
}

// PointPoint intersects two points. Exact component-wise equality is
// the only collision case, independent of the embedding dimension.
func (k *Kernel) PointPoint(p0, q0 geom.Vec) []geom.Vec {
	if p0 == q0 {
		return []geom.Vec{p0}
	}
	return nil
}

// SegmentPoint1D intersects the interval (p0, p1) with the point q0.
func (k *Kernel) SegmentPoint1D(p0, p1, q0 float64) []float64 {
	if k.oracle.SegmentPoint1D(p0, p1, q0) {
		return []float64{q0}
	}
	return nil
}

// SegmentPoint2D intersects the segment (p0, p1) with the point q0.
func (k *Kernel) SegmentPoint2D(p0, p1, q0 geom.Vec) []geom.Vec {
	if k.oracle.SegmentPoint2D(p0, p1, q0) {
		return []geom.Vec{q0}
	}
	return nil
}

// SegmentPoint3D intersects the segment (p0, p1) with the point q0.
func (k *Kernel) SegmentPoint3D(p0, p1, q0 geom.Vec) []geom.Vec {
	if k.oracle.SegmentPoint3D(p0, p1, q0) {
		return []geom.Vec{q0}
	}
	return nil
}

// TrianglePoint2D intersects the triangle (p0, p1, p2) with the point
// q0.
func (k *Kernel) TrianglePoint2D(p0, p1, p2, q0 geom.Vec) []geom.Vec {
	if k.oracle.TrianglePoint2D(p0, p1, p2, q0) {
		return []geom.Vec{q0}
	}
	return nil
}

// TrianglePoint3D intersects the triangle (p0, p1, p2) with the point
// q0.
func (k *Kernel) TrianglePoint3D(p0, p1, p2, q0 geom.Vec) []geom.Vec {
	if k.oracle.TrianglePoint3D(p0, p1, p2, q0) {
		return []geom.Vec{q0}
	}
	return nil
}

// TetrahedronPoint3D intersects the tetrahedron (p0, p1, p2, p3) with
// the point q0.
func (k *Kernel) TetrahedronPoint3D(p0, p1, p2, p3, q0 geom.Vec) []geom.Vec {
	if k.oracle.TetrahedronPoint3D(p0, p1, p2, p3, q0) {
		return []geom.Vec{q0}
	}
	return nil
}
