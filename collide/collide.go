/*package collide implements boolean collision predicates between
simplices: does shape A overlap shape B, including boundary contact.

The predicates never construct new coordinates. They classify
configurations through orientation signs, falling back to projected
lower-dimensional tests for collinear and coplanar inputs. The
construction kernel in package intersect consumes these predicates for
early rejection and for its degenerate branch selection.
*/
package collide

import (
	"github.com/meshkit/overlap/geom"
)

// Predicates is the collision oracle backed by the package-level
// predicate functions. The zero value is ready to use.
type Predicates struct{}

func (Predicates) SegmentPoint1D(p0, p1, q0 float64) bool {
	return SegmentPoint1D(p0, p1, q0)
}
func (Predicates) SegmentPoint2D(p0, p1, q0 geom.Vec) bool {
	return SegmentPoint2D(p0, p1, q0)
}
func (Predicates) SegmentPoint3D(p0, p1, q0 geom.Vec) bool {
	return SegmentPoint3D(p0, p1, q0)
}
func (Predicates) SegmentSegment3D(p0, p1, q0, q1 geom.Vec) bool {
	return SegmentSegment3D(p0, p1, q0, q1)
}
func (Predicates) TrianglePoint2D(p0, p1, p2, q0 geom.Vec) bool {
	return TrianglePoint2D(p0, p1, p2, q0)
}
func (Predicates) TrianglePoint3D(p0, p1, p2, q0 geom.Vec) bool {
	return TrianglePoint3D(p0, p1, p2, q0)
}
func (Predicates) TetrahedronPoint3D(p0, p1, p2, p3, q0 geom.Vec) bool {
	return TetrahedronPoint3D(p0, p1, p2, p3, q0)
}

// SegmentPoint1D reports whether q0 lies in the closed interval with
// end points p0 and p1.
func SegmentPoint1D(p0, p1, q0 float64) bool {
	if p0 <= p1 {
		return p0 <= q0 && q0 <= p1
	}
	return p1 <= q0 && q0 <= p0
}

// SegmentPoint2D reports whether q0 lies on the closed segment
// (p0, p1).
func SegmentPoint2D(p0, p1, q0 geom.Vec) bool {
	// A zero-length segment is a point: the collinearity test below is
	// vacuous for it and the axis projection would compare x alone.
	if p0 == p1 {
		return q0 == p0
	}
	if geom.Orient2D(p0, p1, q0) != 0 {
		return false
	}
	axis := geom.MajorAxis2D(p1.Sub(p0))
	return SegmentPoint1D(p0[axis], p1[axis], q0[axis])
}

// SegmentPoint3D reports whether q0 lies on the closed segment
// (p0, p1).
func SegmentPoint3D(p0, p1, q0 geom.Vec) bool {
	if p0 == p1 {
		return q0 == p0
	}
	u := p1.Sub(p0)
	if u.Cross(q0.Sub(p0)) != (geom.Vec{}) {
		return false
	}
	axis := geom.MajorAxis3D(u)
	return SegmentPoint1D(p0[axis], p1[axis], q0[axis])
}

// SegmentSegment1D reports whether the closed intervals (p0, p1) and
// (q0, q1) overlap.
func SegmentSegment1D(p0, p1, q0, q1 float64) bool {
	if p0 > p1 {
		p0, p1 = p1, p0
	}
	if q0 > q1 {
		q0, q1 = q1, q0
	}
	return p0 <= q1 && q0 <= p1
}

// SegmentSegment2D reports whether the closed segments (p0, p1) and
// (q0, q1) share at least one point.
func SegmentSegment2D(p0, p1, q0, q1 geom.Vec) bool {
	p0o := geom.Orient2D(q0, q1, p0)
	p1o := geom.Orient2D(q0, q1, p1)
	q0o := geom.Orient2D(p0, p1, q0)
	q1o := geom.Orient2D(p0, p1, q1)
	if p0o*p1o < 0 && q0o*q1o < 0 {
		return true
	}

	// Boundary contact and collinear overlap reduce to point-on-segment.
	return SegmentPoint2D(q0, q1, p0) || SegmentPoint2D(q0, q1, p1) ||
		SegmentPoint2D(p0, p1, q0) || SegmentPoint2D(p0, p1, q1)
}

// SegmentSegment3D reports whether the closed segments (p0, p1) and
// (q0, q1) share at least one point. Skew segments never collide.
func SegmentSegment3D(p0, p1, q0, q1 geom.Vec) bool {
	if SegmentPoint3D(q0, q1, p0) || SegmentPoint3D(q0, q1, p1) ||
		SegmentPoint3D(p0, p1, q0) || SegmentPoint3D(p0, p1, q1) {
		return true
	}

	// An interior crossing requires exact coplanarity.
	if geom.Orient3D(p0, p1, q0, q1) != 0 {
		return false
	}
	n := p1.Sub(p0).Cross(q1.Sub(q0))
	if n == (geom.Vec{}) {
		// Parallel and, given the end point tests above, disjoint.
		return false
	}

	// Project along the normal's major axis. The projection is
	// invertible on the common plane, so collision is preserved.
	axis := geom.MajorAxis3D(n)
	return SegmentSegment2D(
		geom.ProjectToPlane3D(p0, axis), geom.ProjectToPlane3D(p1, axis),
		geom.ProjectToPlane3D(q0, axis), geom.ProjectToPlane3D(q1, axis),
	)
}

// TrianglePoint2D reports whether q0 lies in the closed triangle
// (p0, p1, p2). The vertex order of the triangle may have either
// orientation.
func TrianglePoint2D(p0, p1, p2, q0 geom.Vec) bool {
	ref := geom.Orient2D(p0, p1, p2)
	if ref == 0 {
		// Degenerate triangle: all mass is on its edges.
		return SegmentPoint2D(p0, p1, q0) || SegmentPoint2D(p0, p2, q0) ||
			SegmentPoint2D(p1, p2, q0)
	}
	s := 1.0
	if ref < 0 {
		s = -1.0
	}
	return s*geom.Orient2D(p0, p1, q0) >= 0 &&
		s*geom.Orient2D(p1, p2, q0) >= 0 &&
		s*geom.Orient2D(p2, p0, q0) >= 0
}

// TrianglePoint3D reports whether q0 lies in the closed triangle
// (p0, p1, p2). Points off the triangle's plane never collide.
func TrianglePoint3D(p0, p1, p2, q0 geom.Vec) bool {
	if geom.Orient3D(p0, p1, p2, q0) != 0 {
		return false
	}
	n := geom.CrossProduct(p0, p1, p2)
	if n == (geom.Vec{}) {
		return SegmentPoint3D(p0, p1, q0) || SegmentPoint3D(p0, p2, q0) ||
			SegmentPoint3D(p1, p2, q0)
	}
	axis := geom.MajorAxis3D(n)
	return TrianglePoint2D(
		geom.ProjectToPlane3D(p0, axis), geom.ProjectToPlane3D(p1, axis),
		geom.ProjectToPlane3D(p2, axis), geom.ProjectToPlane3D(q0, axis),
	)
}

// TriangleSegment2D reports whether the closed triangle (p0, p1, p2)
// and the closed segment (q0, q1) share at least one point.
func TriangleSegment2D(p0, p1, p2, q0, q1 geom.Vec) bool {
	return TrianglePoint2D(p0, p1, p2, q0) ||
		TrianglePoint2D(p0, p1, p2, q1) ||
		SegmentSegment2D(p0, p1, q0, q1) ||
		SegmentSegment2D(p0, p2, q0, q1) ||
		SegmentSegment2D(p1, p2, q0, q1)
}

// TriangleSegment3D reports whether the closed triangle (p0, p1, p2)
// and the closed segment (q0, q1) share at least one point.
func TriangleSegment3D(p0, p1, p2, q0, q1 geom.Vec) bool {
	q0o := geom.Orient3D(p0, p1, p2, q0)
	q1o := geom.Orient3D(p0, p1, p2, q1)
	if q0o*q1o > 0 {
		return false
	}

	if q0o == 0 && q1o == 0 {
		// Segment in the triangle plane: project and test there.
		n := geom.CrossProduct(p0, p1, p2)
		if n == (geom.Vec{}) {
			return SegmentSegment3D(p0, p1, q0, q1) ||
				SegmentSegment3D(p0, p2, q0, q1) ||
				SegmentSegment3D(p1, p2, q0, q1)
		}
		axis := geom.MajorAxis3D(n)
		return TriangleSegment2D(
			geom.ProjectToPlane3D(p0, axis), geom.ProjectToPlane3D(p1, axis),
			geom.ProjectToPlane3D(p2, axis),
			geom.ProjectToPlane3D(q0, axis), geom.ProjectToPlane3D(q1, axis),
		)
	}
	if q0o == 0 {
		return TrianglePoint3D(p0, p1, p2, q0)
	}
	if q1o == 0 {
		return TrianglePoint3D(p0, p1, p2, q1)
	}

	// Strict plane crossing: the segment pierces the triangle exactly
	// when the three side volumes carry a consistent sign.
	o01 := geom.Orient3D(q0, q1, p0, p1)
	o12 := geom.Orient3D(q0, q1, p1, p2)
	o20 := geom.Orient3D(q0, q1, p2, p0)
	return (o01 >= 0 && o12 >= 0 && o20 >= 0) ||
		(o01 <= 0 && o12 <= 0 && o20 <= 0)
}

// TriangleTriangle2D reports whether the closed triangles (p0, p1, p2)
// and (q0, q1, q2) share at least one point.
func TriangleTriangle2D(p0, p1, p2, q0, q1, q2 geom.Vec) bool {
	if TrianglePoint2D(p0, p1, p2, q0) || TrianglePoint2D(p0, p1, p2, q1) ||
		TrianglePoint2D(p0, p1, p2, q2) {
		return true
	}
	if TrianglePoint2D(q0, q1, q2, p0) || TrianglePoint2D(q0, q1, q2, p1) ||
		TrianglePoint2D(q0, q1, q2, p2) {
		return true
	}
	pEdges := [3][2]geom.Vec{{p0, p1}, {p0, p2}, {p1, p2}}
	qEdges := [3][2]geom.Vec{{q0, q1}, {q0, q2}, {q1, q2}}
	for _, pe := range pEdges {
		for _, qe := range qEdges {
			if SegmentSegment2D(pe[0], pe[1], qe[0], qe[1]) {
				return true
			}
		}
	}
	return false
}

// TetrahedronPoint3D reports whether q0 lies in the closed tetrahedron
// (p0, p1, p2, p3). The vertex order may have either orientation.
func TetrahedronPoint3D(p0, p1, p2, p3, q0 geom.Vec) bool {
	ref := geom.Orient3D(p0, p1, p2, p3)
	if ref == 0 {
		// Flat tetrahedron: all mass is on its faces.
		return TrianglePoint3D(p0, p1, p2, q0) ||
			TrianglePoint3D(p0, p1, p3, q0) ||
			TrianglePoint3D(p0, p2, p3, q0) ||
			TrianglePoint3D(p1, p2, p3, q0)
	}
	s := 1.0
	if ref < 0 {
		s = -1.0
	}
	return s*geom.Orient3D(q0, p1, p2, p3) >= 0 &&
		s*geom.Orient3D(p0, q0, p2, p3) >= 0 &&
		s*geom.Orient3D(p0, p1, q0, p3) >= 0 &&
		s*geom.Orient3D(p0, p1, p2, q0) >= 0
}

// TetrahedronSegment3D reports whether the closed tetrahedron
// (p0, p1, p2, p3) and the closed segment (q0, q1) share at least one
// point.
func TetrahedronSegment3D(p0, p1, p2, p3, q0, q1 geom.Vec) bool {
	return TetrahedronPoint3D(p0, p1, p2, p3, q0) ||
		TetrahedronPoint3D(p0, p1, p2, p3, q1) ||
		TriangleSegment3D(p0, p1, p2, q0, q1) ||
		TriangleSegment3D(p0, p1, p3, q0, q1) ||
		TriangleSegment3D(p0, p2, p3, q0, q1) ||
		TriangleSegment3D(p1, p2, p3, q0, q1)
}
