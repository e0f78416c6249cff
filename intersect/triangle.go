package intersect

import (
	"github.com/meshkit/overlap/geom"
)

// triEdges indexes the three edges of a triangle's vertex tuple.
var triEdges = [3][2]int{{0, 1}, {0, 2}, {1, 2}}

// TriangleSegment2D intersects the closed triangle (p0, p1, p2) with
// the closed segment (q0, q1) in the plane: two point tests for the
// segment end points and three edge-segment tests, deduplicated.
func (k *Kernel) TriangleSegment2D(p0, p1, p2, q0, q1 geom.Vec) ([]geom.Vec, error) {
	var points []geom.Vec

	points = append(points, k.TrianglePoint2D(p0, p1, p2, q0)...)
	points = append(points, k.TrianglePoint2D(p0, p1, p2, q1)...)

	tri := [3]geom.Vec{p0, p1, p2}
	for _, e := range triEdges {
		ss, err := k.SegmentSegment2D(tri[e[0]], tri[e[1]], q0, q1)
		if err != nil {
			return nil, err
		}
		points = append(points, ss...)
	}

	if !geom.IsFinite(points) {
		return nil, errNonFinite("triangle-segment 2d")
	}
	return uniquePoints(points), nil
}

// TriangleSegment3D intersects the closed triangle (p0, p1, p2) with
// the closed segment (q0, q1) in space.
//
// The in-plane case is knowingly incomplete: when the segment lies in
// the triangle's plane, only the segment end points contained in the
// triangle are reported. An in-plane segment that enters and leaves
// through two edges, with neither end point inside, yields no points.
// A consistent answer for that configuration needs the 2D machinery on
// projected coordinates and has not been settled; see the gap test in
// this package before relying on in-plane results.
func (k *Kernel) TriangleSegment3D(p0, p1, p2, q0, q1 geom.Vec) ([]geom.Vec, error) {
	var points []geom.Vec

	q0o := k.tools.Orient3D(p0, p1, p2, q0)
	q1o := k.tools.Orient3D(p0, p1, p2, q1)
	qo := q0o * q1o

	// Both end points strictly on one side of the plane: no collision.
	if qo > 0 {
		return nil, nil
	}

	// One or both end points in the triangle plane.
	if qo == 0 {
		if q0o == 0 && k.oracle.TrianglePoint3D(p0, p1, p2, q0) {
			points = append(points, q0)
		}
		if q1o == 0 && k.oracle.TrianglePoint3D(p0, p1, p2, q1) {
			points = append(points, q1)
		}
		return uniquePoints(points), nil
	}

	// Strict plane crossing: x = q0 + num/den * (q1 - q0). den is the
	// difference of the two strictly-opposite orientation values, so it
	// cannot vanish, but a tiny den still puts x far from the true
	// crossing; the projected containment test below then rejects it and
	// the result is empty rather than wrong.
	n := k.tools.CrossProduct(p0, p1, p2)
	num := n.Dot(p0.Sub(q0))
	den := n.Dot(q1.Sub(q0))
	x := q0.Add(q1.Sub(q0).Scale(num / den))

	axis := k.tools.MajorAxis3D(n)
	P0 := k.tools.ProjectToPlane3D(p0, axis)
	P1 := k.tools.ProjectToPlane3D(p1, axis)
	P2 := k.tools.ProjectToPlane3D(p2, axis)
	X := k.tools.ProjectToPlane3D(x, axis)
	if k.oracle.TrianglePoint2D(P0, P1, P2, X) {
		points = append(points, x)
	}

	if !geom.IsFinite(points) {
		return nil, errNonFinite("triangle-segment 3d")
	}
	return points, nil
}

// TriangleTriangle2D intersects the closed triangles (p0, p1, p2) and
// (q0, q1, q2) in the plane: six vertex-in-triangle tests and nine
// edge-edge tests, deduplicated.
func (k *Kernel) TriangleTriangle2D(p0, p1, p2, q0, q1, q2 geom.Vec) ([]geom.Vec, error) {
	var points []geom.Vec

	tp := [3]geom.Vec{p0, p1, p2}
	tq := [3]geom.Vec{q0, q1, q2}

	for i := 0; i < 3; i++ {
		points = append(points, k.TrianglePoint2D(p0, p1, p2, tq[i])...)
		points = append(points, k.TrianglePoint2D(q0, q1, q2, tp[i])...)
	}

	for _, ep := range triEdges {
		for _, eq := range triEdges {
			ss, err := k.SegmentSegment2D(
				tp[ep[0]], tp[ep[1]], tq[eq[0]], tq[eq[1]],
			)
			if err != nil {
				return nil, err
			}
			points = append(points, ss...)
		}
	}

	if !geom.IsFinite(points) {
		return nil, errNonFinite("triangle-triangle 2d")
	}
	return uniquePoints(points), nil
}

// TriangleTriangle3D intersects the closed triangles (p0, p1, p2) and
// (q0, q1, q2) in space: six vertex-in-triangle tests and six
// triangle-edge tests, deduplicated.
func (k *Kernel) TriangleTriangle3D(p0, p1, p2, q0, q1, q2 geom.Vec) ([]geom.Vec, error) {
	var points []geom.Vec

	tp := [3]geom.Vec{p0, p1, p2}
	tq := [3]geom.Vec{q0, q1, q2}

	for i := 0; i < 3; i++ {
		points = append(points, k.TrianglePoint3D(p0, p1, p2, tq[i])...)
		points = append(points, k.TrianglePoint3D(q0, q1, q2, tp[i])...)
	}

	for _, e := range triEdges {
		ts, err := k.TriangleSegment3D(p0, p1, p2, tq[e[0]], tq[e[1]])
		if err != nil {
			return nil, err
		}
		points = append(points, ts...)

		ts, err = k.TriangleSegment3D(q0, q1, q2, tp[e[0]], tp[e[1]])
		if err != nil {
			return nil, err
		}
		points = append(points, ts...)
	}

	if !geom.IsFinite(points) {
		return nil, errNonFinite("triangle-triangle 3d")
	}
	return uniquePoints(points), nil
}
