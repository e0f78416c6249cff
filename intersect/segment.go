package intersect

import (
	"math"
	"sort"

	"github.com/meshkit/overlap/geom"
)

// SegmentSegment1D intersects the closed intervals (p0, p1) and
// (q0, q1) on the line. The result holds zero, one or two coordinates:
// a touching point, or the two end points of an overlap interval.
func (k *Kernel) SegmentSegment1D(p0, p1, q0, q1 float64) []float64 {
	var points []float64

	// Orientation of each end point against the other interval.
	p0o := k.tools.Orient1D(q0, q1, p0)
	p1o := k.tools.Orient1D(q0, q1, p1)
	q0o := k.tools.Orient1D(p0, p1, q0)
	q1o := k.tools.Orient1D(p0, p1, q1)

	po := p0o * p1o
	qo := q0o * q1o

	// Both end points of either interval strictly on one side: disjoint.
	if po > 0 || qo > 0 {
		return nil
	}

	var p0i, p1i, q0i, q1i bool

	// Coincident end points first, guarded against duplicates.
	addIfEqual1D(&points, p0, q0, &p0i, &q0i)
	addIfEqual1D(&points, p0, q1, &p0i, &q1i)
	addIfEqual1D(&points, p1, q0, &p1i, &q0i)
	addIfEqual1D(&points, p1, q1, &p1i, &q1i)

	// End points inside the other interval.
	if !p0i && p0o == 0 {
		points = append(points, p0)
	}
	if !p1i && p1o == 0 {
		points = append(points, p1)
	}
	if !q0i && q0o == 0 {
		points = append(points, q0)
	}
	if !q1i && q1o == 0 {
		points = append(points, q1)
	}

	return points
}

// SegmentSegment2D intersects the closed segments (p0, p1) and
// (q0, q1) in the plane.
//
// Non-degenerate crossings are solved with the standard 2x2 system,
// parametrized along the shorter of the two segments. When the
// denominator is too small against EpsLarge the segments are nearly
// collinear and the division is not trusted: the four end points are
// sorted along the first segment's major axis and the midpoint of the
// two inner ones is returned as a representative intersection point.
// That midpoint is a deliberate compromise, not an exact answer.
func (k *Kernel) SegmentSegment2D(p0, p1, q0, q1 geom.Vec) ([]geom.Vec, error) {
	var points []geom.Vec

	p0o := k.tools.Orient2D(q0, q1, p0)
	p1o := k.tools.Orient2D(q0, q1, p1)
	q0o := k.tools.Orient2D(p0, p1, q0)
	q1o := k.tools.Orient2D(p0, p1, q1)

	po := p0o * p1o
	qo := q0o * q1o

	// A segment with both end points strictly on one side of the other
	// segment's line cannot cross it.
	if po > 0 || qo > 0 {
		return nil, nil
	}

	// Some end point is collinear with the other segment. Collinear does
	// not imply colliding, so membership is decided by the projected 1D
	// test along the reference segment's major axis.
	if po == 0 || qo == 0 {
		var p0i, p1i, q0i, q1i bool

		addIfEqual(&points, p0, q0, &p0i, &q0i)
		addIfEqual(&points, p0, q1, &p0i, &q1i)
		addIfEqual(&points, p1, q0, &p1i, &q0i)
		addIfEqual(&points, p1, q1, &p1i, &q1i)

		if po == 0 {
			axis := k.tools.MajorAxis2D(q1.Sub(q0))
			P0 := k.tools.ProjectToAxis2D(p0, axis)
			P1 := k.tools.ProjectToAxis2D(p1, axis)
			Q0 := k.tools.ProjectToAxis2D(q0, axis)
			Q1 := k.tools.ProjectToAxis2D(q1, axis)

			if !p0i && p0o == 0 && k.oracle.SegmentPoint1D(Q0, Q1, P0) {
				points = append(points, p0)
			}
			if !p1i && p1o == 0 && k.oracle.SegmentPoint1D(Q0, Q1, P1) {
				points = append(points, p1)
			}
		}

		if qo == 0 {
			axis := k.tools.MajorAxis2D(p1.Sub(p0))
			P0 := k.tools.ProjectToAxis2D(p0, axis)
			P1 := k.tools.ProjectToAxis2D(p1, axis)
			Q0 := k.tools.ProjectToAxis2D(q0, axis)
			Q1 := k.tools.ProjectToAxis2D(q1, axis)

			if !q0i && q0o == 0 && k.oracle.SegmentPoint1D(P0, P1, Q0) {
				points = append(points, q0)
			}
			if !q1i && q1o == 0 && k.oracle.SegmentPoint1D(P0, P1, Q1) {
				points = append(points, q1)
			}
		}

		return points, nil
	}

	// Both products are strictly negative: an interior crossing exists
	// at x = base0 + num/den * (base1 - base0). The relative error of
	// the division shrinks when the shorter segment is the base.
	var num, den float64
	var x geom.Vec
	if p0.SquaredDistance(p1) < q0.SquaredDistance(q1) {
		num = p0o
		den = (p1[0]-p0[0])*(q1[1]-q0[1]) - (p1[1]-p0[1])*(q1[0]-q0[0])
		x = p0.Add(p1.Sub(p0).Scale(num / den))
	} else {
		num = q0o
		den = (q1[0]-q0[0])*(p1[1]-p0[1]) - (q1[1]-q0[1])*(p1[0]-p0[0])
		x = q0.Add(q1.Sub(q0).Scale(num / den))
	}

	// Nearly collinear segments: the division above is unstable, so
	// return the midpoint of the two inner end points instead.
	if math.Abs(den*den) < geom.EpsLarge*math.Abs(num) {
		axis := k.tools.MajorAxis2D(p1.Sub(p0))
		inner := []geom.Vec{p0, p1, q0, q1}
		sort.Slice(inner, func(i, j int) bool {
			return inner[i][axis] < inner[j][axis]
		})
		mid := inner[1].Add(inner[2]).Scale(0.5)
		return []geom.Vec{mid}, nil
	}

	points = append(points, x)
	if !geom.IsFinite(points) {
		return nil, errNonFinite("segment-segment 2d")
	}
	return uniquePoints(points), nil
}

// SegmentSegment3D intersects the closed segments (p0, p1) and
// (q0, q1) in space.
//
// The oracle rejects non-colliding pairs up front, so the remaining
// work is classification: degenerate point-segments, end points lying
// on the other segment, and finally the unique crossing point from the
// cross-product formulation of Shewchuk's lecture notes. A parametric
// fraction within EpsLarge of one is re-derived from the swapped end
// point roles, which conditions the division better near that boundary.
func (k *Kernel) SegmentSegment3D(p0, p1, q0, q1 geom.Vec) ([]geom.Vec, error) {
	if !k.oracle.SegmentSegment3D(p0, p1, q0, q1) {
		return nil, nil
	}

	// A zero-length segment is a point.
	if p0 == p1 {
		return k.SegmentPoint3D(q0, q1, p0), nil
	}
	if q0 == q1 {
		return k.SegmentPoint3D(p0, p1, q0), nil
	}

	var points []geom.Vec
	if k.oracle.SegmentPoint3D(q0, q1, p0) {
		points = append(points, p0)
	}
	if k.oracle.SegmentPoint3D(q0, q1, p1) {
		points = append(points, p1)
	}
	if k.oracle.SegmentPoint3D(p0, p1, q0) {
		points = append(points, q0)
	}
	if k.oracle.SegmentPoint3D(p0, p1, q1) {
		points = append(points, q1)
	}

	if len(points) == 1 {
		return points, nil
	}
	if len(points) > 1 {
		unique := uniquePoints(points)
		if len(unique) > 2 {
			return nil, &InvariantError{
				Routine: "segment-segment 3d",
				Detail:  "more than two distinct end point collisions",
			}
		}
		return unique, nil
	}

	// Interior crossing.
	w := p0.Sub(p1)
	v := q0.Sub(q1)
	u := p1.Sub(q1)
	wv := w.Cross(v)
	vu := v.Cross(u)
	den := wv.SquaredNorm()
	num := wv.Dot(vu)

	// den == 0 means parallel segments; the end point tests above have
	// already answered every parallel case the oracle lets through, so
	// nothing trustworthy remains to add.
	if den != 0 {
		var x geom.Vec
		if math.Abs(num/den-1) < geom.EpsLarge {
			uSwapped := p0.Sub(q1)
			vuSwapped := v.Cross(uSwapped)
			numSwapped := -wv.Dot(vuSwapped)
			x = p0.Add(p1.Sub(p0).Scale(numSwapped / den))
		} else {
			x = p1.Add(p0.Sub(p1).Scale(num / den))
		}
		points = append(points, x)
	}

	if !geom.IsFinite(points) {
		return nil, errNonFinite("segment-segment 3d")
	}
	return uniquePoints(points), nil
}
