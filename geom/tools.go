package geom

import (
	"math"
)

// Orient1D returns the orientation of the point x relative to the
// interval spanned by a and b: negative below the interval, positive
// above it, and exactly zero when x lies inside the closed interval.
// Only the sign is meaningful.
func Orient1D(a, b, x float64) float64 {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	if x < lo {
		return x - lo
	}
	if x > hi {
		return x - hi
	}
	return 0
}

// Orient2D returns twice the signed area of the triangle (a, b, c):
// positive when the points appear in counterclockwise order, negative
// when clockwise, and exactly zero when they are collinear. The sign
// encodes which side of the line through a and b the point c lies on;
// the magnitude is meaningful only as a round-off heuristic.
func Orient2D(a, b, c Vec) float64 {
	return (a[0]-c[0])*(b[1]-c[1]) - (a[1]-c[1])*(b[0]-c[0])
}

// Orient3D returns six times the signed volume of the tetrahedron
// (a, b, c, d): positive when d lies below the plane through a, b, c,
// with "below" meaning the side from which the three points appear in
// counterclockwise order, and exactly zero when the four points are
// coplanar.
func Orient3D(a, b, c, d Vec) float64 {
	ad := a.Sub(d)
	bd := b.Sub(d)
	cd := c.Sub(d)
	return ad[0]*(bd[1]*cd[2]-bd[2]*cd[1]) -
		ad[1]*(bd[0]*cd[2]-bd[2]*cd[0]) +
		ad[2]*(bd[0]*cd[1]-bd[1]*cd[0])
}

// MajorAxis2D returns the coordinate axis (0 or 1) along which the
// vector v has its largest extent. Projecting to the major axis keeps
// 1D reductions away from near-zero spans.
func MajorAxis2D(v Vec) int {
	if math.Abs(v[0]) >= math.Abs(v[1]) {
		return 0
	}
	return 1
}

// MajorAxis3D returns the coordinate axis (0, 1 or 2) along which the
// vector v has its largest extent.
func MajorAxis3D(v Vec) int {
	x, y, z := math.Abs(v[0]), math.Abs(v[1]), math.Abs(v[2])
	if x >= y && x >= z {
		return 0
	}
	if y >= z {
		return 1
	}
	return 2
}

// ProjectToAxis2D returns the coordinate of p along the given axis.
func ProjectToAxis2D(p Vec, axis int) float64 {
	return p[axis]
}

// ProjectToPlane3D drops the given axis from p, returning the point
// projected onto the coordinate plane orthogonal to that axis. The two
// surviving coordinates keep their cyclic order, so orientation signs
// are consistent between points projected with the same axis.
func ProjectToPlane3D(p Vec, axis int) Vec {
	switch axis {
	case 0:
		return Vec{p[1], p[2], 0}
	case 1:
		return Vec{p[2], p[0], 0}
	default:
		return Vec{p[0], p[1], 0}
	}
}

// CrossProduct returns the normal (p1 - p0) x (p2 - p0) of the triangle
// (p0, p1, p2).
func CrossProduct(p0, p1, p2 Vec) Vec {
	return p1.Sub(p0).Cross(p2.Sub(p0))
}

// IsDegenerate2D reports whether a simplex embedded in two dimensions
// has zero measure: a repeated segment end point or a collinear
// triangle. Vertex counts outside the 2-3 range are reported as
// degenerate.
func IsDegenerate2D(simplex []Vec) bool {
	switch len(simplex) {
	case 2:
		return simplex[0] == simplex[1]
	case 3:
		return Orient2D(simplex[0], simplex[1], simplex[2]) == 0
	}
	return true
}

// IsDegenerate3D reports whether a simplex embedded in three dimensions
// has zero measure: a repeated segment end point, a collinear triangle,
// or a coplanar tetrahedron. A triangle is collinear only if all three
// of its coordinate-plane projections are.
func IsDegenerate3D(simplex []Vec) bool {
	switch len(simplex) {
	case 2:
		return simplex[0] == simplex[1]
	case 3:
		a, b, c := simplex[0], simplex[1], simplex[2]
		for axis := 0; axis < 3; axis++ {
			pa := ProjectToPlane3D(a, axis)
			pb := ProjectToPlane3D(b, axis)
			pc := ProjectToPlane3D(c, axis)
			if Orient2D(pa, pb, pc) != 0 {
				return false
			}
		}
		return true
	case 4:
		return Orient3D(simplex[0], simplex[1], simplex[2], simplex[3]) == 0
	}
	return true
}
