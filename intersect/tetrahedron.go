package intersect

import (
	"github.com/meshkit/overlap/geom"
)

// tetEdges and tetFaces index the six edges and four faces of a
// tetrahedron's vertex tuple.
var (
	tetEdges = [6][2]int{{2, 3}, {1, 3}, {1, 2}, {0, 3}, {0, 2}, {0, 1}}
	tetFaces = [4][3]int{{1, 2, 3}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2}}
)

// TetrahedronSegment3D intersects the closed tetrahedron
// (p0, p1, p2, p3) with the closed segment (q0, q1): two point tests
// for the segment end points and four face-segment tests, deduplicated.
func (k *Kernel) TetrahedronSegment3D(p0, p1, p2, p3, q0, q1 geom.Vec) ([]geom.Vec, error) {
	var points []geom.Vec

	points = append(points, k.TetrahedronPoint3D(p0, p1, p2, p3, q0)...)
	points = append(points, k.TetrahedronPoint3D(p0, p1, p2, p3, q1)...)

	tet := [4]geom.Vec{p0, p1, p2, p3}
	for _, f := range tetFaces {
		ts, err := k.TriangleSegment3D(tet[f[0]], tet[f[1]], tet[f[2]], q0, q1)
		if err != nil {
			return nil, err
		}
		points = append(points, ts...)
	}

	if !geom.IsFinite(points) {
		return nil, errNonFinite("tetrahedron-segment 3d")
	}
	return uniquePoints(points), nil
}

// TetrahedronTriangle3D intersects the closed tetrahedron
// (p0, p1, p2, p3) with the closed triangle (q0, q1, q2): seven vertex
// tests, the four tetrahedron faces against the three triangle edges,
// and the triangle against the six tetrahedron edges, deduplicated.
func (k *Kernel) TetrahedronTriangle3D(p0, p1, p2, p3, q0, q1, q2 geom.Vec) ([]geom.Vec, error) {
	var points []geom.Vec

	tet := [4]geom.Vec{p0, p1, p2, p3}
	tri := [3]geom.Vec{q0, q1, q2}

	for i := 0; i < 3; i++ {
		points = append(points, k.TetrahedronPoint3D(p0, p1, p2, p3, tri[i])...)
	}
	for i := 0; i < 4; i++ {
		points = append(points, k.TrianglePoint3D(q0, q1, q2, tet[i])...)
	}

	for _, f := range tetFaces {
		for _, e := range triEdges {
			ts, err := k.TriangleSegment3D(
				tet[f[0]], tet[f[1]], tet[f[2]], tri[e[0]], tri[e[1]],
			)
			if err != nil {
				return nil, err
			}
			points = append(points, ts...)
		}
	}
	for _, e := range tetEdges {
		ts, err := k.TriangleSegment3D(q0, q1, q2, tet[e[0]], tet[e[1]])
		if err != nil {
			return nil, err
		}
		points = append(points, ts...)
	}

	if !geom.IsFinite(points) {
		return nil, errNonFinite("tetrahedron-triangle 3d")
	}
	return uniquePoints(points), nil
}

// TetrahedronTetrahedron3D intersects the closed tetrahedra
// (p0, p1, p2, p3) and (q0, q1, q2, q3): eight vertex-in-tetrahedron
// tests and the 48 face-edge tests, four faces against six edges each
// way, deduplicated.
func (k *Kernel) TetrahedronTetrahedron3D(
	p0, p1, p2, p3, q0, q1, q2, q3 geom.Vec,
) ([]geom.Vec, error) {
	var points []geom.Vec

	tp := [4]geom.Vec{p0, p1, p2, p3}
	tq := [4]geom.Vec{q0, q1, q2, q3}

	for i := 0; i < 4; i++ {
		points = append(points, k.TetrahedronPoint3D(p0, p1, p2, p3, tq[i])...)
		points = append(points, k.TetrahedronPoint3D(q0, q1, q2, q3, tp[i])...)
	}

	for _, f := range tetFaces {
		for _, e := range tetEdges {
			ts, err := k.TriangleSegment3D(
				tp[f[0]], tp[f[1]], tp[f[2]], tq[e[0]], tq[e[1]],
			)
			if err != nil {
				return nil, err
			}
			points = append(points, ts...)

			ts, err = k.TriangleSegment3D(
				tq[f[0]], tq[f[1]], tq[f[2]], tp[e[0]], tp[e[1]],
			)
			if err != nil {
				return nil, err
			}
			points = append(points, ts...)
		}
	}

	if !geom.IsFinite(points) {
		return nil, errNonFinite("tetrahedron-tetrahedron 3d")
	}
	return uniquePoints(points), nil
}
