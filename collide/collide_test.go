package collide

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meshkit/overlap/geom"
)

func TestSegmentPoint1D(t *testing.T) {
	assert.True(t, SegmentPoint1D(0, 1, 0.5), "interior")
	assert.True(t, SegmentPoint1D(0, 1, 0), "left end")
	assert.True(t, SegmentPoint1D(0, 1, 1), "right end")
	assert.True(t, SegmentPoint1D(1, 0, 0.5), "reversed interval")
	assert.False(t, SegmentPoint1D(0, 1, 1.5), "outside right")
	assert.False(t, SegmentPoint1D(0, 1, -0.5), "outside left")
	assert.True(t, SegmentPoint1D(2, 2, 2), "degenerate interval")
}

func TestSegmentPoint2D(t *testing.T) {
	p0, p1 := geom.Vec{0, 0, 0}, geom.Vec{2, 2, 0}
	assert.True(t, SegmentPoint2D(p0, p1, geom.Vec{1, 1, 0}), "interior")
	assert.True(t, SegmentPoint2D(p0, p1, p0), "end point")
	assert.False(t, SegmentPoint2D(p0, p1, geom.Vec{3, 3, 0}), "collinear outside")
	assert.False(t, SegmentPoint2D(p0, p1, geom.Vec{1, 0, 0}), "off line")

	z := geom.Vec{0, 0, 0}
	assert.True(t, SegmentPoint2D(z, z, z), "zero-length, coincident")
	assert.False(t, SegmentPoint2D(z, z, geom.Vec{0, 5, 0}),
		"zero-length, same x only")
}

func TestSegmentPoint3D(t *testing.T) {
	p0, p1 := geom.Vec{0, 0, 0}, geom.Vec{2, 2, 2}
	assert.True(t, SegmentPoint3D(p0, p1, geom.Vec{1, 1, 1}), "interior")
	assert.True(t, SegmentPoint3D(p0, p1, p1), "end point")
	assert.False(t, SegmentPoint3D(p0, p1, geom.Vec{3, 3, 3}), "collinear outside")
	assert.False(t, SegmentPoint3D(p0, p1, geom.Vec{1, 1, 0}), "off line")

	z := geom.Vec{0, 0, 0}
	assert.True(t, SegmentPoint3D(z, z, z), "zero-length, coincident")
	assert.False(t, SegmentPoint3D(z, z, geom.Vec{0, 5, 5}),
		"zero-length, same x only")
}

func TestSegmentSegment1D(t *testing.T) {
	assert.True(t, SegmentSegment1D(0, 1, 0.5, 2), "partial overlap")
	assert.True(t, SegmentSegment1D(0, 1, 1, 2), "touching")
	assert.False(t, SegmentSegment1D(0, 1, 1.5, 2), "disjoint")
	assert.True(t, SegmentSegment1D(1, 0, 2, 0.5), "reversed intervals")
}

func TestSegmentSegment2D(t *testing.T) {
	assert.True(t, SegmentSegment2D(
		geom.Vec{0, 0, 0}, geom.Vec{1, 1, 0},
		geom.Vec{0, 1, 0}, geom.Vec{1, 0, 0},
	), "interior crossing")
	assert.True(t, SegmentSegment2D(
		geom.Vec{0, 0, 0}, geom.Vec{1, 0, 0},
		geom.Vec{1, 0, 0}, geom.Vec{2, 0, 0},
	), "collinear touching")
	assert.True(t, SegmentSegment2D(
		geom.Vec{0, 0, 0}, geom.Vec{2, 0, 0},
		geom.Vec{1, 0, 0}, geom.Vec{3, 0, 0},
	), "collinear overlap")
	assert.True(t, SegmentSegment2D(
		geom.Vec{0, 0, 0}, geom.Vec{2, 0, 0},
		geom.Vec{1, 0, 0}, geom.Vec{1, 1, 0},
	), "T contact")
	assert.False(t, SegmentSegment2D(
		geom.Vec{0, 0, 0}, geom.Vec{1, 0, 0},
		geom.Vec{2, 0, 0}, geom.Vec{3, 0, 0},
	), "collinear disjoint")
	assert.False(t, SegmentSegment2D(
		geom.Vec{0, 0, 0}, geom.Vec{1, 0, 0},
		geom.Vec{0, 1, 0}, geom.Vec{1, 1, 0},
	), "parallel")
}

func TestSegmentSegment3D(t *testing.T) {
	assert.True(t, SegmentSegment3D(
		geom.Vec{0, 0, 0}, geom.Vec{1, 1, 0},
		geom.Vec{0, 1, 0}, geom.Vec{1, 0, 0},
	), "coplanar crossing")
	assert.True(t, SegmentSegment3D(
		geom.Vec{0, 0, 0}, geom.Vec{1, 1, 1},
		geom.Vec{1, 1, 1}, geom.Vec{2, 0, 1},
	), "shared end point")
	assert.False(t, SegmentSegment3D(
		geom.Vec{0, 0, 0}, geom.Vec{1, 0, 0},
		geom.Vec{0, 1, 1}, geom.Vec{1, 1, 1},
	), "parallel offset")
	assert.False(t, SegmentSegment3D(
		geom.Vec{0, 0, 0}, geom.Vec{1, 0, 0},
		geom.Vec{0, 0, 1}, geom.Vec{0, 1, 1},
	), "skew")
}

func TestTrianglePoint2D(t *testing.T) {
	p0, p1, p2 := geom.Vec{0, 0, 0}, geom.Vec{4, 0, 0}, geom.Vec{0, 4, 0}
	assert.True(t, TrianglePoint2D(p0, p1, p2, geom.Vec{1, 1, 0}), "interior")
	assert.True(t, TrianglePoint2D(p0, p1, p2, geom.Vec{2, 0, 0}), "edge")
	assert.True(t, TrianglePoint2D(p0, p1, p2, p0), "vertex")
	assert.False(t, TrianglePoint2D(p0, p1, p2, geom.Vec{3, 3, 0}), "outside")

	// Clockwise vertex order must answer the same.
	assert.True(t, TrianglePoint2D(p0, p2, p1, geom.Vec{1, 1, 0}), "cw interior")
	assert.False(t, TrianglePoint2D(p0, p2, p1, geom.Vec{3, 3, 0}), "cw outside")
}

func TestTrianglePoint3D(t *testing.T) {
	p0, p1, p2 := geom.Vec{0, 0, 1}, geom.Vec{4, 0, 1}, geom.Vec{0, 4, 1}
	assert.True(t, TrianglePoint3D(p0, p1, p2, geom.Vec{1, 1, 1}), "in plane, interior")
	assert.False(t, TrianglePoint3D(p0, p1, p2, geom.Vec{1, 1, 2}), "off plane")
	assert.False(t, TrianglePoint3D(p0, p1, p2, geom.Vec{3, 3, 1}), "in plane, outside")
}

func TestTriangleSegment2D(t *testing.T) {
	p0, p1, p2 := geom.Vec{0, 0, 0}, geom.Vec{4, 0, 0}, geom.Vec{0, 4, 0}
	assert.True(t, TriangleSegment2D(p0, p1, p2,
		geom.Vec{1, 1, 0}, geom.Vec{2, 1, 0}), "fully inside")
	assert.True(t, TriangleSegment2D(p0, p1, p2,
		geom.Vec{-1, 1, 0}, geom.Vec{5, 1, 0}), "crossing through")
	assert.False(t, TriangleSegment2D(p0, p1, p2,
		geom.Vec{5, 5, 0}, geom.Vec{6, 5, 0}), "outside")
}

func TestTriangleSegment3D(t *testing.T) {
	p0, p1, p2 := geom.Vec{0, 0, 0}, geom.Vec{4, 0, 0}, geom.Vec{0, 4, 0}
	assert.True(t, TriangleSegment3D(p0, p1, p2,
		geom.Vec{1, 1, -1}, geom.Vec{1, 1, 1}), "piercing")
	assert.True(t, TriangleSegment3D(p0, p1, p2,
		geom.Vec{1, 1, 0}, geom.Vec{5, 1, 0}), "in plane, end inside")
	assert.True(t, TriangleSegment3D(p0, p1, p2,
		geom.Vec{-1, 1, 0}, geom.Vec{5, 1, 0}), "in plane, crossing")
	assert.True(t, TriangleSegment3D(p0, p1, p2,
		geom.Vec{1, 1, 0}, geom.Vec{1, 1, 1}), "touching from above")
	assert.False(t, TriangleSegment3D(p0, p1, p2,
		geom.Vec{5, 5, -1}, geom.Vec{5, 5, 1}), "piercing outside")
	assert.False(t, TriangleSegment3D(p0, p1, p2,
		geom.Vec{1, 1, 1}, geom.Vec{1, 1, 2}), "above plane")
}

func TestTriangleTriangle2D(t *testing.T) {
	p0, p1, p2 := geom.Vec{0, 0, 0}, geom.Vec{4, 0, 0}, geom.Vec{0, 4, 0}
	assert.True(t, TriangleTriangle2D(p0, p1, p2,
		geom.Vec{1, 1, 0}, geom.Vec{2, 1, 0}, geom.Vec{1, 2, 0}), "contained")
	assert.True(t, TriangleTriangle2D(p0, p1, p2,
		geom.Vec{3, 3, 0}, geom.Vec{-1, 3, 0}, geom.Vec{3, -1, 0}), "crossing")
	assert.False(t, TriangleTriangle2D(p0, p1, p2,
		geom.Vec{5, 5, 0}, geom.Vec{6, 5, 0}, geom.Vec{5, 6, 0}), "disjoint")
}

func TestTetrahedronPoint3D(t *testing.T) {
	p0 := geom.Vec{0, 0, 0}
	p1 := geom.Vec{1, 0, 0}
	p2 := geom.Vec{0, 1, 0}
	p3 := geom.Vec{0, 0, 1}
	assert.True(t, TetrahedronPoint3D(p0, p1, p2, p3,
		geom.Vec{0.25, 0.25, 0.25}), "interior")
	assert.True(t, TetrahedronPoint3D(p0, p1, p2, p3, p3), "vertex")
	assert.True(t, TetrahedronPoint3D(p0, p1, p2, p3,
		geom.Vec{0.25, 0.25, 0}), "face")
	assert.False(t, TetrahedronPoint3D(p0, p1, p2, p3,
		geom.Vec{1, 1, 1}), "outside")

	// Swapping two vertices flips the orientation; the answer must not
	// change.
	assert.True(t, TetrahedronPoint3D(p1, p0, p2, p3,
		geom.Vec{0.25, 0.25, 0.25}), "flipped interior")
	assert.False(t, TetrahedronPoint3D(p1, p0, p2, p3,
		geom.Vec{1, 1, 1}), "flipped outside")
}

func TestTetrahedronSegment3D(t *testing.T) {
	p0 := geom.Vec{0, 0, 0}
	p1 := geom.Vec{1, 0, 0}
	p2 := geom.Vec{0, 1, 0}
	p3 := geom.Vec{0, 0, 1}
	assert.True(t, TetrahedronSegment3D(p0, p1, p2, p3,
		geom.Vec{0.2, 0.2, 0.2}, geom.Vec{0.3, 0.2, 0.2}), "contained")
	assert.True(t, TetrahedronSegment3D(p0, p1, p2, p3,
		geom.Vec{-1, 0.1, 0.1}, geom.Vec{1, 0.1, 0.1}), "crossing")
	assert.False(t, TetrahedronSegment3D(p0, p1, p2, p3,
		geom.Vec{2, 2, 2}, geom.Vec{3, 2, 2}), "disjoint")
}
