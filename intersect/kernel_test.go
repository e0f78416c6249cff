package intersect

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meshkit/overlap/geom"
)

func TestIntersectionDispatch(t *testing.T) {
	seg1D := [][]geom.Vec{
		{{0, 0, 0}, {2, 0, 0}},
		{{1, 0, 0}, {3, 0, 0}},
	}
	points, err := Intersection(seg1D[0], seg1D[1], 1)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []geom.Vec{{1, 0, 0}, {2, 0, 0}}, points,
		"1D intervals wrap their scalar overlap end points")

	tri := []geom.Vec{{0, 0, 0}, {4, 0, 0}, {0, 4, 0}}
	seg := []geom.Vec{{-1, 1, 0}, {5, 1, 0}}

	want := []geom.Vec{{0, 1, 0}, {3, 1, 0}}
	points, err = Intersection(tri, seg, 2)
	assert.NoError(t, err)
	assert.ElementsMatch(t, want, points)

	// Asymmetric pairs are normalized to the same routine.
	swapped, err := Intersection(seg, tri, 2)
	assert.NoError(t, err)
	assert.ElementsMatch(t, points, swapped)
}

func TestIntersectionUnsupportedDimension(t *testing.T) {
	cases := []struct {
		name   string
		p, q   []geom.Vec
		gdim   int
		d0, d1 int
	}{
		{
			"point-point", []geom.Vec{{0, 0, 0}}, []geom.Vec{{0, 0, 0}}, 2,
			0, 0,
		},
		{
			"tetrahedron-segment",
			[]geom.Vec{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
			[]geom.Vec{{0, 0, 0}, {1, 1, 1}}, 3,
			3, 1,
		},
		{
			"segment-segment in 0d",
			[]geom.Vec{{0, 0, 0}, {1, 0, 0}},
			[]geom.Vec{{0, 0, 0}, {1, 0, 0}}, 0,
			1, 1,
		},
	}

	for _, c := range cases {
		points, err := Intersection(c.p, c.q, c.gdim)
		assert.Nil(t, points, c.name)

		var dimErr *UnsupportedDimensionError
		if !errors.As(err, &dimErr) {
			t.Errorf("%s: got %v, want UnsupportedDimensionError", c.name, err)
			continue
		}
		assert.Equal(t, c.d0, dimErr.D0, c.name)
		assert.Equal(t, c.d1, dimErr.D1, c.name)
		assert.Equal(t, c.gdim, dimErr.GeomDim, c.name)
		assert.Contains(t, dimErr.Error(), "not implemented", c.name)
	}
}

// rejectAll answers no to every predicate.
type rejectAll struct{}

func (rejectAll) SegmentPoint1D(p0, p1, q0 float64) bool              { return false }
func (rejectAll) SegmentPoint2D(p0, p1, q0 geom.Vec) bool             { return false }
func (rejectAll) SegmentPoint3D(p0, p1, q0 geom.Vec) bool             { return false }
func (rejectAll) SegmentSegment3D(p0, p1, q0, q1 geom.Vec) bool       { return false }
func (rejectAll) TrianglePoint2D(p0, p1, p2, q0 geom.Vec) bool        { return false }
func (rejectAll) TrianglePoint3D(p0, p1, p2, q0 geom.Vec) bool        { return false }
func (rejectAll) TetrahedronPoint3D(p0, p1, p2, p3, q0 geom.Vec) bool { return false }

// acceptAll answers yes to every predicate.
type acceptAll struct{}

func (acceptAll) SegmentPoint1D(p0, p1, q0 float64) bool              { return true }
func (acceptAll) SegmentPoint2D(p0, p1, q0 geom.Vec) bool             { return true }
func (acceptAll) SegmentPoint3D(p0, p1, q0 geom.Vec) bool             { return true }
func (acceptAll) SegmentSegment3D(p0, p1, q0, q1 geom.Vec) bool       { return true }
func (acceptAll) TrianglePoint2D(p0, p1, p2, q0 geom.Vec) bool        { return true }
func (acceptAll) TrianglePoint3D(p0, p1, p2, q0 geom.Vec) bool        { return true }
func (acceptAll) TetrahedronPoint3D(p0, p1, p2, p3, q0 geom.Vec) bool { return true }

func TestKernelOracleInjection(t *testing.T) {
	k := NewKernel(rejectAll{}, nil)

	// With every predicate answering no, a segment strictly inside a
	// triangle produces nothing: all inclusion decisions flow through
	// the injected oracle.
	points, err := k.TriangleSegment2D(
		geom.Vec{0, 0, 0}, geom.Vec{4, 0, 0}, geom.Vec{0, 4, 0},
		geom.Vec{1, 1, 0}, geom.Vec{1.5, 1, 0},
	)
	assert.NoError(t, err)
	assert.Empty(t, points)

	// The 3D segment routine early-rejects on the oracle even for a
	// genuine crossing.
	points, err = k.SegmentSegment3D(
		geom.Vec{0, 0, 0}, geom.Vec{2, 2, 0},
		geom.Vec{0, 2, 0}, geom.Vec{2, 0, 0},
	)
	assert.NoError(t, err)
	assert.Empty(t, points)
}
