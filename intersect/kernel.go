/*package intersect computes the exact intersection point-set between
two simplices (point, segment, triangle, tetrahedron) embedded in one,
two or three dimensions.

The returned points are the vertices of the convex overlap region, as
an unordered point cloud; no hull or tessellation is built here. An
empty result always means "no intersection" and is never an error.
Points in a non-empty result lie in both input simplices up to
floating-point evaluation error, and no two returned points are exactly
equal.

Higher-order routines decompose their inputs into vertex, edge and face
sub-simplices, intersect every cross pair with the lower-order routines
and deduplicate the collected points once at the end. The segment
routines carry the numerically delicate branches: near-parallel and
near-collinear configurations are detected through explicit tolerance
thresholds and answered with a representative point rather than an
unstable division.
*/
package intersect

import (
	"github.com/meshkit/overlap/collide"
	"github.com/meshkit/overlap/geom"
)

// Oracle is the set of boolean collision predicates consumed by the
// kernel. Predicates must be pure and deterministic; they are used for
// early rejection and for selecting degenerate branches, never for
// constructing coordinates.
type Oracle interface {
	SegmentPoint1D(p0, p1, q0 float64) bool
	SegmentPoint2D(p0, p1, q0 geom.Vec) bool
	SegmentPoint3D(p0, p1, q0 geom.Vec) bool
	SegmentSegment3D(p0, p1, q0, q1 geom.Vec) bool
	TrianglePoint2D(p0, p1, p2, q0 geom.Vec) bool
	TrianglePoint3D(p0, p1, p2, q0 geom.Vec) bool
	TetrahedronPoint3D(p0, p1, p2, p3, q0 geom.Vec) bool
}

// Tools is the set of geometry utilities consumed by the kernel:
// orientation signs, major-axis selection and projections. The sign
// conventions are those documented in package geom.
type Tools interface {
	Orient1D(a, b, x float64) float64
	Orient2D(a, b, c geom.Vec) float64
	Orient3D(a, b, c, d geom.Vec) float64
	MajorAxis2D(v geom.Vec) int
	MajorAxis3D(v geom.Vec) int
	ProjectToAxis2D(p geom.Vec, axis int) float64
	ProjectToPlane3D(p geom.Vec, axis int) geom.Vec
	CrossProduct(p0, p1, p2 geom.Vec) geom.Vec
}

type stdTools struct{}

func (stdTools) Orient1D(a, b, x float64) float64      { return geom.Orient1D(a, b, x) }
func (stdTools) Orient2D(a, b, c geom.Vec) float64     { return geom.Orient2D(a, b, c) }
func (stdTools) Orient3D(a, b, c, d geom.Vec) float64  { return geom.Orient3D(a, b, c, d) }
func (stdTools) MajorAxis2D(v geom.Vec) int            { return geom.MajorAxis2D(v) }
func (stdTools) MajorAxis3D(v geom.Vec) int            { return geom.MajorAxis3D(v) }
func (stdTools) ProjectToAxis2D(p geom.Vec, axis int) float64 {
	return geom.ProjectToAxis2D(p, axis)
}
func (stdTools) ProjectToPlane3D(p geom.Vec, axis int) geom.Vec {
	return geom.ProjectToPlane3D(p, axis)
}
func (stdTools) CrossProduct(p0, p1, p2 geom.Vec) geom.Vec {
	return geom.CrossProduct(p0, p1, p2)
}

// DefaultTools evaluates the Tools interface directly against the
// package geom implementations.
var DefaultTools Tools = stdTools{}

// Kernel computes simplex intersections against an injected oracle and
// tool set. Kernels hold no mutable state: a single Kernel may be used
// from any number of goroutines at once.
type Kernel struct {
	oracle Oracle
	tools  Tools
}

// NewKernel returns a kernel backed by the given oracle and tools.
// Either may be nil, in which case the collide predicates and the
// package geom tools are used.
func NewKernel(oracle Oracle, tools Tools) *Kernel {
	if oracle == nil {
		oracle = collide.Predicates{}
	}
	if tools == nil {
		tools = DefaultTools
	}
	return &Kernel{oracle: oracle, tools: tools}
}

var std = NewKernel(nil, nil)

// Intersection computes the intersection of two simplices with the
// default oracle and tools. See Kernel.Intersection.
func Intersection(p, q []geom.Vec, gdim int) ([]geom.Vec, error) {
	return std.Intersection(p, q, gdim)
}

type routine func(k *Kernel, p, q []geom.Vec) ([]geom.Vec, error)

// routines maps (topological dimension of p, topological dimension of
// q, geometric dimension) to the specialized implementation.
// Asymmetric pairs are normalized here so each unordered pair has a
// single implementation.
var routines = map[[3]int]routine{
	{1, 1, 1}: func(k *Kernel, p, q []geom.Vec) ([]geom.Vec, error) {
		xs := k.SegmentSegment1D(p[0][0], p[1][0], q[0][0], q[1][0])
		points := make([]geom.Vec, len(xs))
		for i, x := range xs {
			points[i] = geom.Vec{x, 0, 0}
		}
		return points, nil
	},
	{1, 1, 2}: func(k *Kernel, p, q []geom.Vec) ([]geom.Vec, error) {
		return k.SegmentSegment2D(p[0], p[1], q[0], q[1])
	},
	{1, 1, 3}: func(k *Kernel, p, q []geom.Vec) ([]geom.Vec, error) {
		return k.SegmentSegment3D(p[0], p[1], q[0], q[1])
	},
	{1, 2, 2}: func(k *Kernel, p, q []geom.Vec) ([]geom.Vec, error) {
		return k.TriangleSegment2D(q[0], q[1], q[2], p[0], p[1])
	},
	{2, 1, 2}: func(k *Kernel, p, q []geom.Vec) ([]geom.Vec, error) {
		return k.TriangleSegment2D(p[0], p[1], p[2], q[0], q[1])
	},
	{1, 2, 3}: func(k *Kernel, p, q []geom.Vec) ([]geom.Vec, error) {
		return k.TriangleSegment3D(q[0], q[1], q[2], p[0], p[1])
	},
	{2, 1, 3}: func(k *Kernel, p, q []geom.Vec) ([]geom.Vec, error) {
		return k.TriangleSegment3D(p[0], p[1], p[2], q[0], q[1])
	},
	{2, 2, 2}: func(k *Kernel, p, q []geom.Vec) ([]geom.Vec, error) {
		return k.TriangleTriangle2D(p[0], p[1], p[2], q[0], q[1], q[2])
	},
	{2, 2, 3}: func(k *Kernel, p, q []geom.Vec) ([]geom.Vec, error) {
		return k.TriangleTriangle3D(p[0], p[1], p[2], q[0], q[1], q[2])
	},
	{2, 3, 3}: func(k *Kernel, p, q []geom.Vec) ([]geom.Vec, error) {
		return k.TetrahedronTriangle3D(q[0], q[1], q[2], q[3], p[0], p[1], p[2])
	},
	{3, 2, 3}: func(k *Kernel, p, q []geom.Vec) ([]geom.Vec, error) {
		return k.TetrahedronTriangle3D(p[0], p[1], p[2], p[3], q[0], q[1], q[2])
	},
	{3, 3, 3}: func(k *Kernel, p, q []geom.Vec) ([]geom.Vec, error) {
		return k.TetrahedronTetrahedron3D(
			p[0], p[1], p[2], p[3], q[0], q[1], q[2], q[3],
		)
	},
}

// Intersection computes the intersection point-set of the simplices p
// and q, given as their ordered vertex tuples, embedded in a space of
// dimension gdim. The caller guarantees gdim is at least the larger
// topological dimension of the two inputs and that all coordinates are
// finite.
//
// An empty result means the simplices do not intersect. A combination
// of topological and geometric dimensions with no specialized routine
// fails with an UnsupportedDimensionError; this is a contract
// violation, not a geometric outcome.
func (k *Kernel) Intersection(p, q []geom.Vec, gdim int) ([]geom.Vec, error) {
	d0, d1 := len(p)-1, len(q)-1
	r, ok := routines[[3]int{d0, d1, gdim}]
	if !ok {
		return nil, &UnsupportedDimensionError{D0: d0, D1: d1, GeomDim: gdim}
	}
	return r(k, p, q)
}
