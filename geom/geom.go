/*package geom contains the low-level geometric primitives shared by the
overlap kernel: points, tolerance constants, and vector arithmetic.

Points and vectors share a single value type, Vec. Simplices embedded in
one or two dimensions leave the trailing components at zero, so exact
component-wise equality between a 2D point and its 3D embedding holds.
*/
package geom

import (
	"math"
)

const (
	// Eps is the tight tolerance scale. Computed orientation values are
	// classified against exact zero; Eps is only used where a residual
	// must be compared against the round-off floor.
	Eps = 3.0e-16

	// EpsLarge is the coarse tolerance scale. It is used for exactly one
	// purpose: deciding that a division denominator is too small to
	// trust, which routes the computation to a degenerate fallback.
	EpsLarge = 1.0e-14
)

// Vec is a point or direction with up to three components.
type Vec [3]float64

func (a Vec) Add(b Vec) Vec {
	return Vec{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec) Sub(b Vec) Vec {
	return Vec{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (a Vec) Scale(s float64) Vec {
	return Vec{s * a[0], s * a[1], s * a[2]}
}

func (a Vec) Dot(b Vec) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec) Cross(b Vec) Vec {
	return Vec{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (a Vec) SquaredNorm() float64 {
	return a.Dot(a)
}

func (a Vec) SquaredDistance(b Vec) float64 {
	return a.Sub(b).SquaredNorm()
}

// IsFinite reports whether every component of every point is a finite
// number. It is used as a defensive check on computed results: a NaN or
// infinity here means an upstream division was performed when it should
// have been routed to a fallback branch.
func IsFinite(points []Vec) bool {
	for _, p := range points {
		for i := 0; i < 3; i++ {
			if math.IsNaN(p[i]) || math.IsInf(p[i], 0) {
				return false
			}
		}
	}
	return true
}
