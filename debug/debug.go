/*package debug renders simplex pairs and their intersection point
clouds as matplotlib figures. It exists for eyeballing the kernel's
answers on troublesome inputs and plays no part in the computation.
*/
package debug

import (
	plt "github.com/phil-mansfield/pyplot"

	"github.com/meshkit/overlap/geom"
)

// coords splits points into x and y coordinate slices.
func coords(points []geom.Vec) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p[0], p[1]
	}
	return xs, ys
}

// closed appends the first vertex again so the simplex outline is drawn
// as a closed polyline.
func closed(simplex []geom.Vec) (xs, ys []float64) {
	xs, ys = coords(simplex)
	if len(simplex) > 2 {
		xs = append(xs, xs[0])
		ys = append(ys, ys[0])
	}
	return xs, ys
}

// PlotPair writes a figure showing the two simplices p and q projected
// onto the xy plane, with the intersection points drawn on top, and
// saves it to fname. The plot script is executed immediately.
func PlotPair(p, q, points []geom.Vec, fname string) {
	plt.Reset()
	plt.Figure(plt.FigSize(8, 8))

	xs, ys := closed(p)
	plt.Plot(xs, ys, "b", plt.LW(2))
	xs, ys = closed(q)
	plt.Plot(xs, ys, "r", plt.LW(2))
	if len(points) > 0 {
		xs, ys = coords(points)
		plt.Plot(xs, ys, "ok")
	}

	plt.Title("simplex overlap")
	plt.SaveFig(fname)
	plt.Execute()
}
