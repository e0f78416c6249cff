package main

import (
	"github.com/meshkit/overlap/geom"

	"github.com/phil-mansfield/table"
)

const ExampleOverlapFile = `[Overlap]

#######################
# Required Parameters #
#######################

# Table files holding the vertex coordinates of the two cell sets, one
# vertex per row, one column per coordinate. Comment lines start with #.
FirstInput  = path/to/first.txt
SecondInput = path/to/second.txt

# Number of vertices per cell in each file: 2 for segments, 3 for
# triangles, 4 for tetrahedra. Rows are grouped in file order.
FirstVertices  = 3
SecondVertices = 3

# Dimension of the embedding space: 1, 2, or 3. Only the first
# GeometricDimension columns of each table are read.
GeometricDimension = 2

#######################
# Optional Parameters #
#######################

# File the intersection point sets are written to. Defaults to stdout.
# Output = path/to/out.txt

# Directory where figures of intersecting pairs are saved, one per
# pair. Only available when GeometricDimension = 2. Requires python
# with matplotlib.
# PlotDir = path/to/plots`

type OverlapConfig struct {
	FirstInput, SecondInput       string
	FirstVertices, SecondVertices int
	GeometricDimension            int
	Output                        string
	PlotDir                       string
}

type OverlapWrapper struct {
	Overlap OverlapConfig
}

func DefaultOverlapWrapper() *OverlapWrapper {
	return &OverlapWrapper{}
}

func (con *OverlapConfig) ValidInput() bool {
	return con.FirstInput != "" && con.SecondInput != ""
}

func (con *OverlapConfig) ValidVertices() bool {
	return con.FirstVertices >= 1 && con.FirstVertices <= 4 &&
		con.SecondVertices >= 1 && con.SecondVertices <= 4
}

func (con *OverlapConfig) ValidGeometricDimension() bool {
	if con.GeometricDimension < 1 || con.GeometricDimension > 3 {
		return false
	}
	return con.GeometricDimension >= con.FirstVertices-1 &&
		con.GeometricDimension >= con.SecondVertices-1
}

// readCells reads a vertex table and groups its rows into cells of
// verts vertices each. Coordinates past gdim are left zero.
func readCells(fname string, verts, gdim int) ([][]geom.Vec, error) {
	colIdxs := make([]int, gdim)
	for i := range colIdxs {
		colIdxs[i] = i
	}
	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	n := len(cols[0])
	points := make([]geom.Vec, n)
	for d := 0; d < gdim; d++ {
		for i, x := range cols[d] {
			points[i][d] = x
		}
	}

	cells := make([][]geom.Vec, 0, n/verts)
	for i := 0; i+verts <= n; i += verts {
		cells = append(cells, points[i:i+verts])
	}
	return cells, nil
}
