/*overlap computes the pairwise intersection point-sets between two
files of mesh cells. Each mode is configured through a gcfg file; run
with -ExampleConfig to print a commented template.
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"

	"gopkg.in/gcfg.v1"

	"github.com/meshkit/overlap/debug"
	"github.com/meshkit/overlap/geom"
	"github.com/meshkit/overlap/intersect"
)

func main() {
	var (
		overlap       string
		exampleConfig bool
	)

	flag.StringVar(
		&overlap, "Overlap", "",
		"Configuration file for [Overlap] mode.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.",
	)

	flag.Parse()

	if exampleConfig {
		fmt.Println(ExampleOverlapFile)
		return
	}
	if overlap == "" {
		log.Fatalf("Usage: $ %s -Overlap config.txt", os.Args[0])
	}

	wrap := DefaultOverlapWrapper()
	err := gcfg.ReadFileInto(wrap, overlap)
	if err != nil {
		log.Fatal(err.Error())
	}
	con := &wrap.Overlap

	if !con.ValidInput() {
		log.Fatal("Invalid/non-existent 'FirstInput' or 'SecondInput' value.")
	} else if !con.ValidVertices() {
		log.Fatal("Invalid/non-existent 'FirstVertices' or 'SecondVertices' value.")
	} else if !con.ValidGeometricDimension() {
		log.Fatal("Invalid 'GeometricDimension' value.")
	}

	overlapMain(con)
}

func overlapMain(con *OverlapConfig) {
	gdim := con.GeometricDimension

	first, err := readCells(con.FirstInput, con.FirstVertices, gdim)
	if err != nil {
		log.Fatal(err.Error())
	}
	second, err := readCells(con.SecondInput, con.SecondVertices, gdim)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf(
		"Read %d + %d cells, computing %d intersections.",
		len(first), len(second), len(first)*len(second),
	)

	out := os.Stdout
	if con.Output != "" {
		out, err = os.Create(con.Output)
		if err != nil {
			log.Fatal(err.Error())
		}
		defer out.Close()
	}

	hits := 0
	for i, p := range first {
		for j, q := range second {
			points, err := intersect.Intersection(p, q, gdim)
			if err != nil {
				log.Fatal(err.Error())
			}
			if len(points) == 0 {
				continue
			}
			hits++

			fmt.Fprintf(out, "%d %d", i, j)
			for _, x := range points {
				for d := 0; d < gdim; d++ {
					fmt.Fprintf(out, " %g", x[d])
				}
			}
			fmt.Fprintln(out)

			if con.PlotDir != "" && gdim == 2 {
				plotPair(con.PlotDir, i, j, p, q, points)
			}
		}
	}
	log.Printf("Done: %d intersecting pairs.", hits)
}

func plotPair(dir string, i, j int, p, q, points []geom.Vec) {
	fname := path.Join(dir, fmt.Sprintf("overlap_%d_%d.png", i, j))
	debug.PlotPair(p, q, points, fname)
}
