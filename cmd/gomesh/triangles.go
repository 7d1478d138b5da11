package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gomesh/pkg/analysis"
	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/spf13/cobra"
)

var (
	triCount    int
	triLargest  bool
	triSmallest bool
)

type triangleInfo struct {
	Index     int
	Area      float64
	Perimeter float64
	Vertices  string
}

var trianglesCmd = &cobra.Command{
	Use:   "triangles [file|url]",
	Short: "Analyze the triangles of a mesh",
	Long:  "Display information about triangles including area, perimeter, and vertex positions.",
	Args:  cobra.ExactArgs(1),
	Run:   runTriangles,
}

func init() {
	rootCmd.AddCommand(trianglesCmd)

	trianglesCmd.Flags().IntVarP(&triCount, "count", "n", 10, "Number of triangles to display")
	trianglesCmd.Flags().BoolVarP(&triLargest, "largest", "l", false, "Show largest triangles by area")
	trianglesCmd.Flags().BoolVarP(&triSmallest, "smallest", "s", false, "Show smallest triangles by area")
	trianglesCmd.MarkFlagsMutuallyExclusive("largest", "smallest")
}

func collectTriangles(g *mesh.Geometry) []triangleInfo {
	triangles := make([]triangleInfo, 0, g.TriangleCount())
	for i, tri := range g.Triangles() {
		triangles = append(triangles, triangleInfo{
			Index:     i,
			Area:      tri.Area(),
			Perimeter: tri.Perimeter(),
			Vertices: fmt.Sprintf("%s, %s, %s",
				analysis.FormatVector(tri.V1),
				analysis.FormatVector(tri.V2),
				analysis.FormatVector(tri.V3)),
		})
	}
	return triangles
}

func runTriangles(cmd *cobra.Command, args []string) {
	loaded, _ := mustLoad(cmd, args[0])
	out := cmd.OutOrStdout()

	triangles := collectTriangles(loaded.Geometry)
	if len(triangles) == 0 {
		fmt.Fprintf(out, "%s has no triangles (%s)\n", loaded.Source, loaded.Format.Kind)
		return
	}

	totalArea := 0.0
	minArea := math.MaxFloat64
	maxArea := 0.0
	for _, tri := range triangles {
		totalArea += tri.Area
		minArea = math.Min(minArea, tri.Area)
		maxArea = math.Max(maxArea, tri.Area)
	}

	var title string
	switch {
	case triLargest:
		sort.SliceStable(triangles, func(i, j int) bool { return triangles[i].Area > triangles[j].Area })
		title = fmt.Sprintf("Top %d Largest Triangles", min(triCount, len(triangles)))
	case triSmallest:
		sort.SliceStable(triangles, func(i, j int) bool { return triangles[i].Area < triangles[j].Area })
		title = fmt.Sprintf("Top %d Smallest Triangles", min(triCount, len(triangles)))
	default:
		title = fmt.Sprintf("First %d Triangles", min(triCount, len(triangles)))
	}

	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Total triangles: %d\n", len(triangles))
	fmt.Fprintf(out, "Total surface area: %.6f square units\n", totalArea)
	fmt.Fprintf(out, "Min triangle area: %.6f square units\n", minArea)
	fmt.Fprintf(out, "Max triangle area: %.6f square units\n", maxArea)
	fmt.Fprintf(out, "Avg triangle area: %.6f square units\n\n", totalArea/float64(len(triangles)))

	for i := 0; i < triCount && i < len(triangles); i++ {
		tri := triangles[i]
		fmt.Fprintf(out, "Triangle #%d:\n", tri.Index)
		fmt.Fprintf(out, "  Area: %.6f square units\n", tri.Area)
		fmt.Fprintf(out, "  Perimeter: %.6f units\n", tri.Perimeter)
		fmt.Fprintf(out, "  Vertices: %s\n\n", tri.Vertices)
	}
}
