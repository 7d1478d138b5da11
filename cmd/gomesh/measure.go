package main

import (
	"fmt"

	"github.com/philipparndt/gomesh/pkg/analysis"
	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	point1X, point1Y, point1Z float64
	point2X, point2Y, point2Z float64
)

var measureCmd = &cobra.Command{
	Use:   "measure [file|url]",
	Short: "Measure distance between two points",
	Long: `Measure the straight-line distance between two 3D points.
Points can be specified directly, or the tool will find the nearest vertices in the model.`,
	Args: cobra.ExactArgs(1),
	Run:  runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().Float64Var(&point1X, "x1", 0.0, "X coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Y, "y1", 0.0, "Y coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Z, "z1", 0.0, "Z coordinate of first point")
	measureCmd.Flags().Float64Var(&point2X, "x2", 0.0, "X coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Y, "y2", 0.0, "Y coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Z, "z2", 0.0, "Z coordinate of second point")

	measureCmd.MarkFlagsRequiredTogether("x1", "y1", "z1", "x2", "y2", "z2")
}

func runMeasure(cmd *cobra.Command, args []string) {
	loaded, _ := mustLoad(cmd, args[0])
	out := cmd.OutOrStdout()

	p1 := geometry.NewVector3(point1X, point1Y, point1Z)
	p2 := geometry.NewVector3(point2X, point2Y, point2Z)

	fmt.Fprintln(out, "Point-to-Point Measurement")
	fmt.Fprintln(out, "==========================")

	idx1, nearest1, dist1 := analysis.FindNearestVertex(loaded.Geometry, p1)
	idx2, nearest2, dist2 := analysis.FindNearestVertex(loaded.Geometry, p2)

	fmt.Fprintf(out, "\nPoint 1: %s\n", analysis.FormatVector(p1))
	if dist1 > 0 {
		fmt.Fprintf(out, "  Nearest vertex #%d: %s (distance: %.6f)\n", idx1, analysis.FormatVector(nearest1), dist1)
	}

	fmt.Fprintf(out, "\nPoint 2: %s\n", analysis.FormatVector(p2))
	if dist2 > 0 {
		fmt.Fprintf(out, "  Nearest vertex #%d: %s (distance: %.6f)\n", idx2, analysis.FormatVector(nearest2), dist2)
	}

	fmt.Fprintf(out, "\nDirect distance: %.6f units\n", p1.Distance(p2))

	if dist1 > 0 || dist2 > 0 {
		fmt.Fprintf(out, "Distance between nearest vertices: %.6f units\n", nearest1.Distance(nearest2))
	}
}
