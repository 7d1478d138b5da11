package main

import (
	"fmt"

	"github.com/philipparndt/gomesh/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file|url]",
	Short: "Display general information about a model",
	Long:  "Show comprehensive information including dimensions, vertex and triangle counts, surface area, edge statistics and the initial camera framing.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	loaded, _ := mustLoad(cmd, args[0])
	result := analysis.AnalyzeGeometry(loaded.Geometry)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Model Information")
	fmt.Fprintln(out, "=================")
	fmt.Fprintf(out, "Source: %s\n", loaded.Source)
	fmt.Fprintf(out, "Format: %s (%s)\n\n", loaded.Format.Name, loaded.Format.Kind)

	fmt.Fprintln(out, "Model Statistics:")
	fmt.Fprintf(out, "  Vertices: %d\n", result.VertexCount)
	fmt.Fprintf(out, "  Triangles: %d\n", result.TriangleCount)
	fmt.Fprintf(out, "  Edges: %d\n", result.EdgeCount)
	fmt.Fprintf(out, "  Normals: %t\n", result.HasNormals)
	fmt.Fprintf(out, "  Colors: %t\n", result.HasColors)
	fmt.Fprintf(out, "  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(out, "  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Fprintln(out, "Dimensions:")
	fmt.Fprintf(out, "  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Fprintf(out, "  Depth (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Fprintf(out, "  Height (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Fprintf(out, "  Diagonal: %.6f units\n", result.BoundingBox.Diagonal())
	fmt.Fprintf(out, "  Volume: %.6f cubic units\n\n", result.Volume)

	if result.EdgeCount > 0 {
		fmt.Fprintln(out, "Edge Lengths:")
		fmt.Fprintf(out, "  Minimum: %.6f units\n", result.MinEdgeLength)
		fmt.Fprintf(out, "  Maximum: %.6f units\n", result.MaxEdgeLength)
		fmt.Fprintf(out, "  Average: %.6f units\n\n", result.AvgEdgeLength)
	}

	if loaded.Err == nil {
		fmt.Fprintln(out, "Scene:")
		fmt.Fprintf(out, "  Extent: %.6f units\n", loaded.Metrics.Extent)
		fmt.Fprintf(out, "  Camera: %s -> %s\n", analysis.FormatVector(loaded.Metrics.Camera.Position), analysis.FormatVector(loaded.Metrics.Camera.Target))
		fmt.Fprintf(out, "  Grid: unit %g, size %g, %d divisions\n", loaded.Metrics.Grid.Unit, loaded.Metrics.Grid.Size, loaded.Metrics.Grid.Divisions)
	}
}
