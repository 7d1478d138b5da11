package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gomesh/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gomesh",
	Short: "Inspect OFF, STL and XYZ models and compute their scene framing",
	Long: `gomesh loads 3D meshes and point clouds (OFF/NOFF, ASCII and binary STL, XYZ,
and OpenSCAD scripts rendered to STL) from local files or http(s) URLs.
It prints model statistics and the scene-initialization payload a viewer needs:
bounding box, camera pose, grid scale and viewer settings.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
