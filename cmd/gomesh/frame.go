package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/gomesh/internal/config"
	"github.com/philipparndt/gomesh/internal/loader"
	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/viewer"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	frameFormat  string
	frameBuffers bool
)

// framePayload is everything a viewer needs to initialize a scene
type framePayload struct {
	Source     string               `json:"source" yaml:"source"`
	Format     string               `json:"format" yaml:"format"`
	Kind       string               `json:"kind" yaml:"kind"`
	Settings   config.Settings      `json:"settings" yaml:"settings"`
	Vertices   int                  `json:"vertices" yaml:"vertices"`
	Triangles  int                  `json:"triangles" yaml:"triangles"`
	HasIndex   bool                 `json:"hasIndex" yaml:"hasIndex"`
	HasNormals bool                 `json:"hasNormals" yaml:"hasNormals"`
	HasColors  bool                 `json:"hasColors" yaml:"hasColors"`
	BBox       geometry.BoundingBox `json:"bbox" yaml:"bbox"`
	Center     geometry.Vector3     `json:"center" yaml:"center"`
	Extent     float64              `json:"extent" yaml:"extent"`
	Camera     viewer.CameraPose    `json:"camera" yaml:"camera"`
	Grid       viewer.GridScale     `json:"grid" yaml:"grid"`
	Buffers    *frameBuffersPayload `json:"buffers,omitempty" yaml:"buffers,omitempty"`
}

// frameBuffersPayload holds flattened vertex attributes, three floats per vertex
type frameBuffersPayload struct {
	Positions []float64 `json:"positions" yaml:"positions,flow"`
	Normals   []float64 `json:"normals,omitempty" yaml:"normals,omitempty,flow"`
	Colors    []float64 `json:"colors,omitempty" yaml:"colors,omitempty,flow"`
	Indices   []int     `json:"indices,omitempty" yaml:"indices,omitempty,flow"`
}

var frameCmd = &cobra.Command{
	Use:   "frame [file|url]",
	Short: "Print the scene-initialization payload of a model",
	Long: `Load a model and print what a viewer needs to show it: the viewer settings,
geometry counts, bounding box, camera pose and grid scale.
Use --buffers to embed the assembled vertex buffers.`,
	Args: cobra.ExactArgs(1),
	Run:  runFrame,
}

func init() {
	rootCmd.AddCommand(frameCmd)

	frameCmd.Flags().StringVarP(&frameFormat, "format", "f", "json", "Output format (json or yaml)")
	frameCmd.Flags().BoolVar(&frameBuffers, "buffers", false, "Include vertex buffers in the payload")
}

func runFrame(cmd *cobra.Command, args []string) {
	loaded, opts := mustLoad(cmd, args[0])
	if loaded.Err != nil {
		fmt.Fprintf(os.Stderr, "Error framing model: %v\n", loaded.Err)
		os.Exit(1)
	}

	payload := newFramePayload(loaded, opts.Settings, frameBuffers)
	if err := writeFrame(cmd.OutOrStdout(), payload, frameFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing frame: %v\n", err)
		os.Exit(1)
	}
}

func newFramePayload(result *loader.Result, settings config.Settings, withBuffers bool) framePayload {
	g := result.Geometry
	payload := framePayload{
		Source:     result.Source,
		Format:     result.Format.Name,
		Kind:       result.Format.Kind.String(),
		Settings:   settings,
		Vertices:   g.VertexCount(),
		Triangles:  g.TriangleCount(),
		HasIndex:   g.HasIndex,
		HasNormals: g.HasNormals(),
		HasColors:  g.HasColors(),
		BBox:       result.Metrics.BoundingBox,
		Center:     result.Metrics.Center,
		Extent:     result.Metrics.Extent,
		Camera:     result.Metrics.Camera,
		Grid:       result.Metrics.Grid,
	}

	if withBuffers {
		buffers := &frameBuffersPayload{
			Positions: flatten(g.Positions),
			Normals:   flatten(g.Normals),
			Indices:   g.Indices,
		}
		if g.HasColors() {
			buffers.Colors = make([]float64, 0, 3*len(g.Colors))
			for _, c := range g.Colors {
				buffers.Colors = append(buffers.Colors, c.R, c.G, c.B)
			}
		}
		payload.Buffers = buffers
	}
	return payload
}

func flatten(vectors []geometry.Vector3) []float64 {
	if vectors == nil {
		return nil
	}
	flat := make([]float64, 0, 3*len(vectors))
	for _, v := range vectors {
		flat = append(flat, v.X, v.Y, v.Z)
	}
	return flat
}

func writeFrame(w io.Writer, payload framePayload, outputFormat string) error {
	switch outputFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(payload); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (expected json or yaml)", outputFormat)
	}
}
