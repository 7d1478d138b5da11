package main

import (
	"fmt"

	"github.com/philipparndt/gomesh/pkg/format"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported model formats",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-8s %-8s %s\n", "Ext", "Format", "Kind")
		for _, f := range format.Formats() {
			fmt.Fprintf(out, "%-8s %-8s %s\n", "."+f.Ext, f.Name, f.Kind)
		}
		fmt.Fprintf(out, "%-8s %-8s %s\n", ".scad", "OpenSCAD", "rendered to STL with the openscad binary")
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
