package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/philipparndt/gomesh/internal/loader"
	"github.com/spf13/cobra"
)

var watchJSON bool

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Reload a model whenever it changes",
	Long: `Watch a local model, or an OpenSCAD script and everything it uses or includes,
and print a summary line (or the frame payload with --json) after every reload.
Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVar(&watchJSON, "json", false, "Print the frame payload as JSON after every reload")
}

func runWatch(cmd *cobra.Command, args []string) {
	src := args[0]
	opts, err := loadOptions(cmd, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !opts.Settings.HotReload {
		fmt.Fprintln(cmd.ErrOrStderr(), "hotReload is disabled in the settings, watching anyway")
	}

	reloader, err := loader.NewReloader(src, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results := make(chan loader.Result)
	done := make(chan error, 1)
	go func() { done <- reloader.Run(ctx, results) }()

	out := cmd.OutOrStdout()
	for {
		select {
		case result := <-results:
			printWatchResult(cmd, result, opts)
		case err := <-done:
			if err != nil && ctx.Err() == nil {
				fmt.Fprintf(os.Stderr, "Error watching %s: %v\n", src, err)
				os.Exit(1)
			}
			fmt.Fprintln(out, "Stopped watching")
			return
		}
	}
}

func printWatchResult(cmd *cobra.Command, result loader.Result, opts loader.Options) {
	out := cmd.OutOrStdout()
	if result.Err != nil && result.Geometry == nil {
		fmt.Fprintf(out, "%s: error: %v\n", result.Source, result.Err)
		return
	}
	if result.Err != nil || !watchJSON {
		g := result.Geometry
		fmt.Fprintf(out, "%s: %d vertices, %d triangles, extent %.6f (%.2fs)\n",
			result.Source, g.VertexCount(), g.TriangleCount(), result.Metrics.Extent, result.Duration.Seconds())
		return
	}
	if err := writeFrame(out, newFramePayload(&result, opts.Settings, false), "json"); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error writing frame: %v\n", err)
	}
}
