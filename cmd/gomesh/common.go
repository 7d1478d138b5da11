package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/philipparndt/gomesh/internal/config"
	"github.com/philipparndt/gomesh/internal/loader"
	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	configPath string
	timeout    time.Duration
	debounce   time.Duration
	translate  []float64
	scale      float64
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Settings file (.yaml, .yml, .toml or .json); defaults to .gomesh.* next to the model")
	flags.DurationVar(&timeout, "timeout", 0, "Timeout for remote fetches and OpenSCAD renders (overrides requestTimeout)")
	flags.DurationVar(&debounce, "debounce", 0, "Quiet period before a reload (overrides reloadDebounce)")
	flags.Float64SliceVar(&translate, "translate", nil, "Translate the model by x,y,z before measuring")
	flags.Float64Var(&scale, "scale", 1.0, "Scale the model uniformly before measuring")
}

// loadSettings resolves the settings file and applies flag overrides
func loadSettings(src string) (config.Settings, error) {
	path := configPath
	if path == "" && !loader.IsRemote(src) {
		path = config.Discover(filepath.Dir(src))
	}

	settings := config.Default()
	if path != "" {
		var err error
		if settings, err = config.Load(path); err != nil {
			return settings, err
		}
	}

	if timeout > 0 {
		settings.RequestTimeout = int(timeout.Round(time.Second) / time.Second)
		if settings.RequestTimeout == 0 {
			settings.RequestTimeout = 1
		}
	}
	if debounce > 0 {
		settings.ReloadDebounce = int(debounce / time.Millisecond)
	}
	return settings, nil
}

// modelTransform builds the transform given by --scale and --translate
func modelTransform() (geometry.Transform, error) {
	t := geometry.Identity()
	if scale != 1.0 {
		if scale <= 0 {
			return t, fmt.Errorf("--scale must be positive, got %v", scale)
		}
		t = geometry.Scaling(geometry.NewVector3(scale, scale, scale))
	}
	if len(translate) > 0 {
		if len(translate) != 3 {
			return t, fmt.Errorf("--translate needs x,y,z, got %d values", len(translate))
		}
		t = t.Then(geometry.Translation(geometry.NewVector3(translate[0], translate[1], translate[2])))
	}
	return t, nil
}

func loadOptions(cmd *cobra.Command, src string) (loader.Options, error) {
	settings, err := loadSettings(src)
	if err != nil {
		return loader.Options{}, fmt.Errorf("failed to load settings: %w", err)
	}
	transform, err := modelTransform()
	if err != nil {
		return loader.Options{}, err
	}
	return loader.Options{
		Settings:  settings,
		Transform: transform,
		Log:       cmd.ErrOrStderr(),
	}, nil
}

// mustLoad loads src or exits with the error.
// A metrics failure on a usable geometry is reported as a warning.
func mustLoad(cmd *cobra.Command, src string) (*loader.Result, loader.Options) {
	opts, err := loadOptions(cmd, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := loader.Load(context.Background(), src, opts)
	if err != nil && (result == nil || result.Geometry == nil) {
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	return result, opts
}
