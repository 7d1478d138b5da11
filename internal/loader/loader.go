// Package loader turns a source (local file, http(s) URL or OpenSCAD script)
// into an assembled geometry with its scene metrics.
package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/philipparndt/gomesh/internal/config"
	"github.com/philipparndt/gomesh/pkg/analysis"
	"github.com/philipparndt/gomesh/pkg/format"
	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/philipparndt/gomesh/pkg/openscad"
)

// Options control a single load
type Options struct {
	Settings config.Settings
	// Transform is applied to the loaded part before assembly
	Transform geometry.Transform
	// Log receives progress messages; nil discards them
	Log        io.Writer
	HTTPClient *http.Client
}

// DefaultOptions returns options with the default settings
func DefaultOptions() Options {
	return Options{Settings: config.Default()}
}

func (o Options) log() io.Writer {
	if o.Log == nil {
		return io.Discard
	}
	return o.Log
}

func (o Options) client() *http.Client {
	if o.HTTPClient == nil {
		return http.DefaultClient
	}
	return o.HTTPClient
}

// Result is the outcome of one load
type Result struct {
	Source   string
	Format   format.Format
	Geometry *mesh.Geometry
	Metrics  analysis.Metrics
	Duration time.Duration
	Err      error
}

// IsRemote reports whether src is fetched over http(s)
func IsRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// IsOpenSCAD reports whether src is an OpenSCAD script rendered before parsing
func IsOpenSCAD(src string) bool {
	return !IsRemote(src) && format.Ext(src) == "scad"
}

// Load fetches, parses, assembles and measures src
func Load(ctx context.Context, src string, opts Options) (*Result, error) {
	start := time.Now()
	result := &Result{Source: src}

	fail := func(err error) (*Result, error) {
		result.Err = err
		result.Duration = time.Since(start)
		return result, err
	}

	if timeout := opts.Settings.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	f, err := resolveFormat(src)
	if err != nil {
		return fail(err)
	}
	result.Format = f

	data, err := fetch(ctx, src, opts)
	if err != nil {
		return fail(err)
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	raw, err := f.Parse(data)
	if err != nil {
		return fail(fmt.Errorf("failed to parse %s: %w", src, err))
	}

	g, err := mesh.Assemble([]mesh.Part{{Raw: raw, Transform: opts.Transform, PointCloud: f.PointCloud()}})
	if err != nil {
		return fail(err)
	}
	result.Geometry = g

	metrics, err := analysis.ComputeMetrics(g)
	if err != nil {
		return fail(err)
	}
	result.Metrics = metrics
	result.Duration = time.Since(start)

	return result, nil
}

// LoadAsync runs Load in the background. The channel delivers exactly one
// Result and is then closed.
func LoadAsync(ctx context.Context, src string, opts Options) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		result, _ := Load(ctx, src, opts)
		out <- *result
	}()
	return out
}

func resolveFormat(src string) (format.Format, error) {
	if IsOpenSCAD(src) {
		return format.ForExt("stl")
	}
	if IsRemote(src) {
		u, err := url.Parse(src)
		if err != nil {
			return format.Format{}, fmt.Errorf("invalid URL %s: %w", src, err)
		}
		return format.Lookup(u.Path)
	}
	return format.Lookup(filepath.Base(src))
}

func fetch(ctx context.Context, src string, opts Options) ([]byte, error) {
	switch {
	case IsRemote(src):
		return fetchRemote(ctx, src, opts)
	case IsOpenSCAD(src):
		abs, err := filepath.Abs(src)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", src, err)
		}
		fmt.Fprintf(opts.log(), "Rendering OpenSCAD file: %s\n", src)
		data, err := openscad.NewRenderer(filepath.Dir(abs)).Render(ctx, abs)
		if err != nil {
			return nil, fmt.Errorf("failed to render OpenSCAD file: %w", err)
		}
		return data, nil
	default:
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return data, nil
	}
}

func fetchRemote(ctx context.Context, src string, opts Options) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	fmt.Fprintf(opts.log(), "Fetching %s\n", src)
	resp, err := opts.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", src, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s: %s", src, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", src, err)
	}
	return data, nil
}
