package loader

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/philipparndt/gomesh/pkg/openscad"
	"github.com/philipparndt/gomesh/pkg/watcher"
)

// Reloader loads a local source and loads it again whenever the source, or
// one of its OpenSCAD dependencies, changes.
type Reloader struct {
	src  string
	opts Options
}

// NewReloader creates a reloader for a local file
func NewReloader(src string, opts Options) (*Reloader, error) {
	if IsRemote(src) {
		return nil, fmt.Errorf("cannot watch remote source %s", src)
	}
	return &Reloader{src: src, opts: opts}, nil
}

// Run sends the initial Result and one Result per change on results until
// ctx is done. Failed loads are delivered too, with Err set.
func (r *Reloader) Run(ctx context.Context, results chan<- Result) error {
	fw, err := watcher.NewFileWatcher(r.opts.Settings.Debounce())
	if err != nil {
		return err
	}
	defer fw.Close()
	fw.SetErrorOutput(r.opts.log())

	changed := make(chan string, 1)
	onChange := func(file string) {
		select {
		case changed <- file:
		default:
		}
	}

	if err := r.watch(fw, onChange); err != nil {
		return err
	}
	fw.Start(ctx)

	if !r.deliver(ctx, results) {
		return ctx.Err()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case file := <-changed:
			fmt.Fprintf(r.opts.log(), "File changed: %s\n", file)
			fmt.Fprintln(r.opts.log(), "Reloading model...")

			// The edit may have added or dropped dependencies
			if IsOpenSCAD(r.src) {
				if err := fw.RemoveAll(); err != nil {
					fmt.Fprintf(r.opts.log(), "Error clearing watches: %v\n", err)
				}
				if err := r.watch(fw, onChange); err != nil {
					fmt.Fprintf(r.opts.log(), "Error resolving dependencies: %v\n", err)
					// Keep following the script itself until it resolves again
					if err := fw.Watch([]string{r.src}, onChange); err != nil {
						fmt.Fprintf(r.opts.log(), "Error watching %s: %v\n", r.src, err)
					}
				}
			}
			if !r.deliver(ctx, results) {
				return ctx.Err()
			}
		}
	}
}

func (r *Reloader) deliver(ctx context.Context, results chan<- Result) bool {
	result, err := Load(ctx, r.src, r.opts)
	if err != nil {
		fmt.Fprintf(r.opts.log(), "Error reloading model: %v\n", err)
	} else {
		fmt.Fprintf(r.opts.log(), "Model loaded in %.2fs\n", result.Duration.Seconds())
	}

	select {
	case results <- *result:
		return true
	case <-ctx.Done():
		return false
	}
}

func (r *Reloader) watch(fw *watcher.FileWatcher, onChange func(string)) error {
	files := []string{r.src}
	if IsOpenSCAD(r.src) {
		abs, err := filepath.Abs(r.src)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", r.src, err)
		}
		deps, err := openscad.NewRenderer(filepath.Dir(abs)).ResolveDependencies(abs)
		if err != nil {
			return fmt.Errorf("failed to resolve dependencies: %w", err)
		}
		files = deps
	}

	if err := fw.Watch(files, onChange); err != nil {
		return fmt.Errorf("failed to watch files: %w", err)
	}

	if len(files) == 1 {
		fmt.Fprintf(r.opts.log(), "Watching file for changes: %s\n", files[0])
	} else {
		fmt.Fprintf(r.opts.log(), "Watching %d file(s) for changes:\n", len(files))
		for _, f := range files {
			fmt.Fprintf(r.opts.log(), "  - %s\n", f)
		}
	}
	return nil
}
