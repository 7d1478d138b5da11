// Package format resolves a source's file extension to the parser that reads it.
package format

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/philipparndt/gomesh/pkg/off"
	"github.com/philipparndt/gomesh/pkg/stl"
	"github.com/philipparndt/gomesh/pkg/xyz"
)

// Variant tags a parser implementation
type Variant int

const (
	VariantOFF Variant = iota
	VariantSTL
	VariantXYZ
	// VariantCustom marks formats added through Register by callers
	VariantCustom
)

func (v Variant) String() string {
	switch v {
	case VariantOFF:
		return "off"
	case VariantSTL:
		return "stl"
	case VariantXYZ:
		return "xyz"
	case VariantCustom:
		return "custom"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseFunc turns a payload into a raw geometry record
type ParseFunc func(data []byte) (*mesh.Raw, error)

// Format is a registered parser together with the kind of geometry it yields
type Format struct {
	Ext     string
	Variant Variant
	Name    string
	Kind    mesh.Kind
	Parse   ParseFunc
}

// PointCloud reports whether sources of this format skip index synthesis
func (f Format) PointCloud() bool {
	return f.Kind == mesh.KindPointCloud
}

// UnsupportedFormatError reports an extension with no registered parser
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Ext == "" {
		return "unsupported format: source has no file extension"
	}
	return fmt.Sprintf("unsupported format: %q", e.Ext)
}

var (
	mu       sync.RWMutex
	registry = map[string]Format{}
)

func init() {
	Register("off", Format{
		Variant: VariantOFF,
		Name:    off.FormatName,
		Kind:    mesh.KindMesh,
		Parse: func(data []byte) (*mesh.Raw, error) {
			return off.Parse(string(data))
		},
	})
	Register("stl", Format{
		Variant: VariantSTL,
		Name:    stl.FormatName,
		Kind:    mesh.KindMesh,
		Parse:   stl.Parse,
	})
	Register("xyz", Format{
		Variant: VariantXYZ,
		Name:    xyz.FormatName,
		Kind:    mesh.KindPointCloud,
		Parse:   xyz.Parse,
	})
}

// Register binds an extension (without the dot, case-insensitive) to a format.
// A later registration for the same extension replaces the earlier one.
func Register(ext string, f Format) {
	ext = strings.ToLower(ext)
	f.Ext = ext

	mu.Lock()
	defer mu.Unlock()
	registry[ext] = f
}

// Ext returns the lowercased substring after the last '.', or "" when there is none
func Ext(pathOrURL string) string {
	i := strings.LastIndex(pathOrURL, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(pathOrURL[i+1:])
}

// ForExt resolves an extension to its registered format
func ForExt(ext string) (Format, error) {
	ext = strings.ToLower(ext)

	mu.RLock()
	f, ok := registry[ext]
	mu.RUnlock()

	if !ok {
		return Format{}, &UnsupportedFormatError{Ext: ext}
	}
	return f, nil
}

// Lookup resolves the format of a path or URL by its extension
func Lookup(pathOrURL string) (Format, error) {
	return ForExt(Ext(pathOrURL))
}

// Parse dispatches the payload to the parser registered for ext
func Parse(data []byte, ext string) (*mesh.Raw, error) {
	f, err := ForExt(ext)
	if err != nil {
		return nil, err
	}
	return f.Parse(data)
}

// Formats lists all registered formats sorted by extension
func Formats() []Format {
	mu.RLock()
	formats := make([]Format, 0, len(registry))
	for _, f := range registry {
		formats = append(formats, f)
	}
	mu.RUnlock()

	sort.Slice(formats, func(i, j int) bool {
		return formats[i].Ext < formats[j].Ext
	})
	return formats
}
