// Package config loads viewer settings from YAML, TOML or JSON files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DiscoverNames are the file names Discover looks for, in order
var DiscoverNames = []string{".gomesh.yaml", ".gomesh.yml", ".gomesh.toml", ".gomesh.json"}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Settings are the viewer settings handed to the renderer with every scene
type Settings struct {
	BackgroundColor string  `json:"backgroundColor" yaml:"backgroundColor" toml:"backgroundColor"`
	PointSize       float64 `json:"pointSize" yaml:"pointSize" toml:"pointSize"`
	PointMaxSize    float64 `json:"pointMaxSize" yaml:"pointMaxSize" toml:"pointMaxSize"`
	ShowPoints      bool    `json:"showPoints" yaml:"showPoints" toml:"showPoints"`
	ShowWireframe   bool    `json:"showWireframe" yaml:"showWireframe" toml:"showWireframe"`
	ShowMesh        bool    `json:"showMesh" yaml:"showMesh" toml:"showMesh"`
	ShowGridHelper  bool    `json:"showGridHelper" yaml:"showGridHelper" toml:"showGridHelper"`
	PointColor      string  `json:"pointColor" yaml:"pointColor" toml:"pointColor"`
	WireframeColor  string  `json:"wireframeColor" yaml:"wireframeColor" toml:"wireframeColor"`
	FogDensity      float64 `json:"fogDensity" yaml:"fogDensity" toml:"fogDensity"`
	HotReload       bool    `json:"hotReload" yaml:"hotReload" toml:"hotReload"`
	// ReloadDebounce is in milliseconds
	ReloadDebounce int `json:"reloadDebounce" yaml:"reloadDebounce" toml:"reloadDebounce"`
	// RequestTimeout is in seconds and bounds remote fetches and OpenSCAD renders
	RequestTimeout int `json:"requestTimeout" yaml:"requestTimeout" toml:"requestTimeout"`
}

// Default returns the built-in settings
func Default() Settings {
	return Settings{
		BackgroundColor: "#0b1447",
		PointSize:       0.01,
		PointMaxSize:    1.0,
		ShowPoints:      false,
		ShowWireframe:   false,
		ShowMesh:        true,
		ShowGridHelper:  true,
		PointColor:      "#cc0000",
		WireframeColor:  "#0000ff",
		FogDensity:      0.01,
		HotReload:       true,
		ReloadDebounce:  500,
		RequestTimeout:  30,
	}
}

// Debounce returns ReloadDebounce as a duration
func (s Settings) Debounce() time.Duration {
	return time.Duration(s.ReloadDebounce) * time.Millisecond
}

// Timeout returns RequestTimeout as a duration, zero meaning no limit
func (s Settings) Timeout() time.Duration {
	return time.Duration(s.RequestTimeout) * time.Second
}

// Validate checks value ranges and color notation
func (s Settings) Validate() error {
	for name, color := range map[string]string{
		"backgroundColor": s.BackgroundColor,
		"pointColor":      s.PointColor,
		"wireframeColor":  s.WireframeColor,
	} {
		if !hexColor.MatchString(color) {
			return fmt.Errorf("%s: expected #rrggbb, got %q", name, color)
		}
	}
	if s.PointSize < 0 || s.PointMaxSize < 0 || s.PointSize > s.PointMaxSize {
		return fmt.Errorf("pointSize %v must lie in [0, pointMaxSize %v]", s.PointSize, s.PointMaxSize)
	}
	if s.FogDensity < 0 {
		return fmt.Errorf("fogDensity must not be negative, got %v", s.FogDensity)
	}
	if s.ReloadDebounce < 0 {
		return fmt.Errorf("reloadDebounce must not be negative, got %d", s.ReloadDebounce)
	}
	if s.RequestTimeout < 0 {
		return fmt.Errorf("requestTimeout must not be negative, got %d", s.RequestTimeout)
	}
	return nil
}

// Load reads settings from path on top of the defaults.
// A missing file yields the defaults without error.
func Load(path string) (Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &settings)
	case ".toml":
		_, err = toml.Decode(string(data), &settings)
	case ".json":
		err = json.Unmarshal(data, &settings)
	default:
		return settings, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return Default(), fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return settings, nil
}

// Discover returns the first settings file in dir, or "" when there is none
func Discover(dir string) string {
	for _, name := range DiscoverNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
