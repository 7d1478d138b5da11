package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlConfig = `backgroundColor: "#101010"
pointSize: 0.5
showPoints: true
showGridHelper: false
reloadDebounce: 250
requestTimeout: 5
`

const tomlConfig = `backgroundColor = "#101010"
pointSize = 0.5
showPoints = true
showGridHelper = false
reloadDebounce = 250
requestTimeout = 5
`

const jsonConfig = `{
  "backgroundColor": "#101010",
  "pointSize": 0.5,
  "showPoints": true,
  "showGridHelper": false,
  "reloadDebounce": 250,
  "requestTimeout": 5
}`

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFormatsAgree(t *testing.T) {
	fromYAML, err := Load(write(t, "settings.yaml", yamlConfig))
	require.NoError(t, err)
	fromTOML, err := Load(write(t, "settings.toml", tomlConfig))
	require.NoError(t, err)
	fromJSON, err := Load(write(t, "settings.json", jsonConfig))
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromTOML)
	assert.Equal(t, fromYAML, fromJSON)

	assert.Equal(t, "#101010", fromYAML.BackgroundColor)
	assert.Equal(t, 0.5, fromYAML.PointSize)
	assert.True(t, fromYAML.ShowPoints)
	assert.False(t, fromYAML.ShowGridHelper)
	assert.Equal(t, 250*time.Millisecond, fromYAML.Debounce())
	assert.Equal(t, 5*time.Second, fromYAML.Timeout())

	// Unset keys keep their defaults
	assert.Equal(t, Default().PointColor, fromYAML.PointColor)
	assert.True(t, fromYAML.ShowMesh)
}

func TestLoadMissingFile(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), settings)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(write(t, "settings.ini", "pointSize=1"))
	assert.ErrorContains(t, err, "unsupported config format")

	_, err = Load(write(t, "settings.json", "{not json"))
	assert.Error(t, err)

	_, err = Load(write(t, "settings.yaml", "pointColor: red\n"))
	assert.ErrorContains(t, err, "pointColor")

	_, err = Load(write(t, "settings.toml", "reloadDebounce = -1\n"))
	assert.ErrorContains(t, err, "reloadDebounce")
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, "", Discover(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gomesh.toml"), []byte(tomlConfig), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gomesh.json"), []byte(jsonConfig), 0o644))

	assert.Equal(t, filepath.Join(dir, ".gomesh.toml"), Discover(dir))
}
