package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height)
	assert.Equal(t, "Projection", cfg.Names.Projection)
	assert.Equal(t, "Model", cfg.Names.Model)
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
window:
  title: Wide
  width: 1280
  height: 720
names:
  projection: uProjection
  model: uModel
clear_color: [0.1, 0.2, 0.3, 1]
`))
	require.NoError(t, err)

	assert.Equal(t, "Wide", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.True(t, cfg.Window.VSync)
	assert.Equal(t, 8, cfg.Window.Samples)
	assert.Equal(t, "uProjection", cfg.Names.Projection)
	assert.Equal(t, "uModel", cfg.Names.Model)
	assert.Equal(t, "Position", cfg.Names.Position)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, cfg.ClearColor)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "window: [1, 2"},
		{"zero width", "window: {width: 0}"},
		{"negative height", "window: {height: -4}"},
		{"negative samples", "window: {samples: -1}"},
		{"empty uniform", "names: {model: ''}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: {width: 640, height: 480}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Options
		wantErr bool
	}{
		{"none", nil, Options{}, false},
		{"config", []string{"--config", "a.yaml"}, Options{ConfigPath: "a.yaml"}, false},
		{"verbose", []string{"-v"}, Options{Verbose: true}, false},
		{"positional", []string{"tri.vert", "--verbose", "tri.frag"}, Options{Verbose: true, Args: []string{"tri.vert", "tri.frag"}}, false},
		{"missing config value", []string{"--config"}, Options{}, true},
		{"save images", []string{"--save-images"}, Options{SaveImages: true}, false},
		{"unknown", []string{"--fullscreen"}, Options{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgsHelp(t *testing.T) {
	for _, arg := range []string{"-h", "--help"} {
		_, err := ParseArgs([]string{"--verbose", arg})
		assert.True(t, errors.Is(err, ErrHelp), arg)
	}
}
