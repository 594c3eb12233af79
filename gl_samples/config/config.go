// Package config holds the settings shared by the GL samples: window
// geometry, clear color and the attribute and uniform names the samples look
// up in their shader programs.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

type Window struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	VSync   bool   `yaml:"vsync"`
	Samples int    `yaml:"samples"`
}

// Names are the identifiers declared by the sample's shader source.
type Names struct {
	Position   string `yaml:"position"`
	Color      string `yaml:"color"`
	Projection string `yaml:"projection"`
	Model      string `yaml:"model"`
}

type Config struct {
	Window     Window     `yaml:"window"`
	ClearColor [4]float32 `yaml:"clear_color"`
	Names      Names      `yaml:"names"`
}

func Default() *Config {
	return &Config{
		Window: Window{
			Title:   "Color Triangle",
			Width:   800,
			Height:  800,
			VSync:   true,
			Samples: 8,
		},
		ClearColor: [4]float32{0, 0, 0, 1},
		Names: Names{
			Position:   "Position",
			Color:      "Color",
			Projection: "Projection",
			Model:      "Model",
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read config")
	}

	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "could not parse config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Newf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Samples < 0 {
		return errors.Newf("multisample count must not be negative, got %d", c.Window.Samples)
	}

	names := map[string]string{
		"position":   c.Names.Position,
		"color":      c.Names.Color,
		"projection": c.Names.Projection,
		"model":      c.Names.Model,
	}
	for key, name := range names {
		if name == "" {
			return errors.Newf("names.%s must not be empty", key)
		}
	}

	return nil
}
