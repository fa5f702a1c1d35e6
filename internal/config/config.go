// Package config handles render configuration loading and validation.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-montecarlo-raytracer/pkg/imageio"
	"github.com/df07/go-montecarlo-raytracer/pkg/integrator"
	"github.com/df07/go-montecarlo-raytracer/pkg/renderer"
	"github.com/df07/go-montecarlo-raytracer/pkg/scene"
)

// Config holds all render settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds image and sampling settings.
type RenderConfig struct {
	Scene           string `yaml:"scene"` // Built-in scene name or path to a YAML scene file
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	SamplesPerPixel int    `yaml:"samples_per_pixel"`
	MaxDepth        int    `yaml:"max_depth"`
	TileSize        int    `yaml:"tile_size"`
	Workers         int    `yaml:"workers"` // 0 = one per CPU
	Seed            int64  `yaml:"seed"`
}

// OutputConfig holds image output settings.
type OutputConfig struct {
	Path   string `yaml:"path"`   // "-" writes to stdout
	Format string `yaml:"format"` // png or ppm, empty = from the path extension
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Scene:           "three-spheres",
			Width:           400,
			Height:          225,
			SamplesPerPixel: 100,
			MaxDepth:        integrator.DefaultMaxDepth,
			TileSize:        32,
			Workers:         0,
			Seed:            42,
		},
		Output: OutputConfig{
			Path:   "render.png",
			Format: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// LoadFile loads a YAML file over the defaults. Keys missing from the file keep their default.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

// Validate checks that the configuration can be rendered and written.
func (c *Config) Validate() error {
	r := c.Render
	if r.Scene == "" {
		return errors.New("render.scene must be set")
	}
	if r.Width <= 0 || r.Height <= 0 {
		return errors.Errorf("render size must be positive, got %dx%d", r.Width, r.Height)
	}
	if r.SamplesPerPixel <= 0 {
		return errors.Errorf("render.samples_per_pixel must be positive, got %d", r.SamplesPerPixel)
	}
	if r.MaxDepth <= 0 {
		return errors.Errorf("render.max_depth must be positive, got %d", r.MaxDepth)
	}
	if r.TileSize <= 0 {
		return errors.Errorf("render.tile_size must be positive, got %d", r.TileSize)
	}
	if r.Workers < 0 {
		return errors.Errorf("render.workers must not be negative, got %d", r.Workers)
	}
	if c.Output.Path == "" {
		return errors.New("output.path must be set")
	}
	if _, err := c.OutputFormat(); err != nil {
		return err
	}
	return nil
}

// OutputFormat resolves the image format from Output.Format or the output path.
func (c *Config) OutputFormat() (imageio.Format, error) {
	if c.Output.Format != "" {
		return imageio.ParseFormat(c.Output.Format)
	}
	if c.Output.Path == "-" {
		return imageio.FormatPPM, nil
	}
	return imageio.FormatFromPath(c.Output.Path)
}

// SamplingConfig converts the render settings for the renderer.
func (c *Config) SamplingConfig() renderer.SamplingConfig {
	return renderer.SamplingConfig{
		Width:           c.Render.Width,
		Height:          c.Render.Height,
		SamplesPerPixel: c.Render.SamplesPerPixel,
		TileSize:        c.Render.TileSize,
		NumWorkers:      c.Render.Workers,
		Seed:            c.Render.Seed,
	}
}

// IntegratorConfig returns the path tracing settings.
func (c *Config) IntegratorConfig() integrator.Config {
	cfg := integrator.DefaultConfig()
	cfg.MaxDepth = c.Render.MaxDepth
	return cfg
}

// SceneOptions returns the options used to build the scene.
func (c *Config) SceneOptions() scene.Options {
	return scene.Options{
		Width:  c.Render.Width,
		Height: c.Render.Height,
		Seed:   c.Render.Seed,
	}
}
