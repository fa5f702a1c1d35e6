package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/df07/go-montecarlo-raytracer/pkg/imageio"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Render.Scene != "three-spheres" {
		t.Errorf("expected scene three-spheres, got %s", cfg.Render.Scene)
	}
	if cfg.Render.Width != 400 || cfg.Render.Height != 225 {
		t.Errorf("expected 400x225, got %dx%d", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Render.SamplesPerPixel != 100 {
		t.Errorf("expected 100 samples, got %d", cfg.Render.SamplesPerPixel)
	}
	if cfg.Render.MaxDepth != 50 {
		t.Errorf("expected max depth 50, got %d", cfg.Render.MaxDepth)
	}
	if cfg.Render.TileSize != 32 || cfg.Render.Workers != 0 || cfg.Render.Seed != 42 {
		t.Errorf("unexpected tile/worker/seed defaults: %+v", cfg.Render)
	}
	if cfg.Output.Path != "render.png" || cfg.Output.Format != "" {
		t.Errorf("unexpected output defaults: %+v", cfg.Output)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.LogFile != "" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
render:
  scene: random-spheres
  width: 1200
  samples_per_pixel: 10

output:
  path: out/final.ppm

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Render.Scene != "random-spheres" {
		t.Errorf("expected random-spheres, got %s", cfg.Render.Scene)
	}
	if cfg.Render.Width != 1200 {
		t.Errorf("expected width 1200, got %d", cfg.Render.Width)
	}
	// Unset keys keep their defaults
	if cfg.Render.Height != 225 {
		t.Errorf("expected default height 225, got %d", cfg.Render.Height)
	}
	if cfg.Render.SamplesPerPixel != 10 {
		t.Errorf("expected 10 samples, got %d", cfg.Render.SamplesPerPixel)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logging.Level)
	}

	format, err := cfg.OutputFormat()
	if err != nil || format != imageio.FormatPPM {
		t.Errorf("expected ppm from extension, got %q (%v)", format, err)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := LoadFile(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	badPath := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(badPath, []byte("render: [not, a, map"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadFile(badPath); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	width := 64
	seed := int64(7)
	out := "-"
	level := "warn"

	cfg.ApplyOverrides(Overrides{
		Width:      &width,
		Seed:       &seed,
		OutputPath: &out,
		LogLevel:   &level,
	})

	if cfg.Render.Width != 64 {
		t.Errorf("expected width 64, got %d", cfg.Render.Width)
	}
	if cfg.Render.Height != 225 {
		t.Errorf("unset override changed height to %d", cfg.Render.Height)
	}
	if cfg.Render.Seed != 7 {
		t.Errorf("expected seed 7, got %d", cfg.Render.Seed)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level warn, got %s", cfg.Logging.Level)
	}

	// stdout output defaults to ppm
	format, err := cfg.OutputFormat()
	if err != nil || format != imageio.FormatPPM {
		t.Errorf("expected ppm for stdout, got %q (%v)", format, err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty scene", func(c *Config) { c.Render.Scene = "" }},
		{"zero width", func(c *Config) { c.Render.Width = 0 }},
		{"negative height", func(c *Config) { c.Render.Height = -1 }},
		{"zero samples", func(c *Config) { c.Render.SamplesPerPixel = 0 }},
		{"zero depth", func(c *Config) { c.Render.MaxDepth = 0 }},
		{"zero tile size", func(c *Config) { c.Render.TileSize = 0 }},
		{"negative workers", func(c *Config) { c.Render.Workers = -2 }},
		{"empty output", func(c *Config) { c.Output.Path = "" }},
		{"unknown extension", func(c *Config) { c.Output.Path = "render.bmp" }},
		{"unknown format", func(c *Config) { c.Output.Format = "exr" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidate_ExplicitFormatOverridesExtension(t *testing.T) {
	cfg := Default()
	cfg.Output.Path = "render.out"
	cfg.Output.Format = "PNG"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	format, _ := cfg.OutputFormat()
	if format != imageio.FormatPNG {
		t.Errorf("expected png, got %q", format)
	}

	cfg.Output.Format = "exr"
	if _, err := cfg.OutputFormat(); !errors.Is(err, imageio.ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestConversions(t *testing.T) {
	cfg := Default()
	cfg.Render.MaxDepth = 8

	sampling := cfg.SamplingConfig()
	if sampling.Width != 400 || sampling.SamplesPerPixel != 100 || sampling.Seed != 42 {
		t.Errorf("unexpected sampling config: %+v", sampling)
	}
	if cfg.IntegratorConfig().MaxDepth != 8 {
		t.Errorf("expected max depth 8, got %d", cfg.IntegratorConfig().MaxDepth)
	}
	opts := cfg.SceneOptions()
	if opts.Width != 400 || opts.Height != 225 || opts.Seed != 42 {
		t.Errorf("unexpected scene options: %+v", opts)
	}
}
