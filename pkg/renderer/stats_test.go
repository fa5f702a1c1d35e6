package renderer

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-montecarlo-raytracer/pkg/core"
)

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name     string
		linear   core.Vec3
		expected color.RGBA
	}{
		{"black", core.NewVec3(0, 0, 0), color.RGBA{0, 0, 0, 255}},
		{"white", core.NewVec3(1, 1, 1), color.RGBA{255, 255, 255, 255}},
		{"gamma 2", core.NewVec3(0.25, 0.25, 0.25), color.RGBA{127, 127, 127, 255}},
		{"clamped", core.NewVec3(4, -1, 0.0625), color.RGBA{255, 0, 63, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToRGBA(tt.linear); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPixelStats_Average(t *testing.T) {
	var ps PixelStats
	if !ps.GetColor().Equals(core.NewVec3(0, 0, 0)) {
		t.Error("Expected black for a pixel without samples")
	}

	ps.AddSample(core.NewVec3(1, 0, 0))
	ps.AddSample(core.NewVec3(0, 1, 0))
	expected := core.NewVec3(0.5, 0.5, 0)
	if !ps.GetColor().Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, ps.GetColor())
	}
}

func TestRenderStats_Table(t *testing.T) {
	stats := RenderStats{
		Width:          4,
		Height:         2,
		TotalPixels:    8,
		TotalSamples:   80,
		AverageSamples: 10,
		Tiles:          2,
		Workers:        1,
		Duration:       2 * time.Second,
	}

	if stats.SamplesPerSecond() != 40 {
		t.Errorf("Expected 40 samples/sec, got %f", stats.SamplesPerSecond())
	}

	table := stats.Table()
	for _, want := range []string{"Resolution", "4x2", "Samples/pixel", "10.0", "2s"} {
		if !strings.Contains(table, want) {
			t.Errorf("Expected table to contain %q:\n%s", want, table)
		}
	}
}
