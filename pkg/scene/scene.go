package scene

import (
	"github.com/pkg/errors"

	"github.com/df07/go-montecarlo-raytracer/pkg/core"
	"github.com/df07/go-montecarlo-raytracer/pkg/geometry"
)

var (
	// ErrUnknownScene is returned when a scene name is neither a built-in nor a scene file
	ErrUnknownScene = errors.New("unknown scene")
	// ErrUnknownMaterial is returned when a scene file references an undefined or unsupported material
	ErrUnknownMaterial = errors.New("unknown material")
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	Camera core.Camera
	World  *geometry.List // Objects in the scene
}

// Options controls how a scene is built
type Options struct {
	Width  int   // Image width, used for the camera aspect ratio
	Height int   // Image height
	Seed   int64 // Seed for procedurally generated scenes
}

// DefaultOptions returns the options matching the default render configuration
func DefaultOptions() Options {
	return Options{
		Width:  400,
		Height: 225,
		Seed:   42,
	}
}

// AspectRatio returns width/height, falling back to 16:9 for degenerate sizes
func (o Options) AspectRatio() float64 {
	if o.Width <= 0 || o.Height <= 0 {
		return 16.0 / 9.0
	}
	return float64(o.Width) / float64(o.Height)
}

// GetPrimitiveCount returns the number of spheres in the scene
func (s *Scene) GetPrimitiveCount() int {
	if s.World == nil {
		return 0
	}
	return s.World.Len()
}
