package integrator

import (
	"math"

	"github.com/df07/go-montecarlo-raytracer/pkg/core"
)

// Config contains path tracing parameters
type Config struct {
	MaxDepth    int       // Bounces before a path is terminated
	TopColor    core.Vec3 // Background color straight up
	BottomColor core.Vec3 // Background color straight down
}

// DefaultConfig returns a white to sky-blue background and 50 bounces
func DefaultConfig() Config {
	return Config{
		MaxDepth:    DefaultMaxDepth,
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// Config returns the integrator configuration
func (pt *PathTracingIntegrator) Config() Config {
	return pt.config
}

// RayColor computes the color for a camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world core.Shape, sampler core.Sampler) core.Vec3 {
	return pt.RayColorAtDepth(ray, world, 0, sampler)
}

// RayColorAtDepth computes the color for a ray that has already bounced depth times.
// The path is followed iteratively: attenuation is multiplied into a running
// throughput until the ray escapes to the background, is absorbed, or runs out of depth.
func (pt *PathTracingIntegrator) RayColorAtDepth(ray core.Ray, world core.Shape, depth int, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for ; ; depth++ {
		hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(pt.BackgroundGradient(ray))
		}

		// If we've exceeded the ray bounce limit, no more light is gathered
		if depth >= pt.config.MaxDepth {
			return core.Vec3{X: 0, Y: 0, Z: 0}
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return core.Vec3{X: 0, Y: 0, Z: 0}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}
}

// BackgroundGradient returns a vertical gradient color based on ray direction
func (pt *PathTracingIntegrator) BackgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return pt.config.BottomColor.Multiply(1.0 - t).Add(pt.config.TopColor.Multiply(t))
}
