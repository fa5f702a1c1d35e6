package integrator

import (
	"github.com/df07/go-montecarlo-raytracer/pkg/core"
)

// ShadowAcneEpsilon is the minimum ray parameter accepted for an intersection.
// It keeps scattered rays from re-hitting the surface they left.
const ShadowAcneEpsilon = 0.001

// DefaultMaxDepth is the number of bounces after which a path returns black
const DefaultMaxDepth = 50

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance arriving along a camera ray
	RayColor(ray core.Ray, world core.Shape, sampler core.Sampler) core.Vec3
}
