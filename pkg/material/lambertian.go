package material

import (
	"github.com/df07/go-montecarlo-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter bounces the ray towards a random point in the unit sphere tangent to the surface.
// Lambertian surfaces always scatter.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	target := hit.Point.Add(hit.Normal).Add(core.RandomInUnitSphere(sampler))

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, target.Subtract(hit.Point)),
		Attenuation: l.Albedo,
	}, true
}
