package material

import (
	"github.com/df07/go-montecarlo-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter chooses between reflection and refraction with probability given by
// Schlick's approximation. Clear glass never absorbs, so it always scatters.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)
	direction := rayIn.Direction
	dirDotNormal := direction.Dot(hit.Normal)

	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	if dirDotNormal > 0 {
		// Exiting the medium
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = d.RefractiveIndex * dirDotNormal / direction.Length()
	} else {
		// Entering the medium
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -dirDotNormal / direction.Length()
	}

	reflected := Reflect(direction, hit.Normal)

	refracted, canRefract := Refract(direction, outwardNormal, niOverNt)
	if !canRefract || sampler.Get1D() < Schlick(cosine, d.RefractiveIndex) {
		return core.ScatterResult{
			Scattered:   core.NewRay(hit.Point, reflected),
			Attenuation: attenuation,
		}, true
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, refracted),
		Attenuation: attenuation,
	}, true
}
