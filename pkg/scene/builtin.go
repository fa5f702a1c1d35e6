package scene

import (
	"github.com/df07/go-montecarlo-raytracer/pkg/core"
	"github.com/df07/go-montecarlo-raytracer/pkg/geometry"
	"github.com/df07/go-montecarlo-raytracer/pkg/material"
)

// NewSingleSphereScene creates one diffuse sphere seen through the fixed image-plane camera
func NewSingleSphereScene(opts Options) *Scene {
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	return &Scene{
		Name:   "single-sphere",
		Camera: geometry.NewSimpleCamera(4, 2, 1),
		World: geometry.NewList(
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
		),
	}
}

// NewThreeSpheresScene creates a diffuse, a metal and a hollow glass sphere on a large ground sphere
func NewThreeSpheresScene(opts Options) *Scene {
	camera := geometry.NewCamera(geometry.CameraConfig{
		LookFrom:      core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          30,
		AspectRatio:   opts.AspectRatio(),
		Aperture:      0,
		FocusDistance: 1,
	})

	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)

	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianBlue),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalGold),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		// Negative radius flips the normals inward, turning the glass sphere into a thin shell
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGround),
	)

	return &Scene{
		Name:   "three-spheres",
		Camera: camera,
		World:  world,
	}
}

// NewRandomSpheresScene creates a field of small random spheres around three large ones.
// The layout depends only on opts.Seed.
func NewRandomSpheresScene(opts Options) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)
	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)

	glass := material.NewDielectric(1.5)
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())
			if center.Subtract(clearing).Length() < 0.9 {
				continue
			}

			var mat core.Material
			switch {
			case chooseMat < 0.8:
				albedo := sampler.Get3D().MultiplyVec(sampler.Get3D())
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := sampler.Get3D().Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
				mat = material.NewMetal(albedo, 0.5*sampler.Get1D())
			default:
				mat = glass
			}
			world.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)))

	lookFrom := core.NewVec3(15, 3, 4)
	lookAt := core.NewVec3(0, 0, 0)
	camera := geometry.NewCamera(geometry.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   opts.AspectRatio(),
		Aperture:      0.1,
		FocusDistance: lookFrom.Subtract(lookAt).Length(),
	})

	return &Scene{
		Name:   "random-spheres",
		Camera: camera,
		World:  world,
	}
}
