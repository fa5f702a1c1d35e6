package scene

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-montecarlo-raytracer/pkg/core"
	"github.com/df07/go-montecarlo-raytracer/pkg/geometry"
	"github.com/df07/go-montecarlo-raytracer/pkg/material"
)

// Vector is a YAML triple such as [0, 1, 0]
type Vector [3]float64

// Vec3 converts the triple to a core vector
func (v Vector) Vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// File is the on-disk description of a scene
type File struct {
	Name        string                  `yaml:"name"`
	Description string                  `yaml:"description"`
	Camera      CameraSpec              `yaml:"camera"`
	Materials   map[string]MaterialSpec `yaml:"materials"`
	Spheres     []SphereSpec            `yaml:"spheres"`
}

// CameraSpec describes either the fixed image-plane camera ("simple") or the look-at camera
type CameraSpec struct {
	Type string `yaml:"type"` // "lookat" (default) or "simple"

	// lookat
	LookFrom      Vector  `yaml:"look_from"`
	LookAt        Vector  `yaml:"look_at"`
	VUp           *Vector `yaml:"vup"`
	VFov          float64 `yaml:"vfov"`
	Aperture      float64 `yaml:"aperture"`
	FocusDistance float64 `yaml:"focus_distance"`

	// simple
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Distance float64 `yaml:"distance"`
}

// MaterialSpec describes one named material
type MaterialSpec struct {
	Type            string  `yaml:"type"` // lambertian, metal or dielectric
	Albedo          Vector  `yaml:"albedo"`
	Fuzz            float64 `yaml:"fuzz"`
	RefractiveIndex float64 `yaml:"refractive_index"`
}

// SphereSpec places a sphere with a reference to a named material
type SphereSpec struct {
	Center   Vector  `yaml:"center"`
	Radius   float64 `yaml:"radius"`
	Material string  `yaml:"material"`
}

// IsSceneFile reports whether name looks like a path to a YAML scene file
func IsSceneFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// LoadFile reads and builds a YAML scene file
func LoadFile(path string, opts Options) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scene file %s", path)
	}

	s, err := Parse(data, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "loading scene file %s", path)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse builds a scene from YAML data. Materials are created once and shared
// by every sphere that references them.
func Parse(data []byte, opts Options) (*Scene, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "parsing scene yaml")
	}
	return file.Build(opts)
}

// Build creates the scene described by the file
func (f *File) Build(opts Options) (*Scene, error) {
	materials := make(map[string]core.Material, len(f.Materials))
	for name, spec := range f.Materials {
		mat, err := spec.Build()
		if err != nil {
			return nil, errors.Wrapf(err, "material %q", name)
		}
		materials[name] = mat
	}

	world := geometry.NewList()
	for i, sphere := range f.Spheres {
		mat, ok := materials[sphere.Material]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownMaterial, "sphere %d references %q", i, sphere.Material)
		}
		// Negative radii are hollow shells, zero has no surface
		if sphere.Radius == 0 {
			return nil, errors.Errorf("sphere %d needs a non-zero radius", i)
		}
		world.Add(geometry.NewSphere(sphere.Center.Vec3(), sphere.Radius, mat))
	}

	camera, err := f.Camera.Build(opts)
	if err != nil {
		return nil, err
	}

	return &Scene{
		Name:   f.Name,
		Camera: camera,
		World:  world,
	}, nil
}

// Build creates the material
func (m MaterialSpec) Build() (core.Material, error) {
	switch strings.ToLower(m.Type) {
	case "lambertian":
		return material.NewLambertian(m.Albedo.Vec3()), nil
	case "metal":
		return material.NewMetal(m.Albedo.Vec3(), m.Fuzz), nil
	case "dielectric":
		if m.RefractiveIndex <= 0 {
			return nil, errors.Errorf("dielectric needs a positive refractive_index, got %g", m.RefractiveIndex)
		}
		return material.NewDielectric(m.RefractiveIndex), nil
	default:
		return nil, errors.Wrapf(ErrUnknownMaterial, "type %q", m.Type)
	}
}

// Build creates the camera, using the options for the look-at camera's aspect ratio
func (c CameraSpec) Build(opts Options) (core.Camera, error) {
	switch strings.ToLower(c.Type) {
	case "simple":
		width, height, distance := c.Width, c.Height, c.Distance
		if width == 0 && height == 0 && distance == 0 {
			width, height, distance = 4, 2, 1
		}
		if width <= 0 || height <= 0 || distance <= 0 {
			return nil, errors.Errorf("simple camera needs positive width, height and distance, got %g, %g, %g", width, height, distance)
		}
		return geometry.NewSimpleCamera(width, height, distance), nil
	case "", "lookat":
		vup := core.NewVec3(0, 1, 0)
		if c.VUp != nil {
			vup = c.VUp.Vec3()
		}
		vfov := c.VFov
		if vfov == 0 {
			vfov = 90
		}
		if c.LookFrom == c.LookAt {
			return nil, errors.New("camera look_from and look_at must differ")
		}
		return geometry.NewCamera(geometry.CameraConfig{
			LookFrom:      c.LookFrom.Vec3(),
			LookAt:        c.LookAt.Vec3(),
			VUp:           vup,
			VFov:          vfov,
			AspectRatio:   opts.AspectRatio(),
			Aperture:      c.Aperture,
			FocusDistance: c.FocusDistance,
		}), nil
	default:
		return nil, errors.Errorf("unknown camera type %q", c.Type)
	}
}
