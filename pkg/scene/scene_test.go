package scene

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/df07/go-montecarlo-raytracer/pkg/core"
	"github.com/df07/go-montecarlo-raytracer/pkg/geometry"
	"github.com/df07/go-montecarlo-raytracer/pkg/material"
)

func TestBuiltinScenes(t *testing.T) {
	tests := []struct {
		name      string
		primitive int
	}{
		{"single-sphere", 1},
		{"three-spheres", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(tt.name, DefaultOptions())
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.Name != tt.name {
				t.Errorf("Expected name %q, got %q", tt.name, s.Name)
			}
			if s.GetPrimitiveCount() != tt.primitive {
				t.Errorf("Expected %d spheres, got %d", tt.primitive, s.GetPrimitiveCount())
			}
			if s.Camera == nil {
				t.Error("Expected a camera")
			}
		})
	}
}

func TestSingleSphereScene_CenterRayHitsSphere(t *testing.T) {
	s := NewSingleSphereScene(DefaultOptions())

	ray := s.Camera.GetRay(0.5, 0.5, nil)
	hit, ok := s.World.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected the center ray to hit the sphere")
	}
	if math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("Expected t=0.5, got %f", hit.T)
	}
	if _, isLambertian := hit.Material.(*material.Lambertian); !isLambertian {
		t.Errorf("Expected a Lambertian material, got %T", hit.Material)
	}
}

func TestThreeSpheresScene_HollowGlassShell(t *testing.T) {
	s := NewThreeSpheresScene(DefaultOptions())

	var outer, inner *geometry.Sphere
	for _, shape := range s.World.Shapes {
		sphere := shape.(*geometry.Sphere)
		if sphere.Center.Equals(core.NewVec3(-1, 0, -1)) {
			if sphere.Radius > 0 {
				outer = sphere
			} else {
				inner = sphere
			}
		}
	}
	if outer == nil || inner == nil {
		t.Fatal("Expected an outer and an inner glass sphere at (-1,0,-1)")
	}
	if inner.Radius != -0.45 {
		t.Errorf("Expected inner radius -0.45, got %f", inner.Radius)
	}
	if outer.Material != inner.Material {
		t.Error("Expected both shell spheres to share one glass material")
	}
}

func TestRandomSpheresScene_Deterministic(t *testing.T) {
	opts := DefaultOptions()
	a := NewRandomSpheresScene(opts)
	b := NewRandomSpheresScene(opts)

	if a.GetPrimitiveCount() != b.GetPrimitiveCount() {
		t.Fatalf("Same seed produced %d and %d spheres", a.GetPrimitiveCount(), b.GetPrimitiveCount())
	}
	for i := range a.World.Shapes {
		sa := a.World.Shapes[i].(*geometry.Sphere)
		sb := b.World.Shapes[i].(*geometry.Sphere)
		if !sa.Center.Equals(sb.Center) {
			t.Fatalf("Sphere %d differs: %v vs %v", i, sa.Center, sb.Center)
		}
	}

	// Ground, three large spheres and at most 22x22 small ones
	if a.GetPrimitiveCount() < 4 || a.GetPrimitiveCount() > 4+22*22 {
		t.Errorf("Unexpected sphere count %d", a.GetPrimitiveCount())
	}

	opts.Seed = 43
	c := NewRandomSpheresScene(opts)
	first := a.World.Shapes[1].(*geometry.Sphere).Center
	if c.World.Shapes[1].(*geometry.Sphere).Center.Equals(first) {
		t.Error("Different seeds should produce different layouts")
	}
}

func TestRandomSpheresScene_ClearingAroundMetalSphere(t *testing.T) {
	s := NewRandomSpheresScene(DefaultOptions())
	clearing := core.NewVec3(4, 0.2, 0)

	for _, shape := range s.World.Shapes {
		sphere := shape.(*geometry.Sphere)
		if sphere.Radius == 0.2 && sphere.Center.Subtract(clearing).Length() < 0.9 {
			t.Errorf("Small sphere at %v is inside the clearing", sphere.Center)
		}
	}
}

func TestLoad_UnknownScene(t *testing.T) {
	_, err := Load("no-such-scene", DefaultOptions())
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestListBuiltins_Sorted(t *testing.T) {
	scenes := ListBuiltins()
	if len(scenes) != 3 {
		t.Fatalf("Expected 3 built-in scenes, got %d", len(scenes))
	}
	for i := 1; i < len(scenes); i++ {
		if scenes[i-1].ID >= scenes[i].ID {
			t.Errorf("Scenes not sorted: %q before %q", scenes[i-1].ID, scenes[i].ID)
		}
	}
}

const testSceneYAML = `
name: shared glass
camera:
  look_from: [0, 0, 1]
  look_at: [0, 0, -1]
  vfov: 60
materials:
  glass:
    type: dielectric
    refractive_index: 1.5
  ground:
    type: lambertian
    albedo: [0.8, 0.8, 0.0]
  mirror:
    type: metal
    albedo: [0.9, 0.9, 0.9]
    fuzz: 3
spheres:
  - center: [0, 0, -1]
    radius: 0.5
    material: glass
  - center: [0, 0, -1]
    radius: -0.45
    material: glass
  - center: [0, -100.5, -1]
    radius: 100
    material: ground
  - center: [1, 0, -1]
    radius: 0.5
    material: mirror
`

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "glass.yaml")
	if err := os.WriteFile(path, []byte(testSceneYAML), 0644); err != nil {
		t.Fatalf("failed to write scene file: %v", err)
	}

	s, err := Load(path, Options{Width: 200, Height: 100, Seed: 1})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if s.Name != "shared glass" {
		t.Errorf("Expected name 'shared glass', got %q", s.Name)
	}
	if s.GetPrimitiveCount() != 4 {
		t.Fatalf("Expected 4 spheres, got %d", s.GetPrimitiveCount())
	}

	first := s.World.Shapes[0].(*geometry.Sphere)
	second := s.World.Shapes[1].(*geometry.Sphere)
	if first.Material != second.Material {
		t.Error("Spheres referencing the same material name should share it")
	}

	mirror := s.World.Shapes[3].(*geometry.Sphere).Material.(*material.Metal)
	if mirror.Fuzz != 1 {
		t.Errorf("Expected fuzz clamped to 1, got %f", mirror.Fuzz)
	}

	camera, ok := s.Camera.(*geometry.Camera)
	if !ok {
		t.Fatalf("Expected look-at camera, got %T", s.Camera)
	}
	if !camera.Forward().Equals(core.NewVec3(0, 0, -1)) {
		t.Errorf("Expected forward (0,0,-1), got %v", camera.Forward())
	}
}

func TestLoadFile_NameFromPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "unnamed.yml")
	content := `
camera:
  type: simple
materials:
  gray: {type: lambertian, albedo: [0.5, 0.5, 0.5]}
spheres:
  - {center: [0, 0, -1], radius: 0.5, material: gray}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write scene file: %v", err)
	}

	s, err := LoadFile(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Name != "unnamed" {
		t.Errorf("Expected name from file name, got %q", s.Name)
	}
	if _, ok := s.Camera.(*geometry.SimpleCamera); !ok {
		t.Errorf("Expected simple camera, got %T", s.Camera)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		sentinel error
	}{
		{
			name: "undefined material reference",
			yaml: `
camera: {look_from: [0, 0, 1], look_at: [0, 0, 0]}
spheres:
  - {center: [0, 0, 0], radius: 1, material: missing}
`,
			sentinel: ErrUnknownMaterial,
		},
		{
			name: "unsupported material type",
			yaml: `
camera: {look_from: [0, 0, 1], look_at: [0, 0, 0]}
materials:
  glow: {type: emissive}
`,
			sentinel: ErrUnknownMaterial,
		},
		{
			name: "malformed vector",
			yaml: `
camera: {look_from: [0, 0], look_at: [0, 0, 0]}
`,
		},
		{
			name: "degenerate camera",
			yaml: `
camera: {look_from: [1, 1, 1], look_at: [1, 1, 1]}
`,
		},
		{
			name: "dielectric without refractive index",
			yaml: `
camera: {look_from: [0, 0, 1], look_at: [0, 0, 0]}
materials:
  glass: {type: dielectric}
`,
		},
		{
			name: "negative refractive index",
			yaml: `
camera: {look_from: [0, 0, 1], look_at: [0, 0, 0]}
materials:
  glass: {type: dielectric, refractive_index: -1.5}
`,
		},
		{
			name: "sphere without radius",
			yaml: `
camera: {look_from: [0, 0, 1], look_at: [0, 0, 0]}
materials:
  matte: {type: lambertian, albedo: [0.5, 0.5, 0.5]}
spheres:
  - {center: [0, 0, 0], material: matte}
`,
		},
		{
			name: "unknown camera type",
			yaml: `
camera: {type: fisheye}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), DefaultOptions())
			if err == nil {
				t.Fatal("Expected an error")
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("Expected %v, got %v", tt.sentinel, err)
			}
		})
	}
}

func TestLoad_BundledSceneFiles(t *testing.T) {
	scenes, err := ListSceneFiles(filepath.Join("..", "..", "scenes"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(scenes) == 0 {
		t.Fatal("Expected bundled scene files")
	}

	for _, info := range scenes {
		t.Run(info.DisplayName, func(t *testing.T) {
			s, err := Load(info.FilePath, DefaultOptions())
			if err != nil {
				t.Fatalf("Failed to load %s: %v", info.FilePath, err)
			}
			if s.GetPrimitiveCount() == 0 {
				t.Error("Expected at least one sphere")
			}
		})
	}
}
