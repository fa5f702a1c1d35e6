package scene

import (
	"sort"

	"github.com/pkg/errors"
)

// SceneInfo describes a scene that can be rendered by name or path
type SceneInfo struct {
	ID          string `json:"id"`                 // Built-in name or scene file path
	DisplayName string `json:"displayName"`        // Human readable name
	Description string `json:"description"`        // Optional description
	Type        string `json:"type"`               // "builtin" or "file"
	FilePath    string `json:"filePath,omitempty"` // Path to the YAML file (file type only)

	builder func(Options) *Scene
}

var builtins = map[string]SceneInfo{
	"single-sphere": {
		ID:          "single-sphere",
		DisplayName: "Single Sphere",
		Description: "One diffuse sphere seen through the fixed image-plane camera",
		Type:        "builtin",
		builder:     NewSingleSphereScene,
	},
	"three-spheres": {
		ID:          "three-spheres",
		DisplayName: "Three Spheres",
		Description: "Diffuse, gold metal and hollow glass spheres on a ground sphere",
		Type:        "builtin",
		builder:     NewThreeSpheresScene,
	},
	"random-spheres": {
		ID:          "random-spheres",
		DisplayName: "Random Spheres",
		Description: "Field of random small spheres around three large ones, with depth of field",
		Type:        "builtin",
		builder:     NewRandomSpheresScene,
	},
}

// ListBuiltins returns the built-in scenes sorted by ID
func ListBuiltins() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, info := range builtins {
		scenes = append(scenes, info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Load builds a built-in scene by name, or reads a YAML scene file when
// nameOrPath has a .yaml or .yml extension
func Load(nameOrPath string, opts Options) (*Scene, error) {
	if IsSceneFile(nameOrPath) {
		return LoadFile(nameOrPath, opts)
	}

	info, ok := builtins[nameOrPath]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownScene, "%q", nameOrPath)
	}
	return info.builder(opts), nil
}
