package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// ErrUnknownScene is returned by Lookup for names that are not registered
var ErrUnknownScene = errors.New("scene: unknown scene")

// Scene types
const (
	TypeRaytraced = "raytraced"
	TypeGradient  = "gradient"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name used on the command line
	DisplayName string
	Description string
	Type        string // TypeRaytraced or TypeGradient
	build       func(random *rand.Rand) *Scene
}

// New constructs the scene, drawing any procedural placement from random
func (info SceneInfo) New(random *rand.Rand) *Scene {
	return info.build(random)
}

var builtInScenes = []SceneInfo{
	{
		ID:          "random",
		DisplayName: "Random Spheres",
		Description: "Hundreds of small random spheres around three large feature spheres",
		Type:        TypeRaytraced,
		build:       NewRandomScene,
	},
	{
		ID:          "four-spheres",
		DisplayName: "Four Spheres",
		Description: "Ground sphere with glass, diffuse and metal feature spheres",
		Type:        TypeRaytraced,
		build:       func(*rand.Rand) *Scene { return NewFourSpheresScene() },
	},
	{
		ID:          "materials",
		DisplayName: "Materials",
		Description: "Hollow glass, diffuse and metal spheres side by side",
		Type:        TypeRaytraced,
		build:       func(*rand.Rand) *Scene { return NewMaterialsScene() },
	},
	{
		ID:          "gradient",
		DisplayName: "Gradient",
		Description: "256x256 color gradient computed from pixel coordinates",
		Type:        TypeGradient,
		build:       func(*rand.Rand) *Scene { return NewGradientScene() },
	},
}

// ListScenes returns the built-in scenes in registration order
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtInScenes))
	copy(scenes, builtInScenes)
	return scenes
}

// Lookup finds a built-in scene by ID, ignoring case
func Lookup(id string) (SceneInfo, error) {
	for _, info := range builtInScenes {
		if strings.EqualFold(info.ID, id) {
			return info, nil
		}
	}
	return SceneInfo{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, id, strings.Join(sceneIDs(), ", "))
}

func sceneIDs() []string {
	ids := make([]string, len(builtInScenes))
	for i, info := range builtInScenes {
		ids[i] = info.ID
	}
	return ids
}
