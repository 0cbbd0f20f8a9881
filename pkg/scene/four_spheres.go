package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// NewFourSpheresScene creates the ground sphere with only the three feature
// spheres, viewed through the same camera as the random scene
func NewFourSpheresScene() *Scene {
	world := geometry.NewWorld(groundAndFeatureSpheres()...)

	return newScene("four-spheres", world, featureCameraConfig(), renderer.SamplingConfig{
		Width:           400,
		SamplesPerPixel: 50,
		MaxDepth:        50,
	})
}
