package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          *geometry.World // nil for scenes colored directly by pixel position
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
}

// newScene builds the camera and derives the image height from the aspect ratio
func newScene(name string, world *geometry.World, cameraConfig renderer.CameraConfig, samplingConfig renderer.SamplingConfig) *Scene {
	s := &Scene{
		Name:           name,
		World:          world,
		Camera:         renderer.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		SamplingConfig: samplingConfig,
	}
	s.SetWidth(samplingConfig.Width)
	return s
}

// SetWidth changes the image width, keeping the camera aspect ratio
func (s *Scene) SetWidth(width int) {
	s.SamplingConfig.Width = width
	s.SamplingConfig.Height = max(1, int(float64(width)/s.CameraConfig.AspectRatio))
}

// Renderer returns the row renderer for the scene.
// Scenes without a world render the coordinate gradient and ignore integ.
func (s *Scene) Renderer(integ integrator.Integrator) renderer.RowRenderer {
	if s.World == nil {
		return renderer.NewGradientRenderer(s.SamplingConfig.Width, s.SamplingConfig.Height)
	}
	return renderer.NewRaytracer(s.World, s.Camera, integ, s.SamplingConfig)
}

// NewGradientScene creates the 256x256 test pattern: red grows to the
// right, green grows upward, blue is constant
func NewGradientScene() *Scene {
	return newScene("gradient", nil, renderer.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 1,
	}, renderer.SamplingConfig{
		Width:           256,
		SamplesPerPixel: 1,
		MaxDepth:        1,
	})
}

// featureCameraConfig frames the three large spheres from the front right
func featureCameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   3.0 / 2.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}
}

// groundAndFeatureSpheres returns the big ground sphere and the glass, diffuse and metal spheres
func groundAndFeatureSpheres() []geometry.Hittable {
	return []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.1)),
	}
}
