package renderer

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Validate checks that the configuration can produce an image
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, c.MaxDepth)
	}
	return nil
}

// Raytracer renders rows of a scene by averaging path-traced samples
type Raytracer struct {
	world      geometry.Hittable
	camera     *Camera
	integrator integrator.Integrator
	config     SamplingConfig
}

// NewRaytracer creates a new raytracer
func NewRaytracer(world geometry.Hittable, camera *Camera, integ integrator.Integrator, config SamplingConfig) *Raytracer {
	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integ,
		config:     config,
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// Width returns the image width
func (rt *Raytracer) Width() int { return rt.config.Width }

// Height returns the image height
func (rt *Raytracer) Height() int { return rt.config.Height }

// SamplesPerPixel returns the number of samples averaged per pixel
func (rt *Raytracer) SamplesPerPixel() int { return rt.config.SamplesPerPixel }

// RenderRow renders image row y, averaging SamplesPerPixel jittered samples per pixel
func (rt *Raytracer) RenderRow(y int, random *rand.Rand) []core.Color {
	pixels := make([]core.Color, rt.config.Width)

	// Single-pixel dimensions map to the viewport edge instead of dividing by zero
	sDenom := float64(max(rt.config.Width-1, 1))
	tDenom := float64(max(rt.config.Height-1, 1))

	for i := range pixels {
		var colorAccum core.Color

		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			// Convert pixel coordinates to normalized coordinates with jitter
			s := (float64(i) + random.Float64()) / sDenom
			t := (float64(y) + random.Float64()) / tDenom

			ray := rt.camera.GetRay(s, t, random)
			colorAccum.AddAssign(rt.integrator.RayColor(ray, rt.world, rt.config.MaxDepth, random))
		}

		colorAccum.DivideAssign(float64(rt.config.SamplesPerPixel))
		pixels[i] = colorAccum
	}

	return pixels
}
