package integrator

import (
	"math/rand"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// ShadowAcneEpsilon is the lower bound of the intersection interval.
// Scattered rays start exactly on a surface; a zero bound would let them
// re-hit that surface due to floating-point error.
const ShadowAcneEpsilon = 0.001

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance carried back along ray, following at
	// most depth bounces. The world must not be mutated during the call.
	RayColor(ray core.Ray, world geometry.Hittable, depth int, random *rand.Rand) core.Color
}

// SkyGradient is the background seen by rays that escape the scene
type SkyGradient struct {
	Top    core.Color // Color straight up
	Bottom core.Color // Color straight down
}

// DefaultSkyGradient returns the white to light blue sky
func DefaultSkyGradient() SkyGradient {
	return SkyGradient{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Evaluate returns the sky color for a ray direction
func (s SkyGradient) Evaluate(r core.Ray) core.Color {
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return s.Bottom.Multiply(1.0 - t).Add(s.Top.Multiply(t))
}
