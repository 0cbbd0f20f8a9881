package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// PathTracingIntegrator implements unidirectional path tracing by direct recursion
type PathTracingIntegrator struct {
	background SkyGradient
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(background SkyGradient) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		background: background,
	}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, depth int, random *rand.Rand) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return pt.background.Evaluate(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, depth-1, random))
}

// IterativePathTracingIntegrator produces the same estimate as
// PathTracingIntegrator with a loop, so stack use does not grow with depth
type IterativePathTracingIntegrator struct {
	background SkyGradient
}

// NewIterativePathTracingIntegrator creates a new iterative path tracing integrator
func NewIterativePathTracingIntegrator(background SkyGradient) *IterativePathTracingIntegrator {
	return &IterativePathTracingIntegrator{
		background: background,
	}
}

// RayColor computes the color for a single ray, accumulating attenuation per bounce
func (it *IterativePathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, depth int, random *rand.Rand) core.Color {
	throughput := core.NewVec3(1, 1, 1)

	for ; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(it.background.Evaluate(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
		if !didScatter {
			return core.Vec3{X: 0, Y: 0, Z: 0}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return core.Vec3{X: 0, Y: 0, Z: 0}
}
