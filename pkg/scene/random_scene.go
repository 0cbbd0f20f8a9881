package scene

import (
	"math/rand"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

const (
	smallSphereRadius = 0.2
	gridExtent        = 11 // small spheres are placed on the grid [-11, 11) x [-11, 11)
)

// featureClearancePoint keeps small spheres away from the metal feature sphere
var featureClearancePoint = core.NewVec3(4, 0.2, 0)

// NewRandomScene creates the ground sphere, the three feature spheres and
// a field of small spheres whose placement and materials are drawn from random
func NewRandomScene(random *rand.Rand) *Scene {
	world := geometry.NewWorld(groundAndFeatureSpheres()...)

	for a := -gridExtent; a < gridExtent; a++ {
		for b := -gridExtent; b < gridExtent; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				smallSphereRadius,
				float64(b)+0.9*random.Float64(),
			)

			if center.Subtract(featureClearancePoint).Length() <= 0.9 {
				continue
			}

			world.Add(geometry.NewSphere(center, smallSphereRadius, randomMaterial(chooseMat, random)))
		}
	}

	return newScene("random", world, featureCameraConfig(), renderer.SamplingConfig{
		Width:           600,
		SamplesPerPixel: 50,
		MaxDepth:        50,
	})
}

// randomMaterial picks diffuse, metal or glass by the thresholds 0.8 and 0.95
func randomMaterial(chooseMat float64, random *rand.Rand) material.Material {
	switch {
	case chooseMat < 0.8:
		albedo := core.RandomVec3(random).MultiplyVec(core.RandomVec3(random))
		return material.NewLambertian(albedo)
	case chooseMat < 0.95:
		albedo := core.RandomVec3Range(random, 0.5, 1)
		fuzz := core.RandomFloatRange(random, 0, 0.5)
		return material.NewMetal(albedo, fuzz)
	default:
		return material.NewDielectric(1.5)
	}
}
