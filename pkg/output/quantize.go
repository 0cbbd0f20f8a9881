package output

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Quantizer converts an averaged linear color to 8-bit channel values
type Quantizer func(c core.Color) (r, g, b int)

// GammaQuantizer applies gamma 2 correction and maps [0, 0.999] onto 0..255
func GammaQuantizer(c core.Color) (r, g, b int) {
	gamma := func(v float64) int {
		v = math.Sqrt(math.Max(v, 0))
		return int(256 * math.Max(0, math.Min(v, 0.999)))
	}
	return gamma(c.X), gamma(c.Y), gamma(c.Z)
}

// LinearQuantizer maps [0, 1] onto 0..255 by truncating value*255
func LinearQuantizer(c core.Color) (r, g, b int) {
	linear := func(v float64) int {
		return int(255 * math.Max(0, math.Min(v, 1)))
	}
	return linear(c.X), linear(c.Y), linear(c.Z)
}
