package renderer

import (
	"math/rand"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// GradientRenderer colors each pixel directly from its coordinates, without
// geometry or sampling: red grows left to right, green bottom to top.
type GradientRenderer struct {
	width, height int
	blue          float64
}

// NewGradientRenderer creates a gradient renderer with a constant blue channel of 0.25
func NewGradientRenderer(width, height int) *GradientRenderer {
	return &GradientRenderer{width: width, height: height, blue: 0.25}
}

// Width returns the image width
func (g *GradientRenderer) Width() int { return g.width }

// Height returns the image height
func (g *GradientRenderer) Height() int { return g.height }

// RenderRow ignores random; the gradient is fully determined by position
func (g *GradientRenderer) RenderRow(y int, random *rand.Rand) []core.Color {
	pixels := make([]core.Color, g.width)
	for i := range pixels {
		pixels[i] = core.NewVec3(
			float64(i)/float64(max(g.width-1, 1)),
			float64(y)/float64(max(g.height-1, 1)),
			g.blue,
		)
	}
	return pixels
}
