package renderer

import (
	"math/rand"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Row is one fully resolved image row.
// Index is the enumeration order (0 = top row); Y is the image-space row
// coordinate, which counts up from the bottom.
type Row struct {
	Index  int
	Y      int
	Pixels []core.Color
}

// RowRenderer produces the averaged pixel colors of one image row.
// Implementations are shared by all workers and must not mutate state in RenderRow.
type RowRenderer interface {
	Width() int
	Height() int
	RenderRow(y int, random *rand.Rand) []core.Color
}

// SampleCounter is implemented by row renderers that take multiple samples per pixel
type SampleCounter interface {
	SamplesPerPixel() int
}

// RowSink consumes rows in strictly ascending Index order
type RowSink interface {
	WriteRow(row Row) error
}

// RowSinkFunc adapts a function to the RowSink interface
type RowSinkFunc func(row Row) error

// WriteRow calls f(row)
func (f RowSinkFunc) WriteRow(row Row) error {
	return f(row)
}

// RowSeed returns the random seed for the row with the given enumeration index.
// Seeding per row makes the output independent of which worker renders it.
func RowSeed(seed int64, index int) int64 {
	return seed + int64(index)
}

// rowY maps an enumeration index to the image-space row, top to bottom
func rowY(height, index int) int {
	return height - 1 - index
}

// renderRow renders the row at enumeration index with its own deterministic generator
func renderRow(rr RowRenderer, index int, seed int64) Row {
	y := rowY(rr.Height(), index)
	random := rand.New(rand.NewSource(RowSeed(seed, index)))
	return Row{
		Index:  index,
		Y:      y,
		Pixels: rr.RenderRow(y, random),
	}
}
