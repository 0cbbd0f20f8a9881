package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/nfnt/resize"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// ImageSink collects rows into an in-memory RGBA image for PNG export
type ImageSink struct {
	img      *image.RGBA
	quantize Quantizer
	rows     int
}

// NewImageSink creates a sink for a width x height image
func NewImageSink(width, height int, quantize Quantizer) *ImageSink {
	return &ImageSink{
		img:      image.NewRGBA(image.Rect(0, 0, width, height)),
		quantize: quantize,
	}
}

// WriteRow stores the row at image line row.Index (0 = top)
func (s *ImageSink) WriteRow(row renderer.Row) error {
	bounds := s.img.Bounds()
	if len(row.Pixels) != bounds.Dx() {
		return fmt.Errorf("%w: row %d has %d pixels, expected %d", renderer.ErrRowWidth, row.Index, len(row.Pixels), bounds.Dx())
	}
	if row.Index < 0 || row.Index >= bounds.Dy() {
		return fmt.Errorf("%w: row %d outside image of height %d", ErrRowOrder, row.Index, bounds.Dy())
	}

	for x, pixel := range row.Pixels {
		r, g, b := s.quantize(pixel)
		s.img.SetRGBA(x, row.Index, color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
	}
	s.rows++
	return nil
}

// Image returns the collected image
func (s *ImageSink) Image() *image.RGBA {
	return s.img
}

// Complete reports whether every row has been written
func (s *ImageSink) Complete() bool {
	return s.rows == s.img.Bounds().Dy()
}

// EncodePNG writes the image as PNG to w
func (s *ImageSink) EncodePNG(w io.Writer) error {
	if !s.Complete() {
		return fmt.Errorf("%w: have %d of %d rows", ErrIncompleteImage, s.rows, s.img.Bounds().Dy())
	}
	return png.Encode(w, s.img)
}

// WritePNG saves the image as a PNG file
func (s *ImageSink) WritePNG(filename string) error {
	return writeFile(filename, s.EncodePNG)
}

// EncodeThumbnail writes a Lanczos-downscaled preview of the given width as PNG.
// The height follows the image aspect ratio.
func (s *ImageSink) EncodeThumbnail(w io.Writer, width int) error {
	if !s.Complete() {
		return fmt.Errorf("%w: have %d of %d rows", ErrIncompleteImage, s.rows, s.img.Bounds().Dy())
	}
	if width <= 0 {
		return fmt.Errorf("thumbnail width must be positive, got %d", width)
	}
	thumbnail := resize.Resize(uint(width), 0, s.img, resize.Lanczos3)
	return png.Encode(w, thumbnail)
}

// WriteThumbnail saves a downscaled preview as a PNG file
func (s *ImageSink) WriteThumbnail(filename string, width int) error {
	return writeFile(filename, func(w io.Writer) error {
		return s.EncodeThumbnail(w, width)
	})
}

func writeFile(filename string, encode func(io.Writer) error) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}

	if err := encode(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	return file.Close()
}
