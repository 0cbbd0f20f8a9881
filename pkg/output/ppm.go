package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// PPMWriter streams rows as a plain-text P3 image.
// Rows must arrive top to bottom; nothing is buffered beyond the current row.
type PPMWriter struct {
	w             *bufio.Writer
	width, height int
	quantize      Quantizer
	headerWritten bool
	rows          int
}

// NewPPMWriter creates a PPM writer for a width x height image
func NewPPMWriter(w io.Writer, width, height int, quantize Quantizer) *PPMWriter {
	return &PPMWriter{
		w:        bufio.NewWriter(w),
		width:    width,
		height:   height,
		quantize: quantize,
	}
}

// WriteHeader writes the P3 header. WriteRow calls it if it has not been called.
func (p *PPMWriter) WriteHeader() error {
	if p.headerWritten {
		return nil
	}
	p.headerWritten = true
	_, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", p.width, p.height)
	return err
}

// WriteRow writes one row as space-separated RGB triples followed by a newline
func (p *PPMWriter) WriteRow(row renderer.Row) error {
	if row.Index != p.rows {
		return fmt.Errorf("%w: got row %d, expected %d", ErrRowOrder, row.Index, p.rows)
	}
	if len(row.Pixels) != p.width {
		return fmt.Errorf("%w: row %d has %d pixels, expected %d", renderer.ErrRowWidth, row.Index, len(row.Pixels), p.width)
	}
	if err := p.WriteHeader(); err != nil {
		return err
	}

	for _, pixel := range row.Pixels {
		r, g, b := p.quantize(pixel)
		if _, err := fmt.Fprintf(p.w, "%d %d %d ", r, g, b); err != nil {
			return err
		}
	}
	if err := p.w.WriteByte('\n'); err != nil {
		return err
	}
	p.rows++
	return nil
}

// Rows returns the number of rows written so far
func (p *PPMWriter) Rows() int {
	return p.rows
}

// Close flushes buffered output and reports an error if rows are missing.
// It does not close the underlying writer.
func (p *PPMWriter) Close() error {
	if err := p.WriteHeader(); err != nil {
		return err
	}
	if err := p.w.Flush(); err != nil {
		return err
	}
	if p.rows != p.height {
		return fmt.Errorf("%w: wrote %d of %d rows", ErrIncompleteImage, p.rows, p.height)
	}
	return nil
}
