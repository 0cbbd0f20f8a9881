package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PPMImage is a decoded P3 image with rows stored top to bottom
type PPMImage struct {
	Width    int
	Height   int
	MaxValue int
	Pixels   [][][3]int // Pixels[row][column]
}

// At returns the channel values at column x of row (0 = top row)
func (img *PPMImage) At(x, row int) [3]int {
	return img.Pixels[row][x]
}

// ReadPPM decodes a plain-text P3 image. Comments start with '#' and run to the end of the line.
func ReadPPM(r io.Reader) (*PPMImage, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var tokens []string
	next := func() (string, error) {
		for len(tokens) == 0 {
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return "", err
				}
				return "", fmt.Errorf("%w: unexpected end of data", ErrInvalidPPM)
			}
			line := scanner.Text()
			if i := strings.IndexByte(line, '#'); i >= 0 {
				line = line[:i]
			}
			tokens = strings.Fields(line)
		}
		token := tokens[0]
		tokens = tokens[1:]
		return token, nil
	}
	nextInt := func(what string) (int, error) {
		token, err := next()
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(token)
		if err != nil || value < 0 {
			return 0, fmt.Errorf("%w: bad %s %q", ErrInvalidPPM, what, token)
		}
		return value, nil
	}

	magic, err := next()
	if err != nil {
		return nil, err
	}
	if magic != "P3" {
		return nil, fmt.Errorf("%w: magic %q, expected P3", ErrInvalidPPM, magic)
	}

	img := &PPMImage{}
	if img.Width, err = nextInt("width"); err != nil {
		return nil, err
	}
	if img.Height, err = nextInt("height"); err != nil {
		return nil, err
	}
	if img.MaxValue, err = nextInt("max value"); err != nil {
		return nil, err
	}

	img.Pixels = make([][][3]int, img.Height)
	for row := range img.Pixels {
		img.Pixels[row] = make([][3]int, img.Width)
		for x := range img.Pixels[row] {
			for c := 0; c < 3; c++ {
				value, err := nextInt("sample")
				if err != nil {
					return nil, fmt.Errorf("pixel (%d, %d): %w", x, row, err)
				}
				if value > img.MaxValue {
					return nil, fmt.Errorf("%w: sample %d exceeds max value %d", ErrInvalidPPM, value, img.MaxValue)
				}
				img.Pixels[row][x][c] = value
			}
		}
	}

	return img, nil
}
