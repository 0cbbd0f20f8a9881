package output

import "errors"

var (
	ErrIncompleteImage = errors.New("output: image closed before every row was written")
	ErrRowOrder        = errors.New("output: row written out of order")
	ErrInvalidPPM      = errors.New("output: invalid PPM data")
)
