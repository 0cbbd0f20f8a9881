package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: image width and height must be positive")
	ErrInvalidSamples    = errors.New("renderer: samples per pixel must be positive")
	ErrInvalidDepth      = errors.New("renderer: max depth must be positive")
	ErrRowWidth          = errors.New("renderer: row width does not match image width")
	ErrDuplicateRow      = errors.New("renderer: row delivered more than once")
	ErrRowsLost          = errors.New("renderer: rows still buffered at shutdown")
)
