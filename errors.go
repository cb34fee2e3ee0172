package mandel

import "errors"

var (
	ErrInvalidRegion         = errors.New("invalid region")
	ErrInvalidResolution     = errors.New("invalid resolution")
	ErrInvalidIterationBound = errors.New("invalid iteration bound")
	ErrInvalidTile           = errors.New("invalid tile")
	// ErrGridMismatch is returned when counts do not fit the params they claim to belong to.
	ErrGridMismatch = errors.New("grid does not match params")
)
