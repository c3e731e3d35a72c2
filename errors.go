package spectral

import "errors"

var (
	// ErrInvalidLength reports a transform dimension below the minimum a
	// plan supports.
	ErrInvalidLength = errors.New("spectral: invalid transform length")

	// ErrNotPowerOfTwo reports a dimension that must be a power of two
	// but is not.
	ErrNotPowerOfTwo = errors.New("spectral: dimension is not a power of two")

	// ErrShortSlice reports input shorter than the transform requires.
	ErrShortSlice = errors.New("spectral: slice too short")

	// ErrShape reports nested array input whose dimensions do not match
	// the plan.
	ErrShape = errors.New("spectral: array shape does not match plan")
)
