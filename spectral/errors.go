package spectral

import "errors"

// Errors returned by analyzer operations.
var (
	ErrInvalidSampleRate = errors.New("spectral: sample rate must be > 0")
	ErrEmptySignal       = errors.New("spectral: empty signal")
	ErrDimensionMismatch = errors.New("spectral: spectrum length inconsistent with sample count")
)
