package transform

import (
	"errors"
	"fmt"
)

// Errors returned by transform backends.
var (
	ErrEmptyInput       = errors.New("transform: empty input")
	ErrBinCountMismatch = errors.New("transform: bin count inconsistent with sample count")
)

// Transformer is the raw one-sided discrete Fourier transform contract.
//
// Forward returns len(signal)/2+1 unscaled coefficients
//
//	X[k] = sum_j x[j] * exp(-2*pi*i*j*k/n)
//
// of the implied n-periodic real signal. Inverse reconstructs nSamples real
// samples from such coefficients via Hermitian-symmetric extension and
// includes the 1/n inverse normalization, so Inverse(Forward(x), len(x))
// reproduces x up to rounding.
type Transformer interface {
	Forward(signal []float64) ([]complex128, error)
	Inverse(spectrum []complex128, nSamples int) ([]float64, error)
}

// BinCount returns the one-sided bin count for n time-domain samples.
func BinCount(n int) int { return n/2 + 1 }

func validateInverse(spectrum []complex128, nSamples int) error {
	if nSamples <= 0 {
		return fmt.Errorf("%w: %d samples", ErrBinCountMismatch, nSamples)
	}

	if len(spectrum) != BinCount(nSamples) {
		return fmt.Errorf("%w: %d bins for %d samples", ErrBinCountMismatch, len(spectrum), nSamples)
	}

	return nil
}

// extendHermitian expands a one-sided spectrum to the full n-point spectrum
// of a real signal: full[n-k] = conj(full[k]).
func extendHermitian(spectrum []complex128, n int) []complex128 {
	full := make([]complex128, n)
	copy(full, spectrum)

	for k := len(spectrum); k < n; k++ {
		c := spectrum[n-k]
		full[k] = complex(real(c), -imag(c))
	}

	return full
}
