package transform

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FFT is the default [Transformer].
//
// Power-of-two sizes run through algo-fft plans; the pinned algo-fft release
// miscomputes mixed-radix plan sizes, so all other lengths are delegated to
// the [Gonum] backend, which is exact at arbitrary n. The algo-fft library
// operates on full complex spectra, so real input is packed into a complex
// buffer and the non-negative-frequency half of the result is returned. A
// plan is built per call, which keeps the backend stateless and safe for
// concurrent use.
type FFT struct{}

// NewFFT returns the default Transformer.
func NewFFT() FFT { return FFT{} }

func isPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

// Forward computes the unscaled one-sided transform of signal.
func (FFT) Forward(signal []float64) ([]complex128, error) {
	n := len(signal)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	if !isPowerOfTwo(n) {
		return Gonum{}.Forward(signal)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("transform: fft plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("transform: forward fft: %w", err)
	}

	return out[:BinCount(n)], nil
}

// Inverse reconstructs nSamples real samples from a one-sided spectrum.
// The plan's inverse already carries the 1/n normalization.
func (FFT) Inverse(spectrum []complex128, nSamples int) ([]float64, error) {
	if err := validateInverse(spectrum, nSamples); err != nil {
		return nil, err
	}

	if !isPowerOfTwo(nSamples) {
		return Gonum{}.Inverse(spectrum, nSamples)
	}

	plan, err := algofft.NewPlan64(nSamples)
	if err != nil {
		return nil, fmt.Errorf("transform: fft plan: %w", err)
	}

	full := extendHermitian(spectrum, nSamples)
	if err := plan.Inverse(full, full); err != nil {
		return nil, fmt.Errorf("transform: inverse fft: %w", err)
	}

	out := make([]float64, nSamples)
	for i, c := range full {
		out[i] = real(c)
	}

	return out, nil
}
