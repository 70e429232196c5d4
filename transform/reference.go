package transform

import "math"

// Reference is a direct O(n^2) evaluation of the [Transformer] contract.
//
// It exists to verify the optimized backends and the analyzer numerically,
// independent of any FFT library. It is far too slow for production use.
type Reference struct{}

// NewReference returns the direct-evaluation Transformer.
func NewReference() Reference { return Reference{} }

// Forward computes the unscaled one-sided transform of signal.
func (Reference) Forward(signal []float64) ([]complex128, error) {
	n := len(signal)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]complex128, BinCount(n))
	for k := range out {
		w := -2 * math.Pi * float64(k) / float64(n)

		var sumRe, sumIm float64
		for j, x := range signal {
			s, c := math.Sincos(w * float64(j))
			sumRe += x * c
			sumIm += x * s
		}

		out[k] = complex(sumRe, sumIm)
	}

	return out, nil
}

// Inverse reconstructs nSamples real samples from a one-sided spectrum.
func (Reference) Inverse(spectrum []complex128, nSamples int) ([]float64, error) {
	if err := validateInverse(spectrum, nSamples); err != nil {
		return nil, err
	}

	full := extendHermitian(spectrum, nSamples)
	invN := 1 / float64(nSamples)

	out := make([]float64, nSamples)
	for j := range out {
		w := 2 * math.Pi * float64(j) / float64(nSamples)

		var sum float64
		for k, c := range full {
			s, cs := math.Sincos(w * float64(k))
			sum += real(c)*cs - imag(c)*s
		}

		out[j] = sum * invN
	}

	return out, nil
}
