package transform

import "github.com/mjibson/go-dsp/fft"

// GoDSP is a [Transformer] backed by the go-dsp fft package.
type GoDSP struct{}

// NewGoDSP returns the go-dsp backed Transformer.
func NewGoDSP() GoDSP { return GoDSP{} }

// Forward computes the unscaled one-sided transform of signal.
func (GoDSP) Forward(signal []float64) ([]complex128, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}

	full := fft.FFTReal(signal)

	return full[:BinCount(len(signal))], nil
}

// Inverse reconstructs nSamples real samples from a one-sided spectrum.
// go-dsp's IFFT carries the 1/n normalization.
func (GoDSP) Inverse(spectrum []complex128, nSamples int) ([]float64, error) {
	if err := validateInverse(spectrum, nSamples); err != nil {
		return nil, err
	}

	full := fft.IFFT(extendHermitian(spectrum, nSamples))

	out := make([]float64, nSamples)
	for i, c := range full {
		out[i] = real(c)
	}

	return out, nil
}
