package transform

import "gonum.org/v1/gonum/dsp/fourier"

// Gonum is a [Transformer] backed by gonum's real-input FFT.
//
// gonum's fourier.FFT natively produces the one-sided coefficient layout of
// the Transformer contract. Only the inverse normalization differs: gonum's
// round trip is unnormalized and scales by n, which is corrected here.
type Gonum struct{}

// NewGonum returns the gonum backed Transformer.
func NewGonum() Gonum { return Gonum{} }

// Forward computes the unscaled one-sided transform of signal.
func (Gonum) Forward(signal []float64) ([]complex128, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}

	fft := fourier.NewFFT(len(signal))

	return fft.Coefficients(nil, signal), nil
}

// Inverse reconstructs nSamples real samples from a one-sided spectrum.
func (Gonum) Inverse(spectrum []complex128, nSamples int) ([]float64, error) {
	if err := validateInverse(spectrum, nSamples); err != nil {
		return nil, err
	}

	fft := fourier.NewFFT(nSamples)
	out := fft.Sequence(nil, spectrum)

	invN := 1 / float64(nSamples)
	for i := range out {
		out[i] *= invN
	}

	return out, nil
}
