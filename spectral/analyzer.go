package spectral

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-spectral/transform"
	"github.com/cwbudde/algo-vecmath"
)

const defaultPeakThreshold = 0.1

// Analyzer computes one-sided spectra of real-valued signals at a fixed
// sample rate.
//
// An Analyzer holds no mutable state, so independent calls may run
// concurrently. The zero value is not usable; construct with [New].
type Analyzer struct {
	sampleRate    float64
	transformer   transform.Transformer
	peakThreshold float64
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithTransformer substitutes the transform backend. Nil is ignored.
func WithTransformer(t transform.Transformer) Option {
	return func(a *Analyzer) {
		if t != nil {
			a.transformer = t
		}
	}
}

// WithPeakThreshold sets the relative magnitude threshold used by Analyze
// for peak detection. Values outside [0,1] are ignored.
func WithPeakThreshold(v float64) Option {
	return func(a *Analyzer) {
		if v >= 0 && v <= 1 {
			a.peakThreshold = v
		}
	}
}

// New creates an Analyzer for the given sample rate in Hz.
// The default backend is [transform.FFT].
func New(sampleRate float64, opts ...Option) (*Analyzer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	a := &Analyzer{
		sampleRate:    sampleRate,
		transformer:   transform.NewFFT(),
		peakThreshold: defaultPeakThreshold,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	return a, nil
}

// SampleRate returns the configured sample rate in Hz.
func (a *Analyzer) SampleRate() float64 { return a.sampleRate }

// Parameters derives the frequency grid for a signal of len(signal) samples.
func (a *Analyzer) Parameters(signal []float64) (TransformParameters, error) {
	n := len(signal)
	if n == 0 {
		return TransformParameters{}, ErrEmptySignal
	}

	return TransformParameters{
		SampleRate:     a.sampleRate,
		FreqResolution: a.sampleRate / float64(n),
		NSamples:       n,
		NFrequencies:   transform.BinCount(n),
	}, nil
}

// Forward computes the one-sided transform of signal.
//
// Frequencies[i] is i*SampleRate/len(signal); bin 0 is DC and, for even
// lengths, the last bin is Nyquist. Each spectrum bin is scaled by
// 1/len(signal) (see the package documentation).
func (a *Analyzer) Forward(signal []float64) (TransformResult, error) {
	params, err := a.Parameters(signal)
	if err != nil {
		return TransformResult{}, err
	}

	spectrum, err := a.transformer.Forward(signal)
	if err != nil {
		return TransformResult{}, fmt.Errorf("spectral: forward transform: %w", err)
	}

	scale := complex(1/float64(params.NSamples), 0)
	for i := range spectrum {
		spectrum[i] *= scale
	}

	freqs := make([]float64, params.NFrequencies)
	for i := range freqs {
		freqs[i] = float64(i) * params.FreqResolution
	}

	re, im, buf := splitParts(spectrum)
	mag := make([]float64, len(spectrum))
	vecmath.Magnitude(mag, re, im)
	putScratch(buf)

	phase := make([]float64, len(spectrum))
	for i, c := range spectrum {
		phase[i] = cmplx.Phase(c)
	}

	return TransformResult{
		Frequencies: freqs,
		Spectrum:    spectrum,
		Magnitude:   mag,
		Phase:       phase,
	}, nil
}

// Inverse reconstructs nSamples real samples from a one-sided spectrum as
// produced by [Analyzer.Forward]. The spectrum must have nSamples/2+1 bins.
func (a *Analyzer) Inverse(spectrum []complex128, nSamples int) ([]float64, error) {
	if nSamples <= 0 || len(spectrum) != transform.BinCount(nSamples) {
		return nil, fmt.Errorf("%w: %d bins for %d samples", ErrDimensionMismatch, len(spectrum), nSamples)
	}

	// Undo the forward 1/n scaling before handing off to the backend.
	scale := complex(float64(nSamples), 0)
	scaled := make([]complex128, len(spectrum))
	for i, c := range spectrum {
		scaled[i] = c * scale
	}

	out, err := a.transformer.Inverse(scaled, nSamples)
	if err != nil {
		return nil, fmt.Errorf("spectral: inverse transform: %w", err)
	}

	return out, nil
}

// Analyze runs Forward and derives dominant frequencies, power spectral
// density, total signal energy, and shape descriptors.
func (a *Analyzer) Analyze(signal []float64) (AnalysisReport, error) {
	params, err := a.Parameters(signal)
	if err != nil {
		return AnalysisReport{}, err
	}

	res, err := a.Forward(signal)
	if err != nil {
		return AnalysisReport{}, err
	}

	peaks := FindPeaks(res.Magnitude, a.peakThreshold)
	dominant := make([]float64, len(peaks))
	for i, p := range peaks {
		dominant[i] = res.Frequencies[p]
	}

	re, im, buf := splitParts(res.Spectrum)
	psd := make([]float64, len(res.Spectrum))
	vecmath.Power(psd, re, im)
	putScratch(buf)

	return AnalysisReport{
		Parameters:           params,
		Transform:            res,
		DominantFrequencies:  dominant,
		PowerSpectralDensity: psd,
		SignalEnergy:         vecmath.Sum(psd),
		Shape:                ShapeOf(res.Frequencies, res.Magnitude),
	}, nil
}
