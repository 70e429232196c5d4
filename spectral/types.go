package spectral

// TransformParameters describes the frequency grid derived from an input
// signal length at a fixed sample rate. Values are immutable once computed.
type TransformParameters struct {
	SampleRate     float64 // sampling rate in Hz
	FreqResolution float64 // spacing between adjacent bins in Hz
	NSamples       int     // time-domain sample count
	NFrequencies   int     // one-sided bin count, NSamples/2 + 1
}

// Nyquist returns the highest representable frequency, SampleRate/2.
func (p TransformParameters) Nyquist() float64 { return p.SampleRate / 2 }

// TransformResult holds the one-sided spectrum of a real signal along with
// its frequency axis. All four slices are index-aligned: index i refers to
// the same frequency bin in each.
type TransformResult struct {
	Frequencies []float64    // bin center frequencies in Hz
	Spectrum    []complex128 // complex bins, scaled by 1/NSamples
	Magnitude   []float64    // |Spectrum[i]|
	Phase       []float64    // arg(Spectrum[i]) in (-pi, pi]
}

// Shape holds spectral shape descriptors of a magnitude spectrum.
type Shape struct {
	Centroid float64 // magnitude-weighted mean frequency (Hz)
	Spread   float64 // standard deviation around the centroid (Hz)
	Flatness float64 // Wiener entropy, 0..1, DC bin excluded
	Rolloff  float64 // frequency below which 85% of the energy lies (Hz)
}

// AnalysisReport is the composite result of [Analyzer.Analyze].
type AnalysisReport struct {
	Parameters           TransformParameters
	Transform            TransformResult
	DominantFrequencies  []float64 // frequencies at detected peaks, ascending
	PowerSpectralDensity []float64 // |Spectrum[i]|^2 per bin
	SignalEnergy         float64   // sum of PowerSpectralDensity
	Shape                Shape
}
