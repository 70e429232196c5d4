// Package spectral provides one-shot spectral analysis of real-valued
// signals: forward and inverse one-sided Fourier transforms, magnitude and
// phase spectra, dominant-frequency peak detection, and power spectral
// density.
//
// The discrete Fourier transform itself is delegated to an injected
// [transform.Transformer] backend; this package does not implement an FFT.
//
// The forward transform scales every bin by 1/n, so bin 0 holds the signal
// mean and a unit sinusoid at an exact bin frequency has magnitude 0.5.
// Inverse undoes this scaling exactly, which makes forward/inverse a strict
// round trip.
package spectral
