// Package transform defines the discrete Fourier transform contract used by
// the spectral analyzer and provides interchangeable backends for it.
//
// The package intentionally does not implement a fast Fourier transform.
// Every backend delegates to an existing library; [Reference] is a naive
// direct evaluation kept for numerical cross-checking.
package transform
