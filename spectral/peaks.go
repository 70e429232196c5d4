package spectral

import "github.com/cwbudde/algo-vecmath"

// FindPeaks returns the indices of strict local maxima in magnitude whose
// value exceeds threshold times the spectrum maximum.
//
// Index i qualifies only when 1 <= i <= len(magnitude)-2 and magnitude[i] is
// strictly greater than both neighbors; boundary bins are never reported.
// Spectra with fewer than 3 bins yield no peaks. Indices are returned in
// ascending order.
func FindPeaks(magnitude []float64, threshold float64) []int {
	if len(magnitude) < 3 {
		return nil
	}

	// Magnitudes are non-negative, so MaxAbs is the spectrum maximum.
	floor := threshold * vecmath.MaxAbs(magnitude)

	var peaks []int
	for i := 1; i < len(magnitude)-1; i++ {
		v := magnitude[i]
		if v > magnitude[i-1] && v > magnitude[i+1] && v > floor {
			peaks = append(peaks, i)
		}
	}

	return peaks
}
