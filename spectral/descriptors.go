package spectral

import "math"

const rolloffFraction = 0.85

// ShapeOf computes spectral shape descriptors from an index-aligned
// frequency axis and magnitude spectrum (linear scale, not dB).
//
// Spectra with fewer than 2 bins, mismatched lengths, or no content yield
// zero descriptors.
func ShapeOf(frequencies, magnitude []float64) Shape {
	n := len(magnitude)
	if n < 2 || len(frequencies) != n {
		return Shape{}
	}

	sum := 0.0
	energy := 0.0
	for _, v := range magnitude {
		sum += v
		energy += v * v
	}

	if sum == 0 {
		return Shape{}
	}

	var s Shape

	weighted := 0.0
	for i, v := range magnitude {
		weighted += frequencies[i] * v
	}
	s.Centroid = weighted / sum

	sqSum := 0.0
	for i, v := range magnitude {
		d := frequencies[i] - s.Centroid
		sqSum += d * d * v
	}
	s.Spread = math.Sqrt(sqSum / sum)

	s.Flatness = flatness(magnitude)
	s.Rolloff = rolloff(frequencies, magnitude, rolloffFraction, energy)

	return s
}

// flatness computes the Wiener entropy over bins 1..n-1, skipping DC.
func flatness(magnitude []float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}

	sumLin := 0.0
	sumLog := 0.0
	for i := 1; i < n; i++ {
		v := magnitude[i]
		if v <= 0 {
			// A zero bin forces the geometric mean, and thus flatness, to zero.
			return 0
		}

		sumLin += v
		sumLog += math.Log(v)
	}

	bins := float64(n - 1)
	meanLin := sumLin / bins
	if meanLin == 0 {
		return 0
	}

	return math.Exp(sumLog/bins) / meanLin
}

// rolloff returns the frequency below which the given fraction of spectral
// energy (sum of squared magnitudes) lies.
func rolloff(frequencies, magnitude []float64, fraction, totalEnergy float64) float64 {
	if totalEnergy == 0 {
		return 0
	}

	threshold := fraction * totalEnergy
	cum := 0.0
	for i, v := range magnitude {
		cum += v * v
		if cum >= threshold {
			return frequencies[i]
		}
	}

	return frequencies[len(frequencies)-1]
}
