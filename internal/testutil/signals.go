package testutil

import (
	"math"
	"math/rand"
)

// Sine generates a deterministic sine wave sampled at sampleRate.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// TwoTone generates the sum of two deterministic sine waves.
func TwoTone(f1, a1, f2, a2, sampleRate float64, length int) []float64 {
	out := Sine(f1, sampleRate, a1, length)
	for i, v := range Sine(f2, sampleRate, a2, length) {
		out[i] += v
	}
	return out
}

// Noise generates white noise in [-amplitude, amplitude] with a fixed seed
// for reproducibility.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
