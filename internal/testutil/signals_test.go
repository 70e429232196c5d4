package testutil

import (
	"math"
	"testing"
)

func TestSinePeriod(t *testing.T) {
	// 1 Hz at 8 Hz sampling: zero crossings every 4 samples.
	s := Sine(1, 8, 1, 9)

	if math.Abs(s[0]) > 1e-12 || math.Abs(s[4]) > 1e-12 || math.Abs(s[8]) > 1e-12 {
		t.Fatalf("zero crossings missing: %v", s)
	}

	if math.Abs(s[2]-1) > 1e-12 {
		t.Fatalf("s[2]=%f, want 1", s[2])
	}
}

func TestTwoToneIsSum(t *testing.T) {
	a := Sine(3, 100, 1, 32)
	b := Sine(7, 100, 0.5, 32)
	sum := TwoTone(3, 1, 7, 0.5, 100, 32)

	for i := range sum {
		if math.Abs(sum[i]-(a[i]+b[i])) > 1e-12 {
			t.Fatalf("index %d: %f, want %f", i, sum[i], a[i]+b[i])
		}
	}
}

func TestNoiseDeterministic(t *testing.T) {
	a := Noise(42, 1, 64)
	b := Noise(42, 1, 64)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d differs for identical seeds", i)
		}

		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("index %d out of range: %f", i, a[i])
		}
	}
}

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	if err != nil {
		t.Fatalf("MaxAbsDiff: %v", err)
	}

	if d != 1 {
		t.Fatalf("d=%f, want 1", d)
	}

	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatalf("expected error for mismatched lengths")
	}
}
