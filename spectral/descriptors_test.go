package spectral

import (
	"math"
	"testing"
)

func linearFreqs(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func TestShapeOfSingleBin(t *testing.T) {
	mag := make([]float64, 16)
	mag[4] = 2

	s := ShapeOf(linearFreqs(16), mag)

	if math.Abs(s.Centroid-4) > tolerance {
		t.Fatalf("Centroid=%f, want 4", s.Centroid)
	}

	if s.Spread > tolerance {
		t.Fatalf("Spread=%f, want 0", s.Spread)
	}

	// Zero bins force the geometric mean to zero.
	if s.Flatness != 0 {
		t.Fatalf("Flatness=%f, want 0", s.Flatness)
	}

	if math.Abs(s.Rolloff-4) > tolerance {
		t.Fatalf("Rolloff=%f, want 4", s.Rolloff)
	}
}

func TestShapeOfFlatSpectrum(t *testing.T) {
	n := 11
	mag := make([]float64, n)
	for i := range mag {
		mag[i] = 1
	}

	s := ShapeOf(linearFreqs(n), mag)

	if math.Abs(s.Centroid-5) > tolerance {
		t.Fatalf("Centroid=%f, want 5", s.Centroid)
	}

	if math.Abs(s.Spread-math.Sqrt(10)) > tolerance {
		t.Fatalf("Spread=%f, want sqrt(10)", s.Spread)
	}

	if math.Abs(s.Flatness-1) > tolerance {
		t.Fatalf("Flatness=%f, want 1 for a flat spectrum", s.Flatness)
	}

	// 85% of the energy (11 bins of 1) is passed at bin 9.
	if math.Abs(s.Rolloff-9) > tolerance {
		t.Fatalf("Rolloff=%f, want 9", s.Rolloff)
	}
}

func TestShapeOfDegenerateInputs(t *testing.T) {
	zero := Shape{}

	if s := ShapeOf(nil, nil); s != zero {
		t.Fatalf("empty input: %+v, want zero Shape", s)
	}

	if s := ShapeOf([]float64{0}, []float64{1}); s != zero {
		t.Fatalf("single bin: %+v, want zero Shape", s)
	}

	if s := ShapeOf([]float64{0, 1}, []float64{0, 0}); s != zero {
		t.Fatalf("silent spectrum: %+v, want zero Shape", s)
	}

	if s := ShapeOf([]float64{0, 1, 2}, []float64{1, 1}); s != zero {
		t.Fatalf("length mismatch: %+v, want zero Shape", s)
	}
}
