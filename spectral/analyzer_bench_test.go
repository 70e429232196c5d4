package spectral

import (
	"testing"

	"github.com/cwbudde/algo-spectral/internal/testutil"
)

func BenchmarkForward(b *testing.B) {
	a, _ := New(48000)
	signal := testutil.TwoTone(440, 1, 1320, 0.25, 48000, 4096)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := a.Forward(signal); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInverse(b *testing.B) {
	a, _ := New(48000)
	signal := testutil.TwoTone(440, 1, 1320, 0.25, 48000, 4096)

	res, err := a.Forward(signal)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := a.Inverse(res.Spectrum, len(signal)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAnalyze(b *testing.B) {
	a, _ := New(48000)
	signal := testutil.TwoTone(440, 1, 1320, 0.25, 48000, 4096)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := a.Analyze(signal); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFindPeaks(b *testing.B) {
	a, _ := New(48000)
	signal := testutil.TwoTone(440, 1, 1320, 0.25, 48000, 4096)

	res, err := a.Forward(signal)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		FindPeaks(res.Magnitude, 0.1)
	}
}
