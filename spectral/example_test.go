package spectral_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/spectral"
)

func ExampleAnalyzer_Analyze() {
	sampleRate := 1000.0
	n := 1000

	// 10 Hz and 50 Hz tones, one second at 1000 Hz.
	signal := make([]float64, n)
	for i := range signal {
		t := float64(i) / sampleRate
		signal[i] = math.Sin(2*math.Pi*10*t) + 0.5*math.Sin(2*math.Pi*50*t)
	}

	analyzer, err := spectral.New(sampleRate)
	if err != nil {
		panic(err)
	}

	report, err := analyzer.Analyze(signal)
	if err != nil {
		panic(err)
	}

	fmt.Printf("resolution: %.0f Hz\n", report.Parameters.FreqResolution)
	for _, f := range report.DominantFrequencies {
		fmt.Printf("peak: %.0f Hz\n", f)
	}
	// Output:
	// resolution: 1 Hz
	// peak: 10 Hz
	// peak: 50 Hz
}

func ExampleAnalyzer_Inverse() {
	analyzer, _ := spectral.New(8000)

	signal := make([]float64, 256)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * 440 * float64(i) / 8000)
	}

	res, _ := analyzer.Forward(signal)
	rec, _ := analyzer.Inverse(res.Spectrum, len(signal))

	maxErr := 0.0
	for i := range signal {
		if d := math.Abs(signal[i] - rec[i]); d > maxErr {
			maxErr = d
		}
	}

	fmt.Printf("round trip below 1e-9: %t\n", maxErr < 1e-9)
	// Output:
	// round trip below 1e-9: true
}

func ExampleFindPeaks() {
	magnitude := []float64{0, 1, 0.2, 3, 0}

	fmt.Println(spectral.FindPeaks(magnitude, 0.1))
	// Output:
	// [1 3]
}
