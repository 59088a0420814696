package analysis

import "testing"

func TestAnalyzeSpectral_SineWavePeakFrequencyNearFundamental(t *testing.T) {
	samples := sineWave(440, 2, testSampleRate)
	result := analyzeSpectral(samples, testSampleRate)

	if result.peakFrequency < 400 || result.peakFrequency > 480 {
		t.Errorf("expected peak frequency near 440Hz, got %v", result.peakFrequency)
	}
}

func TestAnalyzeSpectral_TooShortReturnsZeroValue(t *testing.T) {
	samples := make([]float32, 100)
	result := analyzeSpectral(samples, testSampleRate)

	if result != (spectralResult{}) {
		t.Errorf("expected zero-value spectralResult for a too-short buffer, got %+v", result)
	}
}

func TestFrameCount(t *testing.T) {
	if got := frameCount(100, 2048, 1024); got != 0 {
		t.Errorf("expected 0 frames for a too-short buffer, got %d", got)
	}
	if got := frameCount(2048+1024*3, 2048, 1024); got != 3 {
		t.Errorf("expected 3 frames, got %d", got)
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 1000: 1024, 1024: 1024, 1025: 2048}
	for in, want := range cases {
		if got := nextPowerOfTwo(in); got != want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", in, got, want)
		}
	}
}
