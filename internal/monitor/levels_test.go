package monitor

import (
	"math"
	"testing"
)

func TestBarsSilenceUsesMinimumHeight(t *testing.T) {
	bars := Bars(make([]byte, DefaultBinCount), 10)
	if len(bars) != 10 {
		t.Fatalf("expected 10 bars, got %d", len(bars))
	}
	for i, h := range bars {
		if h != minBarHeight {
			t.Fatalf("bar %d: expected %d, got %v", i, minBarHeight, h)
		}
	}
}

func TestBarsScalesByAverage(t *testing.T) {
	freq := make([]byte, 10)
	for i := range freq {
		freq[i] = 255
	}
	// avg 255 -> height = 1 * 50 * 255/50 = 255
	bars := Bars(freq, 3)
	if math.Abs(bars[0]-255) > 1e-9 || math.Abs(bars[1]-255) > 1e-9 {
		t.Fatalf("unexpected full-scale bars: %v", bars)
	}
	// index 10 is past the data
	if bars[2] != minBarHeight {
		t.Fatalf("expected minimum height past the data, got %v", bars[2])
	}
}

func TestBarsSamplesEveryFifthBin(t *testing.T) {
	freq := make([]byte, 10)
	freq[5] = 200
	// avg 20 -> height = 200/255 * 50 * 20/50
	bars := Bars(freq, 2)
	want := 200.0 / 255 * 50 * (20.0 / 50)
	if bars[0] != minBarHeight || math.Abs(bars[1]-want) > 1e-9 {
		t.Fatalf("unexpected bars: %v (want second %v)", bars, want)
	}
}

func TestBarsInvalidCount(t *testing.T) {
	if Bars([]byte{1, 2, 3}, 0) != nil {
		t.Fatalf("expected nil for zero bars")
	}
}

func TestSpectrumFromPCM(t *testing.T) {
	samples := []float32{0, 0.5, -1, 0.25, 0, 0, 0.1, -0.2}
	got := SpectrumFromPCM(samples, 4)
	want := []byte{128, 255, 0, 51}
	if len(got) != len(want) {
		t.Fatalf("expected %d levels, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("level %d: expected %d, got %d", i, want[i], got[i])
		}
	}

	if SpectrumFromPCM(nil, 4) != nil {
		t.Fatalf("expected nil for empty samples")
	}
}
