package monitor

import "math"

const (
	// DefaultBinCount matches an analyser with an FFT size of 256.
	DefaultBinCount = 128
	minBarHeight    = 5
	maxBarHeight    = 50
	barStride       = 5
)

// Bars converts analyser frequency bytes into n bar heights in pixels.
// Every fifth bin drives a bar and the whole row is scaled by the mean
// loudness, so quiet input stays near the minimum height.
func Bars(freq []byte, n int) []float64 {
	if n <= 0 {
		return nil
	}

	var avg float64
	if len(freq) > 0 {
		var sum int
		for _, v := range freq {
			sum += int(v)
		}
		avg = float64(sum) / float64(len(freq))
	}

	bars := make([]float64, n)
	for i := range bars {
		var v float64
		if idx := i * barStride; idx < len(freq) {
			v = float64(freq[idx])
		}
		height := (v / 255) * maxBarHeight * (avg / maxBarHeight)
		bars[i] = math.Max(minBarHeight, height)
	}
	return bars
}

// SpectrumFromPCM reduces normalized samples to size byte levels, one per
// equal window, using the window's peak amplitude.
func SpectrumFromPCM(samples []float32, size int) []byte {
	if size <= 0 || len(samples) == 0 {
		return nil
	}

	out := make([]byte, size)
	window := len(samples) / size
	if window == 0 {
		window = 1
	}
	for i := range out {
		start := i * window
		if start >= len(samples) {
			break
		}
		end := min(start+window, len(samples))
		var peak float64
		for _, s := range samples[start:end] {
			peak = math.Max(peak, math.Abs(float64(s)))
		}
		out[i] = byte(math.Round(math.Min(peak, 1) * 255))
	}
	return out
}
