package monitor

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-audio/wav"

	"github.com/easeaico/wellness-companion/internal/types"
)

// Clip is a decoded recording with mono samples in [-1,1].
type Clip struct {
	Recording types.Recording
	Samples   []float32
}

// LoadWAV decodes a WAV session recording.
func LoadWAV(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recording: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, errors.New("invalid wav")
	}
	pb, err := dec.FullPCMBuffer()
	if err != nil || pb == nil || pb.Data == nil {
		if err == nil {
			err = errors.New("empty wav")
		}
		return nil, fmt.Errorf("failed to decode recording: %w", err)
	}

	bd := int(dec.BitDepth)
	if bd == 0 {
		bd = 16
	}
	ch := 1
	sr := 44100
	if pb.Format != nil {
		if pb.Format.NumChannels > 0 {
			ch = pb.Format.NumChannels
		}
		if pb.Format.SampleRate > 0 {
			sr = pb.Format.SampleRate
		}
	}

	samples := downmix(pb.Data, ch, bd)
	var peak float64
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(float64(s)))
	}

	return &Clip{
		Recording: types.Recording{
			Path:       path,
			MimeType:   "audio/wav",
			Duration:   time.Duration(len(samples)) * time.Second / time.Duration(sr),
			SampleRate: sr,
			Channels:   ch,
			Peak:       peak,
		},
		Samples: samples,
	}, nil
}

// downmix averages interleaved integer frames into normalized mono samples.
func downmix(data []int, channels, bitDepth int) []float32 {
	scale := float64(int64(1) << (bitDepth - 1))
	frames := len(data) / channels
	out := make([]float32, frames)
	for i := range frames {
		var sum float64
		for c := range channels {
			sum += float64(data[i*channels+c])
		}
		out[i] = float32(sum / float64(channels) / scale)
	}
	return out
}
