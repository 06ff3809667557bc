package audio

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dsp/dsp/resample"
)

// Waveform couples PCM samples with their sample rate.
//
// Samples are interleaved when Channels > 1. After mixdown the waveform is
// always mono with a plain 1-D sample slice.
type Waveform struct {
	Samples  []float64
	Rate     int
	Channels int
}

// NewMono creates a mono waveform from samples at the given rate.
func NewMono(samples []float64, rate int) Waveform {
	return Waveform{Samples: samples, Rate: rate, Channels: 1}
}

// Duration returns the waveform length in seconds.
func (w Waveform) Duration() float64 {
	if w.Rate <= 0 || w.Channels <= 0 {
		return 0
	}

	return float64(len(w.Samples)) / float64(w.Channels) / float64(w.Rate)
}

// Frames returns the per-channel sample count.
func (w Waveform) Frames() int {
	if w.Channels <= 1 {
		return len(w.Samples)
	}

	return len(w.Samples) / w.Channels
}

// Mono returns a mono copy of the waveform, averaging channels when needed.
func (w Waveform) Mono() (Waveform, error) {
	if len(w.Samples) == 0 {
		return Waveform{}, fmt.Errorf("mono mixdown: %w", ErrInvalidInput)
	}

	if w.Channels <= 1 {
		out := make([]float64, len(w.Samples))
		copy(out, w.Samples)

		return Waveform{Samples: out, Rate: w.Rate, Channels: 1}, nil
	}

	mono, err := MixdownInterleaved(w.Samples, w.Channels)
	if err != nil {
		return Waveform{}, err
	}

	return Waveform{Samples: mono, Rate: w.Rate, Channels: 1}, nil
}

// StereoToMono averages a channel-first multi-channel signal into mono.
//
// A single-channel input passes through as a copy. The result is always a
// 1-D sample slice.
func StereoToMono(channels [][]float64) ([]float64, error) {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return nil, fmt.Errorf("stereo to mono: %w", ErrInvalidInput)
	}

	frames := len(channels[0])
	for _, ch := range channels[1:] {
		if len(ch) != frames {
			return nil, fmt.Errorf("stereo to mono: channel length mismatch %d != %d: %w",
				len(ch), frames, ErrInvalidInput)
		}
	}

	out := make([]float64, frames)
	if len(channels) == 1 {
		copy(out, channels[0])
		return out, nil
	}

	inv := 1 / float64(len(channels))
	for i := range out {
		sum := 0.0
		for _, ch := range channels {
			sum += ch[i]
		}

		out[i] = sum * inv
	}

	return out, nil
}

// MixdownInterleaved averages interleaved multi-channel samples into mono.
func MixdownInterleaved(data []float64, channels int) ([]float64, error) {
	if len(data) == 0 || channels <= 0 {
		return nil, fmt.Errorf("interleaved mixdown: %w", ErrInvalidInput)
	}

	if channels == 1 {
		out := make([]float64, len(data))
		copy(out, data)

		return out, nil
	}

	frames := len(data) / channels
	out := make([]float64, frames)
	inv := 1 / float64(channels)

	for f := range frames {
		sum := 0.0

		base := f * channels
		for c := range channels {
			sum += data[base+c]
		}

		out[f] = sum * inv
	}

	return out, nil
}

// FixLength truncates or zero-pads samples to exactly n values.
func FixLength(samples []float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	copy(out, samples)

	return out
}

// Normalize scales samples so the absolute peak equals 1. A silent signal
// is returned unchanged.
func Normalize(samples []float64) []float64 {
	out := make([]float64, len(samples))

	peak := 0.0
	for _, v := range samples {
		av := math.Abs(v)
		if av > peak {
			peak = av
		}
	}

	if peak == 0 {
		copy(out, samples)
		return out
	}

	inv := 1 / peak
	for i, v := range samples {
		out[i] = v * inv
	}

	return out
}

// Resample converts samples from fromRate to toRate using a polyphase FIR
// resampler. Equal rates return a copy.
func Resample(samples []float64, fromRate, toRate int) ([]float64, error) {
	if fromRate <= 0 || toRate <= 0 {
		return nil, fmt.Errorf("resample %d -> %d: %w", fromRate, toRate, ErrInvalidRate)
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("resample: %w", ErrInvalidInput)
	}

	if fromRate == toRate {
		out := make([]float64, len(samples))
		copy(out, samples)

		return out, nil
	}

	r, err := resample.NewForRates(float64(fromRate), float64(toRate))
	if err != nil {
		return nil, fmt.Errorf("resample %d -> %d: %w", fromRate, toRate, err)
	}

	return r.Process(samples), nil
}

// ResampleWaveform converts a waveform to the target rate, preserving the
// channel count of mono input. Multi-channel input must be mixed down first.
func ResampleWaveform(w Waveform, toRate int) (Waveform, error) {
	if w.Channels > 1 {
		return Waveform{}, fmt.Errorf("resample: multi-channel waveform: %w", ErrInvalidInput)
	}

	if w.Rate == toRate {
		return w, nil
	}

	out, err := Resample(w.Samples, w.Rate, toRate)
	if err != nil {
		return Waveform{}, err
	}

	return Waveform{Samples: out, Rate: toRate, Channels: 1}, nil
}
