package extract

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/ir2718/lumen-audio/features/tensor"
)

// ErrUnknownFrontend indicates a pretrained tag with no registered
// constructor.
var ErrUnknownFrontend = errors.New("extract: unknown frontend tag")

// Pretrained identifier tags of the built-in frontends.
const (
	DefaultSpectrogramTag = "ast-base-audioset"
	DefaultRawTag         = "wav2vec2-base"
)

// Frontend is a learned feature extractor treated as an opaque numeric
// function.
//
// Input must be mono and already resampled to RequiredRate; a frontend
// never resamples internally, so callers resample exactly once.
type Frontend interface {
	// Tag returns the pretrained identifier the frontend was created from.
	Tag() string
	// RequiredRate returns the sample rate the frontend expects.
	RequiredRate() int
	// Extract converts raw samples into a feature matrix.
	Extract(samples []float64) (tensor.Matrix, error)
}

var (
	frontendMu       sync.Mutex
	frontendRegistry = map[string]func(tag string) Frontend{
		DefaultSpectrogramTag: func(tag string) Frontend { return newSpectrogramFrontend(tag) },
		DefaultRawTag:         func(tag string) Frontend { return newRawFrontend(tag) },
	}
)

// RegisterFrontend installs a constructor for a pretrained tag, replacing
// any previous registration.
func RegisterFrontend(tag string, fn func(tag string) Frontend) {
	frontendMu.Lock()
	defer frontendMu.Unlock()

	frontendRegistry[tag] = fn
}

// NewFrontend creates the frontend registered under tag.
func NewFrontend(tag string) (Frontend, error) {
	frontendMu.Lock()
	fn, ok := frontendRegistry[tag]
	frontendMu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFrontend, tag)
	}

	return fn(tag), nil
}

// Spectrogram frontend geometry: 25 ms windows with 10 ms hops at 16 kHz,
// 128 mel bands, and a fixed frame budget.
const (
	spectrogramFrontendRate   = 16000
	spectrogramFrontendFFT    = 512
	spectrogramFrontendHop    = 160
	spectrogramFrontendMels   = 128
	spectrogramFrontendFrames = 1024
	spectrogramFrontendStd    = 0.5
)

// spectrogramFrontend models a spectrogram-style pretrained front end: a
// log-mel filter bank normalized per clip and padded or truncated to a
// fixed frame count, so its output shape never depends on input length.
type spectrogramFrontend struct {
	tag string
}

func newSpectrogramFrontend(tag string) *spectrogramFrontend {
	return &spectrogramFrontend{tag: tag}
}

func (f *spectrogramFrontend) Tag() string       { return f.tag }
func (f *spectrogramFrontend) RequiredRate() int { return spectrogramFrontendRate }

func (f *spectrogramFrontend) Extract(samples []float64) (tensor.Matrix, error) {
	if len(samples) == 0 {
		return tensor.Matrix{}, fmt.Errorf("frontend %s: empty input", f.tag)
	}

	mel, err := MelSpectrogram(samples, spectrogramFrontendRate, MelParams{
		FFTSize:   spectrogramFrontendFFT,
		HopLength: spectrogramFrontendHop,
		MelBins:   spectrogramFrontendMels,
	})
	if err != nil {
		return tensor.Matrix{}, fmt.Errorf("frontend %s: %w", f.tag, err)
	}

	db := PowerToDB(mel, 0)
	normalizeMatrix(db, spectrogramFrontendStd)

	return tensor.PadTo(db, spectrogramFrontendMels, spectrogramFrontendFrames), nil
}

const rawFrontendRate = 16000

// rawFrontend models a raw-waveform pretrained front end: the sample
// sequence itself, normalized to zero mean and unit variance, as a 1 x N
// matrix.
type rawFrontend struct {
	tag string
}

func newRawFrontend(tag string) *rawFrontend {
	return &rawFrontend{tag: tag}
}

func (f *rawFrontend) Tag() string       { return f.tag }
func (f *rawFrontend) RequiredRate() int { return rawFrontendRate }

func (f *rawFrontend) Extract(samples []float64) (tensor.Matrix, error) {
	if len(samples) == 0 {
		return tensor.Matrix{}, fmt.Errorf("frontend %s: empty input", f.tag)
	}

	out := tensor.Matrix{Rows: 1, Cols: len(samples), Data: make([]float64, len(samples))}
	copy(out.Data, samples)
	normalizeMatrix(out, 1)

	return out, nil
}

// normalizeMatrix shifts and scales the matrix in place to mean 0 and the
// given standard deviation. A constant matrix is only shifted.
func normalizeMatrix(m tensor.Matrix, std float64) {
	if len(m.Data) == 0 {
		return
	}

	mean := m.Mean()

	variance := 0.0
	for _, v := range m.Data {
		d := v - mean
		variance += d * d
	}

	variance /= float64(len(m.Data))

	scale := 0.0
	if variance > 0 {
		scale = std / math.Sqrt(variance)
	}

	for i, v := range m.Data {
		m.Data[i] = (v - mean) * scale
	}
}
