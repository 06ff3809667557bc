package audiofile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"

	"github.com/ir2718/lumen-audio/audio"
)

// ErrUnsupportedFormat indicates a file extension with no registered
// decoder.
var ErrUnsupportedFormat = errors.New("audiofile: unsupported format")

// Method selects how a file is loaded.
type Method int

const (
	// MethodDecode decodes at the native rate and channel count.
	MethodDecode Method = iota
	// MethodResample decodes, mixes to mono, and resamples to the target
	// rate during the load.
	MethodResample
)

type config struct {
	method     Method
	targetRate int
	normalize  bool
}

// Option configures a Load call.
type Option func(*config)

// WithMethod selects the load method.
func WithMethod(m Method) Option {
	return func(c *config) {
		c.method = m
	}
}

// WithTargetRate sets the rate MethodResample converts to.
func WithTargetRate(hz int) Option {
	return func(c *config) {
		if hz > 0 {
			c.targetRate = hz
		}
	}
}

// WithNormalize scales the decoded samples to peak amplitude 1.
func WithNormalize(enabled bool) Option {
	return func(c *config) {
		c.normalize = enabled
	}
}

// Load reads an audio file into a waveform.
//
// The decoder is chosen by file extension (.wav, .mp3, .ogg, .oga). The
// file handle is released before Load returns.
func Load(path string, opts ...Option) (audio.Waveform, error) {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return audio.Waveform{}, fmt.Errorf("audiofile: %w", err)
	}
	defer f.Close()

	var w audio.Waveform

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		w, err = decodeWAV(f)
	case ".mp3":
		w, err = decodeMP3(f)
	case ".ogg", ".oga":
		w, err = decodeOgg(f)
	default:
		return audio.Waveform{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	if err != nil {
		return audio.Waveform{}, fmt.Errorf("audiofile %s: %w", filepath.Base(path), err)
	}

	if cfg.normalize {
		w.Samples = audio.Normalize(w.Samples)
	}

	if cfg.method == MethodResample && cfg.targetRate > 0 {
		mono, err := w.Mono()
		if err != nil {
			return audio.Waveform{}, fmt.Errorf("audiofile %s: %w", filepath.Base(path), err)
		}

		w, err = audio.ResampleWaveform(mono, cfg.targetRate)
		if err != nil {
			return audio.Waveform{}, fmt.Errorf("audiofile %s: %w", filepath.Base(path), err)
		}
	}

	return w, nil
}

func decodeWAV(f *os.File) (audio.Waveform, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return audio.Waveform{}, errors.New("wav: invalid file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return audio.Waveform{}, fmt.Errorf("wav: %w", err)
	}

	if buf == nil || buf.Format == nil || len(buf.Data) == 0 {
		return audio.Waveform{}, fmt.Errorf("wav: %w", audio.ErrInvalidInput)
	}

	return audio.Waveform{
		Samples:  pcmToFloats(buf, int(dec.BitDepth)),
		Rate:     buf.Format.SampleRate,
		Channels: buf.Format.NumChannels,
	}, nil
}

// pcmToFloats converts integer PCM to float samples in [-1, 1], scaled by
// the source bit depth.
func pcmToFloats(buf *goaudio.IntBuffer, fallbackDepth int) []float64 {
	bitDepth := buf.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = fallbackDepth
	}

	if bitDepth <= 0 {
		bitDepth = 16
	}

	scale := 1 / float64(int64(1)<<(bitDepth-1))

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v) * scale
	}

	return samples
}

func decodeMP3(f *os.File) (audio.Waveform, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return audio.Waveform{}, fmt.Errorf("mp3: %w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return audio.Waveform{}, fmt.Errorf("mp3: %w", err)
	}

	// go-mp3 always emits 16-bit little-endian stereo.
	const bytesPerSample = 2

	n := len(raw) / bytesPerSample
	if n == 0 {
		return audio.Waveform{}, fmt.Errorf("mp3: %w", audio.ErrInvalidInput)
	}

	samples := make([]float64, n)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(raw[i*bytesPerSample:]))
		samples[i] = float64(v) / 32768
	}

	return audio.Waveform{
		Samples:  samples,
		Rate:     dec.SampleRate(),
		Channels: 2,
	}, nil
}

func decodeOgg(f *os.File) (audio.Waveform, error) {
	data, format, err := oggvorbis.ReadAll(f)
	if err != nil {
		return audio.Waveform{}, fmt.Errorf("ogg: %w", err)
	}

	if len(data) == 0 {
		return audio.Waveform{}, fmt.Errorf("ogg: %w", audio.ErrInvalidInput)
	}

	samples := make([]float64, len(data))
	for i, v := range data {
		samples[i] = float64(v)
	}

	return audio.Waveform{
		Samples:  samples,
		Rate:     format.SampleRate,
		Channels: format.Channels,
	}, nil
}
