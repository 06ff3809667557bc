package transform

import (
	"github.com/ir2718/lumen-audio/features/augment"
	"github.com/ir2718/lumen-audio/features/extract"
)

// Default pipeline configuration values.
const (
	DefaultSampleRate    = 16000
	DefaultHeight        = 128
	DefaultWidth         = 128
	DefaultMaxLenSeconds = 20
	DefaultRepeat        = 3
	DefaultSeed          = 1

	// sequenceSeconds is the fixed duration of the SequenceRaw variant.
	sequenceSeconds = 3
)

// Config is the immutable per-pipeline configuration.
//
// It is assembled by New from options and never mutated afterwards; derived
// state such as the reference shape is computed once at construction.
type Config struct {
	SampleRate    int
	Augmentations augment.Set

	Waveform augment.WaveformParams
	Feature  augment.FeatureParams

	Height int
	Width  int

	MaxLenSeconds int
	Repeat        int
	Chunked       bool

	Mel  extract.MelParams
	MFCC extract.MFCCParams

	PretrainedTag string

	Seed int64
}

// Option configures a pipeline at construction time.
type Option func(*Config)

func defaultConfig(variant Variant) Config {
	cfg := Config{
		SampleRate:    DefaultSampleRate,
		Augmentations: augment.NewSet(),
		Waveform:      augment.DefaultWaveformParams(),
		Feature:       augment.DefaultFeatureParams(),
		Height:        DefaultHeight,
		Width:         DefaultWidth,
		MaxLenSeconds: DefaultMaxLenSeconds,
		Repeat:        DefaultRepeat,
		Mel:           extract.DefaultMelParams(),
		MFCC:          extract.DefaultMFCCParams(),
		Seed:          DefaultSeed,
	}

	switch variant {
	case SequenceRaw:
		cfg.PretrainedTag = extract.DefaultRawTag
	case MFCCFixedRepeat:
		cfg.Chunked = true
	default:
		cfg.PretrainedTag = extract.DefaultSpectrogramTag
	}

	return cfg
}

// WithSampleRate sets the working sample rate of mel and MFCC variants.
func WithSampleRate(hz int) Option {
	return func(c *Config) {
		if hz > 0 {
			c.SampleRate = hz
		}
	}
}

// WithAugmentations selects augmentations from the catalog. Kinds the
// variant does not support are ignored silently.
func WithAugmentations(kinds ...augment.Kind) Option {
	return func(c *Config) {
		c.Augmentations = augment.NewSet(kinds...)
	}
}

// WithStretchFactors bounds the random time-stretch rate.
func WithStretchFactors(minRate, maxRate float64) Option {
	return func(c *Config) {
		if minRate > 0 && maxRate >= minRate {
			c.Waveform.StretchMin = minRate
			c.Waveform.StretchMax = maxRate
		}
	}
}

// WithFreqMaskParam sets the maximum masked frequency band width.
func WithFreqMaskParam(bins int) Option {
	return func(c *Config) {
		if bins >= 0 {
			c.Feature.FreqMaskParam = bins
		}
	}
}

// WithTimeMaskParam sets the maximum masked time span width.
func WithTimeMaskParam(frames int) Option {
	return func(c *Config) {
		if frames >= 0 {
			c.Feature.TimeMaskParam = frames
		}
	}
}

// WithPixelNoise sets the random-pixel replacement probability and noise
// standard deviation.
func WithPixelNoise(p, std float64) Option {
	return func(c *Config) {
		if p >= 0 && p <= 1 {
			c.Feature.HidePixelsP = p
		}

		if std >= 0 {
			c.Feature.StdNoise = std
		}
	}
}

// WithDims sets the target output dimensions (H, W).
func WithDims(height, width int) Option {
	return func(c *Config) {
		if height > 0 && width > 0 {
			c.Height = height
			c.Width = width
		}
	}
}

// WithMaxLen sets the reference duration in seconds for fixed and chunked
// normalizers.
func WithMaxLen(seconds int) Option {
	return func(c *Config) {
		if seconds > 0 {
			c.MaxLenSeconds = seconds
		}
	}
}

// WithRepeat sets the channel repetition count.
func WithRepeat(channels int) Option {
	return func(c *Config) {
		if channels > 0 {
			c.Repeat = channels
		}
	}
}

// WithChunking makes MelFixedRepeat chunk at the reference width instead of
// padding to the reference shape.
func WithChunking() Option {
	return func(c *Config) {
		c.Chunked = true
	}
}

// WithMelParams overrides the mel extraction parameters.
func WithMelParams(p extract.MelParams) Option {
	return func(c *Config) {
		c.Mel = p
		c.MFCC.Mel = p
	}
}

// WithMFCCParams overrides the MFCC extraction parameters.
func WithMFCCParams(p extract.MFCCParams) Option {
	return func(c *Config) {
		c.MFCC = p
	}
}

// WithPretrainedTag selects the learned frontend for variants that use one.
func WithPretrainedTag(tag string) Option {
	return func(c *Config) {
		if tag != "" {
			c.PretrainedTag = tag
		}
	}
}

// WithWaveformParams overrides the waveform augmentation parameters.
func WithWaveformParams(p augment.WaveformParams) Option {
	return func(c *Config) {
		c.Waveform = p
	}
}

// WithSeed sets the deterministic seed of the pipeline's random source.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}
