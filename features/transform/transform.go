package transform

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/ir2718/lumen-audio/audio"
	"github.com/ir2718/lumen-audio/audio/audiofile"
	"github.com/ir2718/lumen-audio/features/augment"
	"github.com/ir2718/lumen-audio/features/extract"
)

// ErrUnsupportedTransform indicates a pipeline variant outside the closed
// set.
var ErrUnsupportedTransform = errors.New("transform: unsupported transform variant")

// Pipeline converts waveforms into fixed-shape feature tensors.
//
// Process accepts a waveform of any length and sample rate; the output
// dimensions depend only on the configuration. ProcessFile loads a file,
// then delegates to Process.
type Pipeline interface {
	Variant() Variant
	Config() Config
	Process(w audio.Waveform) (*Result, error)
	ProcessFile(path string, opts ...audiofile.Option) (*Result, error)
}

// New creates the pipeline for a variant.
//
// Returns ErrUnsupportedTransform for a variant outside the closed set;
// this is the only validation boundary. Augmentations the variant does not
// support are dropped silently, and fixed or chunked variants probe their
// reference shape here, once.
func New(variant Variant, opts ...Option) (Pipeline, error) {
	cfg := defaultConfig(variant)
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	switch variant {
	case LearnedSpectrogram, LearnedSpectrogramFullAug:
		return newLearnedPipeline(variant, cfg)
	case MelResizeRepeat:
		return newMelResizePipeline(cfg)
	case MelFixedRepeat:
		return newMelFixedPipeline(cfg)
	case MFCCFixedRepeat:
		return newMFCCPipeline(cfg)
	case SequenceRaw:
		return newSequencePipeline(cfg)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedTransform, variant)
	}
}

// base carries the state shared by all pipeline variants.
type base struct {
	variant Variant
	cfg     Config
	rng     *rand.Rand
	wavAug  *augment.Waveform
	featAug *augment.Feature
}

func newBase(variant Variant, cfg Config, workingRate int) *base {
	rng := rand.New(rand.NewSource(cfg.Seed))

	return &base{
		variant: variant,
		cfg:     cfg,
		rng:     rng,
		wavAug: augment.NewWaveform(workingRate,
			intersect(cfg.Augmentations, variant.supportedWaveform()), cfg.Waveform, rng),
		featAug: augment.NewFeature(
			intersect(cfg.Augmentations, variant.supportedFeature()), cfg.Feature, rng),
	}
}

// Variant returns the pipeline variant.
func (b *base) Variant() Variant { return b.variant }

// Config returns a copy of the pipeline configuration.
func (b *base) Config() Config { return b.cfg }

// prepare validates the input, mixes it to mono, and resamples it once to
// the working rate.
func (b *base) prepare(w audio.Waveform, workingRate int) ([]float64, error) {
	if len(w.Samples) == 0 {
		return nil, fmt.Errorf("transform %s: %w", b.variant, audio.ErrInvalidInput)
	}

	if w.Rate <= 0 {
		return nil, fmt.Errorf("transform %s: %w", b.variant, audio.ErrInvalidRate)
	}

	mono, err := w.Mono()
	if err != nil {
		return nil, fmt.Errorf("transform %s: %w", b.variant, err)
	}

	resampled, err := audio.ResampleWaveform(mono, workingRate)
	if err != nil {
		return nil, fmt.Errorf("transform %s: %w", b.variant, err)
	}

	return resampled.Samples, nil
}

// loadAndProcess implements ProcessFile on top of a Process function.
func loadAndProcess(p Pipeline, path string, opts []audiofile.Option) (*Result, error) {
	w, err := audiofile.Load(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("transform %s: %w", p.Variant(), err)
	}

	return p.Process(w)
}

// frontendFor resolves the configured pretrained tag.
func frontendFor(cfg Config, variant Variant) (extract.Frontend, error) {
	fe, err := extract.NewFrontend(cfg.PretrainedTag)
	if err != nil {
		return nil, fmt.Errorf("transform %s: %w", variant, err)
	}

	return fe, nil
}
