package transform

import (
	"fmt"

	"github.com/ir2718/lumen-audio/audio"
	"github.com/ir2718/lumen-audio/audio/audiofile"
	"github.com/ir2718/lumen-audio/features/extract"
	"github.com/ir2718/lumen-audio/features/tensor"
)

// learnedPipeline wraps a spectrogram-style learned frontend. The frontend
// emits fixed-size output, so no shape normalizer runs; feature-domain
// augmentations are applied to the extracted matrix.
type learnedPipeline struct {
	*base
	frontend extract.Frontend
}

func newLearnedPipeline(variant Variant, cfg Config) (*learnedPipeline, error) {
	fe, err := frontendFor(cfg, variant)
	if err != nil {
		return nil, err
	}

	return &learnedPipeline{
		base:     newBase(variant, cfg, fe.RequiredRate()),
		frontend: fe,
	}, nil
}

// Frontend returns the learned frontend in use.
func (p *learnedPipeline) Frontend() extract.Frontend { return p.frontend }

func (p *learnedPipeline) Process(w audio.Waveform) (*Result, error) {
	// The frontend never resamples internally; prepare converts to its
	// required rate exactly once.
	samples, err := p.prepare(w, p.frontend.RequiredRate())
	if err != nil {
		return nil, err
	}

	augmented, err := p.wavAug.Apply(samples)
	if err != nil {
		return nil, fmt.Errorf("transform %s: %w", p.variant, err)
	}

	features, err := p.frontend.Extract(augmented)
	if err != nil {
		return nil, fmt.Errorf("transform %s: %w", p.variant, err)
	}

	return singleResult(tensor.FromMatrix(p.featAug.Apply(features))), nil
}

func (p *learnedPipeline) ProcessFile(path string, opts ...audiofile.Option) (*Result, error) {
	return loadAndProcess(p, path, opts)
}
