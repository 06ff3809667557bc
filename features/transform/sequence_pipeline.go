package transform

import (
	"fmt"

	"github.com/ir2718/lumen-audio/audio"
	"github.com/ir2718/lumen-audio/audio/audiofile"
	"github.com/ir2718/lumen-audio/features/extract"
	"github.com/ir2718/lumen-audio/features/tensor"
)

// sequencePipeline feeds a raw-waveform learned frontend. Instead of a 2-D
// normalizer, the sample sequence itself is truncated or zero-padded to a
// fixed three-second length before extraction.
type sequencePipeline struct {
	*base
	frontend extract.Frontend
	fixedLen int
}

func newSequencePipeline(cfg Config) (*sequencePipeline, error) {
	fe, err := frontendFor(cfg, SequenceRaw)
	if err != nil {
		return nil, err
	}

	return &sequencePipeline{
		base:     newBase(SequenceRaw, cfg, fe.RequiredRate()),
		frontend: fe,
		fixedLen: fe.RequiredRate() * sequenceSeconds,
	}, nil
}

// Frontend returns the learned frontend in use.
func (p *sequencePipeline) Frontend() extract.Frontend { return p.frontend }

// FixedLen returns the sample count every input is fit to.
func (p *sequencePipeline) FixedLen() int { return p.fixedLen }

func (p *sequencePipeline) Process(w audio.Waveform) (*Result, error) {
	samples, err := p.prepare(w, p.frontend.RequiredRate())
	if err != nil {
		return nil, err
	}

	// Stretch-and-trim keeps the pre-extraction length stable; the fixed
	// three-second fit below makes the output length input independent.
	augmented, err := p.wavAug.Apply(samples)
	if err != nil {
		return nil, fmt.Errorf("transform %s: %w", p.variant, err)
	}

	fixed := audio.FixLength(augmented, p.fixedLen)

	features, err := p.frontend.Extract(fixed)
	if err != nil {
		return nil, fmt.Errorf("transform %s: %w", p.variant, err)
	}

	return singleResult(tensor.FromMatrix(features)), nil
}

func (p *sequencePipeline) ProcessFile(path string, opts ...audiofile.Option) (*Result, error) {
	return loadAndProcess(p, path, opts)
}
