package transform

import (
	"fmt"

	"github.com/ir2718/lumen-audio/audio"
	"github.com/ir2718/lumen-audio/audio/audiofile"
	"github.com/ir2718/lumen-audio/features/extract"
	"github.com/ir2718/lumen-audio/features/tensor"
)

// melResizePipeline extracts a mel spectrogram and resizes it directly to
// the target dimensions. One output per input regardless of length.
type melResizePipeline struct {
	*base
}

func newMelResizePipeline(cfg Config) (*melResizePipeline, error) {
	return &melResizePipeline{base: newBase(MelResizeRepeat, cfg, cfg.SampleRate)}, nil
}

func (p *melResizePipeline) Process(w audio.Waveform) (*Result, error) {
	mel, err := p.extractMel(w)
	if err != nil {
		return nil, err
	}

	resized := tensor.Resize(mel, p.cfg.Height, p.cfg.Width)

	return singleResult(tensor.RepeatChannels(resized, p.cfg.Repeat)), nil
}

func (p *melResizePipeline) ProcessFile(path string, opts ...audiofile.Option) (*Result, error) {
	return loadAndProcess(p, path, opts)
}

// melFixedPipeline pads the mel spectrogram to the probed reference shape
// before resizing, or chunks it at the reference width when chunking is
// enabled.
type melFixedPipeline struct {
	*base
	ref ReferenceShape
}

func newMelFixedPipeline(cfg Config) (*melFixedPipeline, error) {
	p := &melFixedPipeline{base: newBase(MelFixedRepeat, cfg, cfg.SampleRate)}

	ref, err := probeReferenceShape(cfg, func(samples []float64) (tensor.Matrix, error) {
		return extract.MelSpectrogram(samples, cfg.SampleRate, cfg.Mel)
	})
	if err != nil {
		return nil, fmt.Errorf("transform %s: %w", MelFixedRepeat, err)
	}

	p.ref = ref

	return p, nil
}

// Reference returns the probed reference shape.
func (p *melFixedPipeline) Reference() ReferenceShape { return p.ref }

func (p *melFixedPipeline) Process(w audio.Waveform) (*Result, error) {
	mel, err := p.extractMel(w)
	if err != nil {
		return nil, err
	}

	if p.cfg.Chunked {
		return chunkedResult(p.resizeChunks(tensor.ChunkCols(mel, p.ref.Cols))), nil
	}

	padded := tensor.PadTo(mel, p.ref.Rows, p.ref.Cols)
	resized := tensor.Resize(padded, p.cfg.Height, p.cfg.Width)

	return singleResult(tensor.RepeatChannels(resized, p.cfg.Repeat)), nil
}

func (p *melFixedPipeline) ProcessFile(path string, opts ...audiofile.Option) (*Result, error) {
	return loadAndProcess(p, path, opts)
}

// mfccPipeline extracts MFCCs and always chunks at the reference width.
// The chunk count is data dependent.
type mfccPipeline struct {
	*base
	ref ReferenceShape
}

func newMFCCPipeline(cfg Config) (*mfccPipeline, error) {
	p := &mfccPipeline{base: newBase(MFCCFixedRepeat, cfg, cfg.SampleRate)}

	ref, err := probeReferenceShape(cfg, func(samples []float64) (tensor.Matrix, error) {
		return extract.MFCC(samples, cfg.SampleRate, cfg.MFCC)
	})
	if err != nil {
		return nil, fmt.Errorf("transform %s: %w", MFCCFixedRepeat, err)
	}

	p.ref = ref

	return p, nil
}

// Reference returns the probed reference shape.
func (p *mfccPipeline) Reference() ReferenceShape { return p.ref }

func (p *mfccPipeline) Process(w audio.Waveform) (*Result, error) {
	samples, err := p.prepare(w, p.cfg.SampleRate)
	if err != nil {
		return nil, err
	}

	coeffs, err := extract.MFCC(samples, p.cfg.SampleRate, p.cfg.MFCC)
	if err != nil {
		return nil, fmt.Errorf("transform %s: %w", p.variant, err)
	}

	return chunkedResult(p.resizeChunks(tensor.ChunkCols(coeffs, p.ref.Cols))), nil
}

func (p *mfccPipeline) ProcessFile(path string, opts ...audiofile.Option) (*Result, error) {
	return loadAndProcess(p, path, opts)
}

// extractMel runs the shared mono/augment/extract front half of the mel
// pipelines.
func (b *base) extractMel(w audio.Waveform) (tensor.Matrix, error) {
	samples, err := b.prepare(w, b.cfg.SampleRate)
	if err != nil {
		return tensor.Matrix{}, err
	}

	augmented, err := b.wavAug.Apply(samples)
	if err != nil {
		return tensor.Matrix{}, fmt.Errorf("transform %s: %w", b.variant, err)
	}

	mel, err := extract.MelSpectrogram(augmented, b.cfg.SampleRate, b.cfg.Mel)
	if err != nil {
		return tensor.Matrix{}, fmt.Errorf("transform %s: %w", b.variant, err)
	}

	return mel, nil
}

// resizeChunks resizes every chunk to the target dimensions and repeats
// channels.
func (b *base) resizeChunks(chunks []tensor.Matrix) []tensor.Tensor {
	out := make([]tensor.Tensor, 0, len(chunks))
	for _, chunk := range chunks {
		resized := tensor.Resize(chunk, b.cfg.Height, b.cfg.Width)
		out = append(out, tensor.RepeatChannels(resized, b.cfg.Repeat))
	}

	return out
}
