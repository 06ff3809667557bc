package transform

import (
	"fmt"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-dsp/dsp/signal"

	"github.com/ir2718/lumen-audio/audio"
	"github.com/ir2718/lumen-audio/features/tensor"
)

// probeRate is the synthetic-signal rate used for reference-shape probing.
// The dummy signal is generated at this rate and resampled to the pipeline
// rate, mirroring the longest real recording the pipeline should absorb.
const probeRate = 44100

// ReferenceShape is the feature-matrix shape produced by the extractor for
// a signal of the configured maximum duration. It is computed once at
// construction and used as the padding or chunking target; it never changes
// for the lifetime of the pipeline.
type ReferenceShape struct {
	Rows int
	Cols int
}

// extractFunc runs the pipeline's extractor on prepared mono samples.
type extractFunc func(samples []float64) (tensor.Matrix, error)

// probeReferenceShape derives the reference shape by pushing a synthetic
// dummy signal of maxLen seconds through the extractor.
func probeReferenceShape(cfg Config, fn extractFunc) (ReferenceShape, error) {
	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(probeRate)},
		signal.WithSeed(cfg.Seed),
	)

	dummy, err := gen.WhiteNoise(1, cfg.MaxLenSeconds*probeRate)
	if err != nil {
		return ReferenceShape{}, fmt.Errorf("reference shape: %w", err)
	}

	resampled, err := audio.Resample(dummy, probeRate, cfg.SampleRate)
	if err != nil {
		return ReferenceShape{}, fmt.Errorf("reference shape: %w", err)
	}

	m, err := fn(resampled)
	if err != nil {
		return ReferenceShape{}, fmt.Errorf("reference shape: %w", err)
	}

	if m.Rows == 0 || m.Cols == 0 {
		return ReferenceShape{}, fmt.Errorf("reference shape: extractor produced empty matrix")
	}

	return ReferenceShape{Rows: m.Rows, Cols: m.Cols}, nil
}
