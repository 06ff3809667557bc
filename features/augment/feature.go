package augment

import (
	"math"
	"math/rand"

	"github.com/ir2718/lumen-audio/features/tensor"
)

// Default feature augmentation parameters.
const (
	DefaultFreqMaskParam = 30
	DefaultTimeMaskParam = 30
	DefaultHidePixelsP   = 0.25
	DefaultStdNoise      = 0.01
)

// Random-erase region bounds: area fraction of the matrix and aspect ratio
// of the erased rectangle.
const (
	eraseAreaMin   = 0.02
	eraseAreaMax   = 0.33
	eraseAspectMin = 0.3
	eraseAspectMax = 1 / eraseAspectMin
	eraseAttempts  = 10
)

// FeatureParams configures the feature-domain augmenter.
type FeatureParams struct {
	// FreqMaskParam is the maximum number of masked frequency bins.
	FreqMaskParam int
	// TimeMaskParam is the maximum number of masked time frames.
	TimeMaskParam int
	// HidePixelsP is the per-element replacement probability of the
	// random-pixel augmentation.
	HidePixelsP float64
	// StdNoise is the standard deviation of the replacement noise.
	StdNoise float64
}

// DefaultFeatureParams returns the default parameter set.
func DefaultFeatureParams() FeatureParams {
	return FeatureParams{
		FreqMaskParam: DefaultFreqMaskParam,
		TimeMaskParam: DefaultTimeMaskParam,
		HidePixelsP:   DefaultHidePixelsP,
		StdNoise:      DefaultStdNoise,
	}
}

// Feature applies the feature-domain tier of an augmentation set to
// extracted feature matrices.
//
// Waveform-domain kinds in the set are skipped silently. Not safe for
// concurrent use; the rand source is owned by the applier.
type Feature struct {
	set    Set
	params FeatureParams
	rng    *rand.Rand
}

// NewFeature creates a feature-domain augmenter.
func NewFeature(set Set, params FeatureParams, rng *rand.Rand) *Feature {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	return &Feature{set: set, params: params, rng: rng}
}

// Apply runs the selected feature augmentations in catalog order on a copy
// of m.
func (a *Feature) Apply(m tensor.Matrix) tensor.Matrix {
	out := m.Clone()

	if a.set.Contains(FreqMask) {
		a.maskRows(out)
	}

	if a.set.Contains(TimeMask) {
		a.maskCols(out)
	}

	if a.set.Contains(RandomErase) {
		a.erase(out)
	}

	if a.set.Contains(RandomPixels) {
		a.hidePixels(out)
	}

	return out
}

// maskRows zeroes a contiguous random band of frequency bins. The band
// width is drawn uniformly from [0, FreqMaskParam].
func (a *Feature) maskRows(m tensor.Matrix) {
	width := a.randSpan(a.params.FreqMaskParam, m.Rows)
	if width == 0 {
		return
	}

	start := a.rng.Intn(m.Rows - width + 1)
	for r := start; r < start+width; r++ {
		row := m.Row(r)
		for i := range row {
			row[i] = 0
		}
	}
}

// maskCols zeroes a contiguous random span of time frames. The span width
// is drawn uniformly from [0, TimeMaskParam].
func (a *Feature) maskCols(m tensor.Matrix) {
	width := a.randSpan(a.params.TimeMaskParam, m.Cols)
	if width == 0 {
		return
	}

	start := a.rng.Intn(m.Cols - width + 1)
	for r := range m.Rows {
		row := m.Row(r)
		for c := start; c < start+width; c++ {
			row[c] = 0
		}
	}
}

func (a *Feature) randSpan(param, limit int) int {
	if param <= 0 || limit <= 0 {
		return 0
	}

	return min(a.rng.Intn(param+1), limit)
}

// erase blanks one random rectangle. Region area and aspect ratio are drawn
// from the package bounds; after the attempt budget is exhausted the
// augmentation degrades to a no-op for degenerate shapes.
func (a *Feature) erase(m tensor.Matrix) {
	if m.Rows == 0 || m.Cols == 0 {
		return
	}

	area := float64(m.Rows * m.Cols)

	for range eraseAttempts {
		targetArea := area * (eraseAreaMin + a.rng.Float64()*(eraseAreaMax-eraseAreaMin))
		logRatio := math.Log(eraseAspectMin) +
			a.rng.Float64()*(math.Log(eraseAspectMax)-math.Log(eraseAspectMin))
		aspect := math.Exp(logRatio)

		h := int(math.Round(math.Sqrt(targetArea * aspect)))

		w := int(math.Round(math.Sqrt(targetArea / aspect)))
		if h <= 0 || w <= 0 || h > m.Rows || w > m.Cols {
			continue
		}

		top := a.rng.Intn(m.Rows - h + 1)

		left := a.rng.Intn(m.Cols - w + 1)
		for r := top; r < top+h; r++ {
			row := m.Row(r)
			for c := left; c < left+w; c++ {
				row[c] = 0
			}
		}

		return
	}
}

// hidePixels replaces each element independently with probability
// HidePixelsP by a Gaussian sample with mean equal to the current matrix
// mean and the configured standard deviation. p=0 leaves the matrix
// unchanged, p=1 replaces every element.
func (a *Feature) hidePixels(m tensor.Matrix) {
	p := a.params.HidePixelsP
	if p <= 0 || len(m.Data) == 0 {
		return
	}

	mean := m.Mean()

	for i := range m.Data {
		if p >= 1 || a.rng.Float64() < p {
			m.Data[i] = a.rng.NormFloat64()*a.params.StdNoise + mean
		}
	}
}
