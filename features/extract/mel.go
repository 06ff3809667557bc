package extract

import (
	"fmt"
	"math"

	"github.com/ir2718/lumen-audio/features/tensor"
)

// Default mel extraction parameters.
const (
	DefaultFFTSize   = 1024
	DefaultHopLength = 320
	DefaultMelBins   = 128
)

// MelParams configures mel-spectrogram extraction.
//
// FMax of zero means half the sample rate.
type MelParams struct {
	FFTSize   int
	HopLength int
	MelBins   int
	FMin      float64
	FMax      float64
}

// DefaultMelParams returns the default extraction parameters.
func DefaultMelParams() MelParams {
	return MelParams{
		FFTSize:   DefaultFFTSize,
		HopLength: DefaultHopLength,
		MelBins:   DefaultMelBins,
	}
}

func (p MelParams) withDefaults() MelParams {
	if p.FFTSize <= 0 {
		p.FFTSize = DefaultFFTSize
	}

	if p.HopLength <= 0 {
		p.HopLength = DefaultHopLength
	}

	if p.MelBins <= 0 {
		p.MelBins = DefaultMelBins
	}

	return p
}

// MelSpectrogram extracts a power mel spectrogram from mono samples.
//
// The output matrix has MelBins rows and a data-dependent number of time
// frame columns.
func MelSpectrogram(samples []float64, rate int, p MelParams) (tensor.Matrix, error) {
	p = p.withDefaults()

	if rate <= 0 {
		return tensor.Matrix{}, fmt.Errorf("mel spectrogram sample rate must be > 0: %d", rate)
	}

	stft, err := NewSTFT(p.FFTSize, p.HopLength)
	if err != nil {
		return tensor.Matrix{}, fmt.Errorf("mel spectrogram: %w", err)
	}

	power, err := stft.PowerFrames(samples)
	if err != nil {
		return tensor.Matrix{}, fmt.Errorf("mel spectrogram: %w", err)
	}

	bank := newMelBank(p, rate, stft.Bins())

	return bank.apply(power), nil
}

// melFilter is one triangular filter over a contiguous FFT bin range.
type melFilter struct {
	start   int
	weights []float64
}

// melBank is a bank of triangular mel filters with slaney-style area
// normalization.
type melBank struct {
	filters []melFilter
}

func newMelBank(p MelParams, rate, bins int) melBank {
	fMax := p.FMax
	if fMax <= 0 || fMax > float64(rate)/2 {
		fMax = float64(rate) / 2
	}

	fMin := math.Max(p.FMin, 0)

	// MelBins+2 boundary points, uniform on the mel scale.
	points := make([]float64, p.MelBins+2)

	melLo := hzToMel(fMin)

	melHi := hzToMel(fMax)
	for i := range points {
		points[i] = melToHz(melLo + (melHi-melLo)*float64(i)/float64(len(points)-1))
	}

	binHz := float64(rate) / float64(2*(bins-1))

	filters := make([]melFilter, p.MelBins)
	for m := range filters {
		lo, center, hi := points[m], points[m+1], points[m+2]

		start := int(math.Ceil(lo / binHz))

		end := int(math.Floor(hi / binHz))
		if end >= bins {
			end = bins - 1
		}

		if start > end {
			filters[m] = melFilter{start: 0, weights: nil}
			continue
		}

		norm := 2 / (hi - lo)

		weights := make([]float64, end-start+1)
		for k := range weights {
			f := float64(start+k) * binHz

			var w float64
			if f < center {
				if center > lo {
					w = (f - lo) / (center - lo)
				}
			} else {
				if hi > center {
					w = (hi - f) / (hi - center)
				}
			}

			if w < 0 {
				w = 0
			}

			weights[k] = w * norm
		}

		filters[m] = melFilter{start: start, weights: weights}
	}

	return melBank{filters: filters}
}

func (b melBank) apply(power tensor.Matrix) tensor.Matrix {
	out := tensor.NewMatrix(len(b.filters), power.Cols)

	for m, f := range b.filters {
		row := out.Row(m)

		for k, w := range f.weights {
			if w == 0 {
				continue
			}

			src := power.Row(f.start + k)
			for t := range row {
				row[t] += w * src[t]
			}
		}
	}

	return out
}

// hzToMel converts frequency to the slaney mel scale (linear below 1 kHz,
// logarithmic above).
func hzToMel(hz float64) float64 {
	const (
		linStep  = 200.0 / 3
		breakHz  = 1000.0
		breakMel = breakHz / linStep
	)

	if hz < breakHz {
		return hz / linStep
	}

	logStep := math.Log(6.4) / 27

	return breakMel + math.Log(hz/breakHz)/logStep
}

// melToHz is the inverse of hzToMel.
func melToHz(mel float64) float64 {
	const (
		linStep  = 200.0 / 3
		breakHz  = 1000.0
		breakMel = breakHz / linStep
	)

	if mel < breakMel {
		return mel * linStep
	}

	logStep := math.Log(6.4) / 27

	return breakHz * math.Exp(logStep*(mel-breakMel))
}

// PowerToDB converts a power matrix to decibels relative to its peak,
// clamped to a dynamic range of topDB below the maximum.
func PowerToDB(m tensor.Matrix, topDB float64) tensor.Matrix {
	const amin = 1e-10

	out := m.Clone()

	maxDB := math.Inf(-1)
	for i, v := range out.Data {
		db := 10 * math.Log10(math.Max(v, amin))
		out.Data[i] = db

		if db > maxDB {
			maxDB = db
		}
	}

	if topDB > 0 && !math.IsInf(maxDB, -1) {
		floor := maxDB - topDB
		for i, v := range out.Data {
			if v < floor {
				out.Data[i] = floor
			}
		}
	}

	return out
}
