package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-dsp/dsp/window"
)

const (
	stretchFrameSize   = 1024
	stretchAnalysisHop = 256
	stretchNormFloor   = 1e-12

	minStretchRate = 0.25
	maxStretchRate = 4.0
)

// Stretch changes the duration of samples by 1/rate while preserving pitch.
//
// rate > 1 shortens the signal, rate < 1 lengthens it. The output length is
// round(len(samples)/rate). Uses an STFT phase vocoder with identity phase
// locking; the rate must lie in [0.25, 4].
func Stretch(samples []float64, rate float64) ([]float64, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("time stretch: %w", ErrInvalidInput)
	}

	if math.IsNaN(rate) || rate < minStretchRate || rate > maxStretchRate {
		return nil, fmt.Errorf("time stretch rate must be in [%g, %g]: %f",
			minStretchRate, maxStretchRate, rate)
	}

	outLen := int(math.Round(float64(len(samples)) / rate))
	if outLen <= 0 {
		outLen = 1
	}

	if math.Abs(rate-1) < 1e-9 {
		return FixLength(samples, outLen), nil
	}

	s, err := newStretcher(rate)
	if err != nil {
		return nil, err
	}

	return s.run(samples, outLen)
}

// TimeStretch stretches samples by a rate drawn uniformly from
// [minRate, maxRate].
//
// With trim set, the stretched signal is re-fit to the original length: a
// random offset in [0, max(stretchedLen-origLen, 0)] is dropped from the
// front and the remainder is truncated or zero-padded to len(samples). This
// guarantees the augmentation never changes downstream tensor shapes.
//
// A nil rng falls back to a time-seeded source; pass an explicit rng for
// reproducible output.
func TimeStretch(rng *rand.Rand, samples []float64, minRate, maxRate float64, trim bool) ([]float64, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("time stretch: %w", ErrInvalidInput)
	}

	if minRate > maxRate {
		return nil, fmt.Errorf("time stretch rate bounds inverted: [%f, %f]", minRate, maxRate)
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	rate := minRate
	if maxRate > minRate {
		rate += rng.Float64() * (maxRate - minRate)
	}

	stretched, err := Stretch(samples, rate)
	if err != nil {
		return nil, err
	}

	if !trim {
		return stretched, nil
	}

	diff := max(len(stretched)-len(samples), 0)

	offset := 0
	if diff > 0 {
		offset = rng.Intn(diff + 1)
	}

	return FixLength(stretched[offset:], len(samples)), nil
}

// stretcher holds the per-call state of the phase-vocoder stretch.
type stretcher struct {
	analysisHop  int
	synthesisHop int

	plan   *algofft.Plan[complex128]
	coeffs []float64
	omega  []float64

	prevPhase []float64
	sumPhase  []float64

	spectrum  []complex128
	timeFrame []complex128

	magnitudes []float64
	instFreqs  []float64
	peakBins   []int
}

func newStretcher(rate float64) (*stretcher, error) {
	plan, err := algofft.NewPlan64(stretchFrameSize)
	if err != nil {
		return nil, fmt.Errorf("time stretch: failed to create FFT plan: %w", err)
	}

	synthesisHop := max(int(math.Round(float64(stretchAnalysisHop)/rate)), 1)

	bins := stretchFrameSize/2 + 1

	omega := make([]float64, bins)
	for k := range bins {
		omega[k] = 2 * math.Pi * float64(k) / float64(stretchFrameSize)
	}

	return &stretcher{
		analysisHop:  stretchAnalysisHop,
		synthesisHop: synthesisHop,
		plan:         plan,
		coeffs:       window.Generate(window.TypeHann, stretchFrameSize, window.WithPeriodic()),
		omega:        omega,
		prevPhase:    make([]float64, bins),
		sumPhase:     make([]float64, bins),
		spectrum:     make([]complex128, stretchFrameSize),
		timeFrame:    make([]complex128, stretchFrameSize),
		magnitudes:   make([]float64, bins),
		instFreqs:    make([]float64, bins),
		peakBins:     make([]int, 0, bins),
	}, nil
}

func (s *stretcher) run(input []float64, outLen int) ([]float64, error) {
	frameCount := 1 + (len(input)-1)/s.analysisHop
	stretchedLen := (frameCount-1)*s.synthesisHop + stretchFrameSize
	output := make([]float64, stretchedLen)
	norm := make([]float64, stretchedLen)

	half := stretchFrameSize / 2
	analysisHopF := float64(s.analysisHop)
	synthesisHopF := float64(s.synthesisHop)

	for frame := range frameCount {
		inPos := frame * s.analysisHop
		outPos := frame * s.synthesisHop

		for i := range stretchFrameSize {
			x := 0.0

			idx := inPos + i
			if idx < len(input) {
				x = input[idx]
			}

			s.spectrum[i] = complex(x*s.coeffs[i], 0)
		}

		err := s.plan.Forward(s.spectrum, s.spectrum)
		if err != nil {
			return nil, fmt.Errorf("time stretch: forward FFT failed: %w", err)
		}

		for k := 0; k <= half; k++ {
			re := real(s.spectrum[k])
			im := imag(s.spectrum[k])
			s.magnitudes[k] = math.Hypot(re, im)
			phase := math.Atan2(im, re)

			delta := wrapPhase(phase - s.prevPhase[k] - s.omega[k]*analysisHopF)

			s.instFreqs[k] = s.omega[k] + delta/analysisHopF
			s.prevPhase[k] = phase
		}

		s.lockPhases(half, synthesisHopF)

		s.spectrum[0] = complex(real(s.spectrum[0]), 0)

		s.spectrum[half] = complex(real(s.spectrum[half]), 0)
		for k := 1; k < half; k++ {
			v := s.spectrum[k]
			s.spectrum[stretchFrameSize-k] = complex(real(v), -imag(v))
		}

		err = s.plan.Inverse(s.timeFrame, s.spectrum)
		if err != nil {
			return nil, fmt.Errorf("time stretch: inverse FFT failed: %w", err)
		}

		for i := range stretchFrameSize {
			idx := outPos + i
			w := s.coeffs[i]
			output[idx] += real(s.timeFrame[i]) * w
			norm[idx] += w * w
		}
	}

	for i := range output {
		if norm[i] > stretchNormFloor {
			output[i] /= norm[i]
		}
	}

	return FixLength(output, outLen), nil
}

// lockPhases advances accumulated phases by one synthesis hop and writes the
// synthesis spectrum for bins [0, half]. Phases of non-peak bins follow their
// nearest spectral peak (identity phase locking, Laroche & Dolson 1999).
func (s *stretcher) lockPhases(half int, synthesisHopF float64) {
	s.peakBins = s.peakBins[:0]
	for k := 1; k < half; k++ {
		if s.magnitudes[k] >= s.magnitudes[k-1] && s.magnitudes[k] > s.magnitudes[k+1] {
			s.peakBins = append(s.peakBins, k)
		}
	}

	if len(s.peakBins) == 0 {
		for k := 0; k <= half; k++ {
			s.sumPhase[k] += s.instFreqs[k] * synthesisHopF
			s.spectrum[k] = complex(
				s.magnitudes[k]*math.Cos(s.sumPhase[k]),
				s.magnitudes[k]*math.Sin(s.sumPhase[k]),
			)
		}

		return
	}

	for _, pk := range s.peakBins {
		s.sumPhase[pk] += s.instFreqs[pk] * synthesisHopF
	}

	peakIdx := 0
	for k := 0; k <= half; k++ {
		for peakIdx+1 < len(s.peakBins) {
			curr := s.peakBins[peakIdx]

			next := s.peakBins[peakIdx+1]
			if absInt(next-k) < absInt(curr-k) {
				peakIdx++
			} else {
				break
			}
		}

		pk := s.peakBins[peakIdx]
		if k != pk {
			s.sumPhase[k] = s.sumPhase[pk] + (s.prevPhase[k] - s.prevPhase[pk])
		}

		s.spectrum[k] = complex(
			s.magnitudes[k]*math.Cos(s.sumPhase[k]),
			s.magnitudes[k]*math.Sin(s.sumPhase[k]),
		)
	}
}

func wrapPhase(x float64) float64 {
	x = math.Mod(x+math.Pi, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}

	return x - math.Pi
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
