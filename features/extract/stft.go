package extract

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/cwbudde/algo-vecmath"

	"github.com/ir2718/lumen-audio/features/tensor"
)

// STFT computes short-time power spectra with a periodic Hann window.
//
// Frames are centered: frame t covers samples around t*hop, with zero
// padding past the signal edges, so a signal of n samples always yields
// 1 + n/hop frames. Not safe for concurrent use; each goroutine should own
// its instance.
type STFT struct {
	fftSize int
	hop     int

	plan   *algofft.Plan[complex128]
	coeffs []float64

	frame []complex128
	re    []float64
	im    []float64
	power []float64
}

// NewSTFT creates an STFT processor. fftSize must be a positive power of
// two and hop must be positive.
func NewSTFT(fftSize, hop int) (*STFT, error) {
	if fftSize <= 0 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("stft fft size must be a positive power of two: %d", fftSize)
	}

	if hop <= 0 {
		return nil, fmt.Errorf("stft hop length must be > 0: %d", hop)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("stft: failed to create FFT plan: %w", err)
	}

	bins := fftSize/2 + 1

	return &STFT{
		fftSize: fftSize,
		hop:     hop,
		plan:    plan,
		coeffs:  window.Generate(window.TypeHann, fftSize, window.WithPeriodic()),
		frame:   make([]complex128, fftSize),
		re:      make([]float64, bins),
		im:      make([]float64, bins),
		power:   make([]float64, bins),
	}, nil
}

// Bins returns the number of frequency bins per frame (fftSize/2 + 1).
func (s *STFT) Bins() int { return s.fftSize/2 + 1 }

// FrameCount returns the number of frames produced for n input samples.
func (s *STFT) FrameCount(n int) int {
	if n <= 0 {
		return 0
	}

	return 1 + n/s.hop
}

// PowerFrames returns the power spectrogram |X[k,t]|^2 as a bins x frames
// matrix.
func (s *STFT) PowerFrames(samples []float64) (tensor.Matrix, error) {
	if len(samples) == 0 {
		return tensor.Matrix{}, fmt.Errorf("stft: empty input")
	}

	bins := s.Bins()
	frames := s.FrameCount(len(samples))
	out := tensor.NewMatrix(bins, frames)

	half := s.fftSize / 2

	for t := range frames {
		start := t*s.hop - half

		for i := range s.fftSize {
			x := 0.0

			idx := start + i
			if idx >= 0 && idx < len(samples) {
				x = samples[idx]
			}

			s.frame[i] = complex(x*s.coeffs[i], 0)
		}

		err := s.plan.Forward(s.frame, s.frame)
		if err != nil {
			return tensor.Matrix{}, fmt.Errorf("stft: forward FFT failed: %w", err)
		}

		for k := range bins {
			s.re[k] = real(s.frame[k])
			s.im[k] = imag(s.frame[k])
		}

		vecmath.Power(s.power, s.re, s.im)

		for k := range bins {
			out.Set(k, t, s.power[k])
		}
	}

	return out, nil
}
