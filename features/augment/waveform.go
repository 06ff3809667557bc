package augment

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-dsp/dsp/effects/pitch"
	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design/pass"

	"github.com/ir2718/lumen-audio/audio"
)

// Default waveform augmentation parameters.
const (
	DefaultStretchMin     = 0.8
	DefaultStretchMax     = 1.2
	DefaultPitchSemitones = 2.0
	DefaultBandLowMinHz   = 50.0
	DefaultBandLowMaxHz   = 250.0
	DefaultNoiseSNRMinDB  = 5.0
	DefaultNoiseSNRMaxDB  = 20.0

	bandHighMinFrac = 0.5
	bandHighMaxFrac = 0.95
	bandPassOrder   = 2
)

// WaveformParams configures the waveform-domain augmenter.
type WaveformParams struct {
	// StretchMin and StretchMax bound the random time-stretch rate.
	StretchMin float64
	StretchMax float64
	// PitchSemitones bounds the random pitch shift to +/- that many
	// semitones.
	PitchSemitones float64
	// NoiseSNRMinDB and NoiseSNRMaxDB bound the random pink-noise
	// signal-to-noise ratio.
	NoiseSNRMinDB float64
	NoiseSNRMaxDB float64
}

// DefaultWaveformParams returns the default parameter set.
func DefaultWaveformParams() WaveformParams {
	return WaveformParams{
		StretchMin:     DefaultStretchMin,
		StretchMax:     DefaultStretchMax,
		PitchSemitones: DefaultPitchSemitones,
		NoiseSNRMinDB:  DefaultNoiseSNRMinDB,
		NoiseSNRMaxDB:  DefaultNoiseSNRMaxDB,
	}
}

// Waveform applies the waveform-domain tier of an augmentation set.
//
// Feature-domain kinds in the set are skipped silently. Not safe for
// concurrent use; the rand source is owned by the applier.
type Waveform struct {
	rate   int
	set    Set
	params WaveformParams
	rng    *rand.Rand
}

// NewWaveform creates a waveform augmenter for samples at the given rate.
func NewWaveform(rate int, set Set, params WaveformParams, rng *rand.Rand) *Waveform {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	return &Waveform{rate: rate, set: set, params: params, rng: rng}
}

// Apply runs the selected waveform augmentations in catalog order and
// returns a new slice. The output keeps the input length.
func (a *Waveform) Apply(samples []float64) ([]float64, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("waveform augment: %w", audio.ErrInvalidInput)
	}

	out := make([]float64, len(samples))
	copy(out, samples)

	if a.set.Contains(TimeStretch) {
		stretched, err := audio.TimeStretch(a.rng, out, a.params.StretchMin, a.params.StretchMax, true)
		if err != nil {
			return nil, fmt.Errorf("waveform augment: %w", err)
		}

		out = stretched
	}

	if a.set.Contains(PitchShift) {
		shifted, err := a.pitchShift(out)
		if err != nil {
			return nil, fmt.Errorf("waveform augment: %w", err)
		}

		out = shifted
	}

	if a.set.Contains(BandPass) {
		a.bandPass(out)
	}

	if a.set.Contains(ColorNoise) {
		a.addPinkNoise(out)
	}

	if a.set.Contains(TimeInversion) {
		reverse(out)
	}

	return out, nil
}

func (a *Waveform) pitchShift(samples []float64) ([]float64, error) {
	shifter, err := pitch.NewSpectralPitchShifter(float64(a.rate))
	if err != nil {
		return nil, err
	}

	semitones := (a.rng.Float64()*2 - 1) * a.params.PitchSemitones

	err = shifter.SetPitchSemitones(semitones)
	if err != nil {
		return nil, err
	}

	return shifter.Process(samples), nil
}

// bandPass keeps a random band: the low cut is drawn in
// [DefaultBandLowMinHz, DefaultBandLowMaxHz], the high cut as a fraction of
// the Nyquist frequency. Butterworth high-pass and low-pass cascades are
// chained and applied in place.
func (a *Waveform) bandPass(samples []float64) {
	nyquist := float64(a.rate) / 2

	lowCut := DefaultBandLowMinHz + a.rng.Float64()*(DefaultBandLowMaxHz-DefaultBandLowMinHz)
	highCut := nyquist * (bandHighMinFrac + a.rng.Float64()*(bandHighMaxFrac-bandHighMinFrac))

	coeffs := pass.ButterworthHP(lowCut, bandPassOrder, float64(a.rate))
	coeffs = append(coeffs, pass.ButterworthLP(highCut, bandPassOrder, float64(a.rate))...)

	if len(coeffs) == 0 {
		return
	}

	biquad.NewChain(coeffs).ProcessBlock(samples)
}

// addPinkNoise mixes 1/f noise into samples at a random signal-to-noise
// ratio. Silent input is left untouched.
func (a *Waveform) addPinkNoise(samples []float64) {
	signalRMS := rms(samples)
	if signalRMS == 0 {
		return
	}

	noise := pinkNoise(a.rng, len(samples))

	noiseRMS := rms(noise)
	if noiseRMS == 0 {
		return
	}

	snrDB := a.params.NoiseSNRMinDB + a.rng.Float64()*(a.params.NoiseSNRMaxDB-a.params.NoiseSNRMinDB)
	gain := signalRMS / (noiseRMS * math.Pow(10, snrDB/20))

	for i := range samples {
		samples[i] += noise[i] * gain
	}
}

// pinkNoise filters white noise through the Kellet three-pole approximation
// of a 1/f spectrum.
func pinkNoise(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)

	var b0, b1, b2 float64

	for i := range out {
		white := rng.Float64()*2 - 1

		b0 = 0.99765*b0 + white*0.0990460
		b1 = 0.96300*b1 + white*0.2965164
		b2 = 0.57000*b2 + white*1.0526913

		out[i] = (b0 + b1 + b2 + white*0.1848) * 0.25
	}

	return out
}

func rms(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range samples {
		sum += v * v
	}

	return math.Sqrt(sum / float64(len(samples)))
}

func reverse(samples []float64) {
	for i, j := 0, len(samples)-1; i < j; i, j = i+1, j-1 {
		samples[i], samples[j] = samples[j], samples[i]
	}
}
