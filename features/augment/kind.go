package augment

import "fmt"

// Kind identifies one augmentation from the closed catalog.
type Kind int

const (
	// TimeStretch randomly stretches the waveform duration, preserving pitch.
	TimeStretch Kind = iota
	// PitchShift shifts the waveform pitch by a random semitone amount.
	PitchShift
	// BandPass keeps a random frequency band of the waveform.
	BandPass
	// ColorNoise adds pink noise at a random signal-to-noise ratio.
	ColorNoise
	// TimeInversion reverses the waveform in time.
	TimeInversion
	// FreqMask zeroes a contiguous random band of frequency bins.
	FreqMask
	// TimeMask zeroes a contiguous random span of time frames.
	TimeMask
	// RandomErase blanks a random rectangular region of the feature matrix.
	RandomErase
	// RandomPixels replaces random elements with Gaussian noise around the
	// feature mean.
	RandomPixels
)

// Domain is the tier an augmentation operates in.
type Domain int

const (
	// DomainWaveform marks augmentations applied to raw samples.
	DomainWaveform Domain = iota
	// DomainFeature marks augmentations applied to extracted features.
	DomainFeature
)

var kindNames = map[Kind]string{
	TimeStretch:   "time_stretch",
	PitchShift:    "pitch_shift",
	BandPass:      "band_pass",
	ColorNoise:    "color_noise",
	TimeInversion: "time_inversion",
	FreqMask:      "freq_mask",
	TimeMask:      "time_mask",
	RandomErase:   "random_erase",
	RandomPixels:  "random_pixels",
}

// String returns the canonical lowercase name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("augment.Kind(%d)", int(k))
}

// Domain returns the tier the kind operates in.
func (k Kind) Domain() Domain {
	switch k {
	case TimeStretch, PitchShift, BandPass, ColorNoise, TimeInversion:
		return DomainWaveform
	default:
		return DomainFeature
	}
}

// ParseKind resolves a canonical name back to its kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("augment: unknown kind %q", name)
}

// Kinds lists the full catalog in declaration order.
func Kinds() []Kind {
	return []Kind{
		TimeStretch, PitchShift, BandPass, ColorNoise, TimeInversion,
		FreqMask, TimeMask, RandomErase, RandomPixels,
	}
}

// Set is an unordered selection from the catalog.
type Set map[Kind]struct{}

// NewSet builds a set from the given kinds.
func NewSet(kinds ...Kind) Set {
	s := make(Set, len(kinds))
	for _, k := range kinds {
		s[k] = struct{}{}
	}

	return s
}

// Contains reports whether k is selected.
func (s Set) Contains(k Kind) bool {
	_, ok := s[k]
	return ok
}
