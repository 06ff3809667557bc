package transform

import (
	"fmt"

	"github.com/ir2718/lumen-audio/features/augment"
)

// Variant identifies one pipeline from the closed set.
type Variant int

const (
	// LearnedSpectrogram extracts fixed-size log-mel features with a
	// spectrogram-style learned frontend; honors time stretch and all
	// feature-domain augmentations.
	LearnedSpectrogram Variant = iota
	// LearnedSpectrogramFullAug is LearnedSpectrogram with the complete
	// waveform augmentation tier enabled.
	LearnedSpectrogramFullAug
	// MelResizeRepeat extracts a mel spectrogram, resizes it to the target
	// dimensions, and repeats it across channels.
	MelResizeRepeat
	// MelFixedRepeat extracts a mel spectrogram, pads it to the probed
	// reference shape (or chunks it at the reference width), resizes, and
	// repeats across channels.
	MelFixedRepeat
	// MFCCFixedRepeat extracts MFCCs, chunks at the reference width,
	// resizes each chunk, and repeats across channels.
	MFCCFixedRepeat
	// SequenceRaw extracts a normalized raw-sample sequence fixed to three
	// seconds with a raw-waveform learned frontend.
	SequenceRaw
)

var variantNames = map[Variant]string{
	LearnedSpectrogram:        "learned_spectrogram",
	LearnedSpectrogramFullAug: "learned_spectrogram_full_aug",
	MelResizeRepeat:           "mel_resize_repeat",
	MelFixedRepeat:            "mel_fixed_repeat",
	MFCCFixedRepeat:           "mfcc_fixed_repeat",
	SequenceRaw:               "sequence_raw",
}

// String returns the canonical lowercase variant name.
func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}

	return fmt.Sprintf("transform.Variant(%d)", int(v))
}

// ParseVariant resolves a canonical name back to its variant.
func ParseVariant(name string) (Variant, error) {
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedTransform, name)
}

// Variants lists the closed set in declaration order.
func Variants() []Variant {
	return []Variant{
		LearnedSpectrogram,
		LearnedSpectrogramFullAug,
		MelResizeRepeat,
		MelFixedRepeat,
		MFCCFixedRepeat,
		SequenceRaw,
	}
}

// supportedWaveform returns the waveform-domain augmentations the variant
// honors. Requested kinds outside this set are ignored.
func (v Variant) supportedWaveform() augment.Set {
	switch v {
	case LearnedSpectrogramFullAug:
		return augment.NewSet(
			augment.TimeStretch, augment.PitchShift, augment.BandPass,
			augment.ColorNoise, augment.TimeInversion,
		)
	case LearnedSpectrogram, MelResizeRepeat, MelFixedRepeat, SequenceRaw:
		return augment.NewSet(augment.TimeStretch)
	default:
		return augment.NewSet()
	}
}

// supportedFeature returns the feature-domain augmentations the variant
// honors.
func (v Variant) supportedFeature() augment.Set {
	switch v {
	case LearnedSpectrogram, LearnedSpectrogramFullAug:
		return augment.NewSet(
			augment.FreqMask, augment.TimeMask,
			augment.RandomErase, augment.RandomPixels,
		)
	default:
		return augment.NewSet()
	}
}

// intersect filters requested down to the supported set.
func intersect(requested, supported augment.Set) augment.Set {
	out := augment.NewSet()
	for k := range requested {
		if supported.Contains(k) {
			out[k] = struct{}{}
		}
	}

	return out
}
