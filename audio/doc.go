// Package audio provides waveform-level primitives shared by all feature
// transforms: mono mixdown, phase-vocoder time stretching, length fixing,
// and sample-rate conversion.
//
// All functions operate on mono []float64 sample slices unless stated
// otherwise. Multi-channel material is represented either channel-first
// ([][]float64) or interleaved with an explicit channel count; both forms
// collapse to mono before any spectral processing.
package audio
