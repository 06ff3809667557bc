// Package transform composes waveform utilities, spectral extractors,
// augmentations, and shape normalizers into the named audio-to-feature
// pipelines used for model input preparation.
//
// A pipeline is created once through New with an immutable configuration,
// probes its reference shape at construction where needed, and then turns
// waveforms of any length into tensors of fixed dimensions. Variants form a
// closed set; New fails with ErrUnsupportedTransform for anything else,
// while augmentations a variant does not support are skipped silently.
//
// Pipeline instances own their configuration and random source and are not
// safe for concurrent use; run one instance per goroutine.
package transform
