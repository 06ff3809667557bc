// Package augment enumerates the supported audio augmentations and applies
// them in the waveform and feature domains.
//
// The catalog is closed and split into two tiers: waveform-domain
// augmentations act on raw samples before extraction, feature-domain
// augmentations act on the extracted feature matrix. An applier silently
// skips kinds outside its own tier, so requesting a waveform augmentation
// from a feature-only applier is a documented no-op rather than an error.
//
// All randomness is drawn from an injected rand source so augmentation
// sequences are reproducible under a fixed seed.
package augment
