// Package extract turns raw mono waveforms into 2-D feature matrices.
//
// Three extractor families share the "raw audio in, feature matrix out"
// contract: the mel-spectrogram extractor, the MFCC extractor built on top
// of it, and learned frontends that stand in for pretrained
// feature-extraction models. Learned frontends declare the sample rate they
// require; resampling to that rate is the caller's responsibility and must
// happen exactly once.
package extract
