// Package audiofile loads audio files into waveforms.
//
// Supported formats are WAV, MP3, and Ogg Vorbis, selected by file
// extension. Two load methods exist: MethodDecode returns samples at the
// file's native rate and channel count, MethodResample additionally mixes
// to mono and converts to a target rate during the load. The file handle
// is opened and released inside Load.
package audiofile
