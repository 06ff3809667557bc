package audio

import "errors"

var (
	// ErrInvalidInput indicates an empty or malformed waveform.
	ErrInvalidInput = errors.New("audio: invalid input waveform")
	// ErrInvalidRate indicates a non-positive sample rate.
	ErrInvalidRate = errors.New("audio: invalid sample rate")
)
