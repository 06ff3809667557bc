package extract

import (
	"math"
	"testing"

	"github.com/ir2718/lumen-audio/internal/testutil"
)

func TestNewSTFTValidation(t *testing.T) {
	cases := []struct {
		name    string
		fftSize int
		hop     int
		wantErr bool
	}{
		{"valid", 1024, 320, false},
		{"small power of two", 4, 1, false},
		{"not a power of two", 1000, 320, true},
		{"zero fft size", 0, 320, true},
		{"negative fft size", -8, 320, true},
		{"zero hop", 1024, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSTFT(tc.fftSize, tc.hop)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err=%v, wantErr=%v", err, tc.wantErr)
			}
		})
	}
}

func TestSTFTShape(t *testing.T) {
	s, err := NewSTFT(512, 160)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := s.Bins(); got != 257 {
		t.Fatalf("bins=%d, want 257", got)
	}

	cases := []struct {
		samples int
		frames  int
	}{
		{160, 2},
		{1600, 11},
		{16000, 101},
		{1, 1},
		{0, 0},
	}

	for _, tc := range cases {
		if got := s.FrameCount(tc.samples); got != tc.frames {
			t.Fatalf("FrameCount(%d)=%d, want %d", tc.samples, got, tc.frames)
		}
	}

	out, err := s.PowerFrames(testutil.Sine(440, 16000, 1, 16000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Rows != 257 || out.Cols != 101 {
		t.Fatalf("shape=(%d,%d), want (257,101)", out.Rows, out.Cols)
	}
}

func TestSTFTPowerNonNegative(t *testing.T) {
	s, err := NewSTFT(256, 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := s.PowerFrames(testutil.SeededNoise(3, 1, 4096))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.RequireFinite(t, out.Data)

	for i, v := range out.Data {
		if v < 0 {
			t.Fatalf("index %d: negative power %v", i, v)
		}
	}
}

func TestSTFTSinePeakBin(t *testing.T) {
	const (
		rate    = 16000.0
		fftSize = 1024
		hop     = 256
		freq    = 1000.0
	)

	s, err := NewSTFT(fftSize, hop)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := s.PowerFrames(testutil.Sine(freq, rate, 1, 16000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// An interior frame of a steady sine peaks at the bin nearest the tone.
	frame := out.Cols / 2

	peak := 0
	for k := 1; k < out.Rows; k++ {
		if out.At(k, frame) > out.At(peak, frame) {
			peak = k
		}
	}

	want := int(math.Round(freq * fftSize / rate))
	if peak != want {
		t.Fatalf("peak bin=%d, want %d", peak, want)
	}
}

func TestSTFTEmptyInput(t *testing.T) {
	s, err := NewSTFT(256, 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.PowerFrames(nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}
