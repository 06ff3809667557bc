package transform

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func writeToneWAV(t *testing.T, rate, seconds int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tone.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 16, 1, 1)

	n := rate * seconds
	data := make([]int, n)
	step := 2 * math.Pi * 440 / float64(rate)

	for i := range data {
		data[i] = int(0.5 * 32767 * math.Sin(step*float64(i)))
	}

	err = enc.Write(&goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: rate},
		SourceBitDepth: 16,
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder: %v", err)
	}

	return path
}

func TestProcessFile(t *testing.T) {
	p, err := New(MelResizeRepeat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := p.ProcessFile(writeToneWAV(t, 22050, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := res.Single()
	if out.Channels() != 3 || out.Rows() != 128 || out.Cols() != 128 {
		t.Fatalf("shape=(%d,%d,%d), want (3,128,128)",
			out.Channels(), out.Rows(), out.Cols())
	}
}

func TestProcessFileMissing(t *testing.T) {
	p, err := New(MelResizeRepeat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := p.ProcessFile(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
