package extract

import (
	"math"
	"testing"

	"github.com/ir2718/lumen-audio/internal/testutil"
)

func TestMFCCShape(t *testing.T) {
	cases := []struct {
		name     string
		params   MFCCParams
		wantRows int
	}{
		{"defaults", MFCCParams{}, 20},
		{"custom count", MFCCParams{Coefficients: 13}, 13},
		{"dct type 3", MFCCParams{Coefficients: 13, DCTType: 3}, 13},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := MFCC(testutil.Sine(440, 16000, 1, 16000), 16000, tc.params)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if out.Rows != tc.wantRows {
				t.Fatalf("rows=%d, want %d", out.Rows, tc.wantRows)
			}

			if out.Cols != 51 {
				t.Fatalf("cols=%d, want 51", out.Cols)
			}

			testutil.RequireFinite(t, out.Data)
		})
	}
}

func TestMFCCInvalidDCTType(t *testing.T) {
	_, err := MFCC([]float64{1}, 16000, MFCCParams{Coefficients: 13, DCTType: 4})
	if err == nil {
		t.Fatal("expected error for unsupported DCT type")
	}
}

func TestMFCCDistinguishesSignals(t *testing.T) {
	a, err := MFCC(testutil.Sine(440, 16000, 1, 8000), 16000, MFCCParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := MFCC(testutil.SeededNoise(9, 1, 8000), 16000, MFCCParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	frame := a.Cols / 2

	diff := 0.0
	for k := range a.Rows {
		diff += math.Abs(a.At(k, frame) - b.At(k, frame))
	}

	if diff < 1 {
		t.Fatalf("cepstra of a tone and noise should differ, total diff %v", diff)
	}
}

func TestDCT2Ortho(t *testing.T) {
	// The DCT-II of a constant vector concentrates all energy in k=0.
	src := []float64{2, 2, 2, 2}
	dst := make([]float64, 4)
	dct2Ortho(dst, src)

	if math.Abs(dst[0]-4) > 1e-12 {
		t.Fatalf("dst[0]=%v, want 4", dst[0])
	}

	for k := 1; k < len(dst); k++ {
		if math.Abs(dst[k]) > 1e-12 {
			t.Fatalf("dst[%d]=%v, want 0", k, dst[k])
		}
	}
}

func TestDCT3InvertsDCT2(t *testing.T) {
	src := []float64{1, -2, 3, 0.5, -1, 2, 0, 4}

	mid := make([]float64, len(src))
	dct2Ortho(mid, src)

	out := make([]float64, len(src))
	dct3Ortho(out, mid)

	testutil.RequireSliceNearlyEqual(t, out, src, 1e-9)
}
