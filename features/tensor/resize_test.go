package tensor

import (
	"math"
	"testing"
)

func TestResizeExactDims(t *testing.T) {
	cases := []struct {
		name               string
		srcRows, srcCols   int
		wantRows, wantCols int
	}{
		{"enlarge both", 4, 4, 16, 16},
		{"shrink both", 64, 100, 16, 16},
		{"mixed", 8, 200, 32, 50},
		{"identity", 10, 10, 10, 10},
		{"single row", 1, 7, 5, 5},
		{"single col", 7, 1, 5, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := NewMatrix(tc.srcRows, tc.srcCols)
			for i := range src.Data {
				src.Data[i] = float64(i % 13)
			}

			out := Resize(src, tc.wantRows, tc.wantCols)
			if out.Rows != tc.wantRows || out.Cols != tc.wantCols {
				t.Fatalf("shape=(%d,%d), want (%d,%d)", out.Rows, out.Cols, tc.wantRows, tc.wantCols)
			}
		})
	}
}

func TestResizeConstantStaysConstant(t *testing.T) {
	src := NewMatrix(10, 20)
	for i := range src.Data {
		src.Data[i] = 3.5
	}

	for _, dims := range [][2]int{{5, 5}, {40, 40}, {3, 60}} {
		out := Resize(src, dims[0], dims[1])
		for i, v := range out.Data {
			if math.Abs(v-3.5) > 1e-12 {
				t.Fatalf("dims %v index %d: got %v, want 3.5", dims, i, v)
			}
		}
	}
}

func TestResizeShrinkAverages(t *testing.T) {
	// Halving a [0 0 2 2] row with area averaging yields [0 2].
	src := Matrix{Rows: 1, Cols: 4, Data: []float64{0, 0, 2, 2}}

	out := Resize(src, 1, 2)
	if math.Abs(out.At(0, 0)) > 1e-12 || math.Abs(out.At(0, 1)-2) > 1e-12 {
		t.Fatalf("got %v, want [0 2]", out.Data)
	}
}

func TestResizeShrinkPreservesMean(t *testing.T) {
	src := NewMatrix(32, 48)
	for i := range src.Data {
		src.Data[i] = float64(i % 7)
	}

	out := Resize(src, 8, 12)
	if math.Abs(out.Mean()-src.Mean()) > 0.05 {
		t.Fatalf("mean drifted: got %v, want about %v", out.Mean(), src.Mean())
	}
}

func TestResizeEnlargeInterpolates(t *testing.T) {
	src := Matrix{Rows: 1, Cols: 2, Data: []float64{0, 4}}

	out := Resize(src, 1, 4)

	// Edge clamping keeps the extremes, interior values lie between them.
	if out.At(0, 0) != 0 || out.At(0, 3) != 4 {
		t.Fatalf("edges=%v,%v, want 0,4", out.At(0, 0), out.At(0, 3))
	}

	for c := 1; c < 3; c++ {
		v := out.At(0, c)
		if v <= 0 || v >= 4 {
			t.Fatalf("col %d: %v not strictly between 0 and 4", c, v)
		}
	}

	if out.At(0, 1) >= out.At(0, 2) {
		t.Fatalf("interpolation not monotone: %v", out.Data)
	}
}

func TestResizeDegenerateInputs(t *testing.T) {
	out := Resize(Matrix{}, 4, 4)
	if out.Rows != 4 || out.Cols != 4 {
		t.Fatalf("shape=(%d,%d), want (4,4)", out.Rows, out.Cols)
	}

	for _, v := range out.Data {
		if v != 0 {
			t.Fatal("empty source must resize to zeros")
		}
	}

	if got := Resize(NewMatrix(2, 2), 0, 4); len(got.Data) != 0 {
		t.Fatal("non-positive target must yield an empty matrix")
	}
}
