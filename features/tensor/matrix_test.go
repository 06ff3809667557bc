package tensor

import (
	"math"
	"testing"
)

func TestNewMatrixClampsNegative(t *testing.T) {
	m := NewMatrix(-1, 5)
	if m.Rows != 0 || len(m.Data) != 0 {
		t.Fatalf("negative rows must clamp to empty: %+v", m)
	}
}

func TestMatrixAtSetRow(t *testing.T) {
	m := NewMatrix(2, 3)
	m.Set(1, 2, 7)

	if got := m.At(1, 2); got != 7 {
		t.Fatalf("At(1,2)=%v, want 7", got)
	}

	row := m.Row(1)
	if len(row) != 3 || row[2] != 7 {
		t.Fatalf("Row(1)=%v, want [0 0 7]", row)
	}

	// Row aliases the backing data.
	row[0] = 5
	if m.At(1, 0) != 5 {
		t.Fatal("Row must alias the matrix data")
	}
}

func TestMatrixClone(t *testing.T) {
	m := NewMatrix(2, 2)
	m.Set(0, 0, 1)

	c := m.Clone()
	c.Set(0, 0, 9)

	if m.At(0, 0) != 1 {
		t.Fatal("Clone must not alias the source")
	}
}

func TestMatrixMean(t *testing.T) {
	m := Matrix{Rows: 2, Cols: 2, Data: []float64{1, 2, 3, 4}}
	if got := m.Mean(); math.Abs(got-2.5) > 1e-12 {
		t.Fatalf("mean=%v, want 2.5", got)
	}

	if got := (Matrix{}).Mean(); got != 0 {
		t.Fatalf("empty mean=%v, want 0", got)
	}
}

func TestTensorShape(t *testing.T) {
	tn := FromMatrix(NewMatrix(4, 6))

	if tn.Channels() != 1 || tn.Rows() != 4 || tn.Cols() != 6 {
		t.Fatalf("shape=(%d,%d,%d), want (1,4,6)", tn.Channels(), tn.Rows(), tn.Cols())
	}

	var empty Tensor
	if empty.Channels() != 0 || empty.Rows() != 0 || empty.Cols() != 0 {
		t.Fatal("empty tensor must report zero shape")
	}
}
