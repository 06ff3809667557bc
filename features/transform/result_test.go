package transform

import (
	"testing"

	"github.com/ir2718/lumen-audio/features/tensor"
)

func TestResultSingle(t *testing.T) {
	r := singleResult(tensor.FromMatrix(tensor.NewMatrix(2, 3)))

	if r.IsChunked() {
		t.Fatal("single result must not be chunked")
	}

	if r.Len() != 1 {
		t.Fatalf("len=%d, want 1", r.Len())
	}

	if got := r.Single(); got.Rows() != 2 || got.Cols() != 3 {
		t.Fatalf("shape=(%d,%d)", got.Rows(), got.Cols())
	}
}

func TestResultChunked(t *testing.T) {
	chunks := []tensor.Tensor{
		tensor.FromMatrix(tensor.NewMatrix(2, 2)),
		tensor.FromMatrix(tensor.NewMatrix(2, 2)),
	}

	r := chunkedResult(chunks)

	if !r.IsChunked() {
		t.Fatal("chunked result must report chunked")
	}

	if r.Len() != 2 || len(r.Chunks()) != 2 {
		t.Fatalf("len=%d chunks=%d, want 2", r.Len(), len(r.Chunks()))
	}

	// Single falls back to the first chunk.
	if got := r.Single(); got.Rows() != 2 {
		t.Fatalf("rows=%d, want 2", got.Rows())
	}
}

func TestResultEmpty(t *testing.T) {
	r := &Result{}
	if got := r.Single(); got.Channels() != 0 {
		t.Fatal("empty result yields an empty tensor")
	}
}
