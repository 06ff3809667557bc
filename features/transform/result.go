package transform

import "github.com/ir2718/lumen-audio/features/tensor"

// Result holds the output of one Process call: either a single fixed-shape
// tensor or an ordered chunk list produced by a chunking normalizer.
type Result struct {
	tensors []tensor.Tensor
	chunked bool
}

func singleResult(t tensor.Tensor) *Result {
	return &Result{tensors: []tensor.Tensor{t}}
}

func chunkedResult(ts []tensor.Tensor) *Result {
	return &Result{tensors: ts, chunked: true}
}

// IsChunked reports whether the result is an ordered chunk list.
func (r *Result) IsChunked() bool { return r.chunked }

// Single returns the single output tensor. For a chunked result it returns
// the first chunk.
func (r *Result) Single() tensor.Tensor {
	if len(r.tensors) == 0 {
		return tensor.Tensor{}
	}

	return r.tensors[0]
}

// Chunks returns the ordered chunk list.
func (r *Result) Chunks() []tensor.Tensor { return r.tensors }

// Len returns the number of tensors in the result.
func (r *Result) Len() int { return len(r.tensors) }
