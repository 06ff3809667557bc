// Package tensor provides the dense 2-D feature matrix and 3-D channel
// tensor types used by the feature transforms, along with the shape
// primitives that force arbitrary-length extractor output into fixed model
// dimensions: antialiased resize, top-left zero padding, column chunking,
// and channel repetition.
//
// Padding and truncation are the documented recovery strategy for shape
// mismatches; none of these operations fail on oversized or undersized
// input.
package tensor
