package tensor

import "math"

// Resize scales m to exactly rows x cols, treating it as a single-channel
// image.
//
// Each axis is resized independently: enlargement uses bilinear
// interpolation, reduction uses area averaging so that high-frequency
// content is low-passed rather than aliased. Always produces one output per
// input regardless of the input shape.
func Resize(m Matrix, rows, cols int) Matrix {
	if rows <= 0 || cols <= 0 || m.Rows == 0 || m.Cols == 0 {
		return NewMatrix(rows, cols)
	}

	if m.Rows == rows && m.Cols == cols {
		return m.Clone()
	}

	// Columns first, then rows; the passes are independent.
	tmp := Matrix{Rows: m.Rows, Cols: cols, Data: make([]float64, m.Rows*cols)}
	for r := range m.Rows {
		resizeAxis(tmp.Row(r), m.Row(r))
	}

	out := NewMatrix(rows, cols)

	srcCol := make([]float64, m.Rows)
	dstCol := make([]float64, rows)

	for c := range cols {
		for r := range m.Rows {
			srcCol[r] = tmp.At(r, c)
		}

		resizeAxis(dstCol, srcCol)

		for r := range rows {
			out.Set(r, c, dstCol[r])
		}
	}

	return out
}

// resizeAxis resamples src into dst along one axis.
func resizeAxis(dst, src []float64) {
	if len(dst) == len(src) {
		copy(dst, src)
		return
	}

	if len(dst) < len(src) {
		shrinkAxis(dst, src)
		return
	}

	enlargeAxis(dst, src)
}

// shrinkAxis reduces src into dst using area averaging. Each destination
// cell covers the source interval [i*scale, (i+1)*scale) and receives the
// length-weighted mean of the overlapped source cells.
func shrinkAxis(dst, src []float64) {
	scale := float64(len(src)) / float64(len(dst))

	for i := range dst {
		lo := float64(i) * scale
		hi := float64(i+1) * scale

		first := int(lo)

		last := int(math.Ceil(hi)) - 1
		if last >= len(src) {
			last = len(src) - 1
		}

		sum := 0.0
		weight := 0.0

		for j := first; j <= last; j++ {
			w := math.Min(hi, float64(j+1)) - math.Max(lo, float64(j))
			if w <= 0 {
				continue
			}

			sum += src[j] * w
			weight += w
		}

		if weight > 0 {
			dst[i] = sum / weight
		}
	}
}

// enlargeAxis expands src into dst using center-aligned bilinear
// interpolation with edge clamping.
func enlargeAxis(dst, src []float64) {
	scale := float64(len(src)) / float64(len(dst))

	for i := range dst {
		pos := (float64(i)+0.5)*scale - 0.5
		if pos <= 0 {
			dst[i] = src[0]
			continue
		}

		if pos >= float64(len(src)-1) {
			dst[i] = src[len(src)-1]
			continue
		}

		j := int(pos)
		frac := pos - float64(j)
		dst[i] = src[j] + frac*(src[j+1]-src[j])
	}
}
