package tensor

// PadTo places m top-left aligned into a zeroed rows x cols buffer.
//
// Rows or columns of m beyond the target shape are dropped. Truncation and
// zero padding are the documented recovery strategy here; this never fails.
func PadTo(m Matrix, rows, cols int) Matrix {
	out := NewMatrix(rows, cols)

	copyRows := min(m.Rows, rows)
	copyCols := min(m.Cols, cols)

	for r := range copyRows {
		copy(out.Row(r)[:copyCols], m.Row(r)[:copyCols])
	}

	return out
}

// ChunkCols splits m along the time axis into consecutive segments of the
// given column width. The final segment is zero-padded when the total width
// is not an exact multiple. A non-positive width yields a single padded
// chunk of the original width.
func ChunkCols(m Matrix, width int) []Matrix {
	if width <= 0 || width >= m.Cols {
		return []Matrix{PadTo(m, m.Rows, max(width, m.Cols))}
	}

	count := (m.Cols + width - 1) / width
	out := make([]Matrix, 0, count)

	for i := range count {
		chunk := NewMatrix(m.Rows, width)

		start := i * width

		n := min(width, m.Cols-start)
		for r := range m.Rows {
			copy(chunk.Row(r)[:n], m.Row(r)[start:start+n])
		}

		out = append(out, chunk)
	}

	return out
}

// RepeatChannels replicates a single-channel matrix n times along the
// channel axis. All planes are element-wise identical copies; no new
// information is added.
func RepeatChannels(m Matrix, n int) Tensor {
	if n <= 0 {
		n = 1
	}

	planes := make([]Matrix, n)
	for i := range planes {
		planes[i] = m.Clone()
	}

	return Tensor{Planes: planes}
}
