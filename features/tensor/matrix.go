package tensor

// Matrix is a dense row-major 2-D feature matrix. Rows hold frequency bins
// or coefficients, columns hold time frames.
type Matrix struct {
	Rows int
	Cols int
	Data []float64
}

// NewMatrix creates a zeroed rows x cols matrix.
func NewMatrix(rows, cols int) Matrix {
	if rows < 0 {
		rows = 0
	}

	if cols < 0 {
		cols = 0
	}

	return Matrix{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// At returns the element at row r, column c.
func (m Matrix) At(r, c int) float64 {
	return m.Data[r*m.Cols+c]
}

// Set stores v at row r, column c.
func (m Matrix) Set(r, c int, v float64) {
	m.Data[r*m.Cols+c] = v
}

// Row returns the slice backing row r. The slice aliases the matrix data.
func (m Matrix) Row(r int) []float64 {
	return m.Data[r*m.Cols : (r+1)*m.Cols]
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := Matrix{Rows: m.Rows, Cols: m.Cols, Data: make([]float64, len(m.Data))}
	copy(out.Data, m.Data)

	return out
}

// Mean returns the arithmetic mean over all elements, or 0 for an empty
// matrix.
func (m Matrix) Mean() float64 {
	if len(m.Data) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range m.Data {
		sum += v
	}

	return sum / float64(len(m.Data))
}

// Tensor is an ordered stack of equally shaped matrices along a leading
// channel axis.
type Tensor struct {
	Planes []Matrix
}

// Channels returns the channel count.
func (t Tensor) Channels() int { return len(t.Planes) }

// Rows returns the per-plane row count, or 0 for an empty tensor.
func (t Tensor) Rows() int {
	if len(t.Planes) == 0 {
		return 0
	}

	return t.Planes[0].Rows
}

// Cols returns the per-plane column count, or 0 for an empty tensor.
func (t Tensor) Cols() int {
	if len(t.Planes) == 0 {
		return 0
	}

	return t.Planes[0].Cols
}

// FromMatrix wraps a single matrix as a 1-channel tensor without copying.
func FromMatrix(m Matrix) Tensor {
	return Tensor{Planes: []Matrix{m}}
}
