// Package dense: core buffer type.
// Dense is a concrete, row-major matrix storing elements in a flat slice
// for performance and cache friendliness. All mutating access used by the
// solve kernels goes through RowView/RowViews so the aliasing of packed
// L/U regions stays inside one well-defined type.

package dense

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The zero value is unusable; construct via New or NewFromRows.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// New creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewFromRows creates a Dense matrix from a slice of row slices.
// Stage 1 (Validate): non-empty input, equal row lengths.
// Stage 2 (Prepare): allocate backing storage.
// Stage 3 (Execute): copy rows into flat layout.
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	// Validate outer shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])

	// Validate that the input is rectangular
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has length %d, want %d: %w",
				i, len(rows[i]), c, ErrDimensionMismatch)
		}
	}

	// Copy rows into flat storage
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// RowView returns a slice aliasing row i of the backing storage.
// Writes through the returned slice mutate the matrix in place; this is
// the sanctioned accessor for kernels that update rows incrementally.
// The slice must not be retained past the lifetime of the matrix.
// Complexity: O(1); no copy is made.
func (m *Dense) RowView(row int) ([]float64, error) {
	// Validate row index only; the full row is exposed
	if row < 0 || row >= m.r {
		return nil, denseErrorf("RowView", row, 0, ErrIndexOutOfBounds)
	}

	return m.data[row*m.c : (row+1)*m.c : (row+1)*m.c], nil
}

// RowViews returns one aliasing slice per row, sharing the backing storage.
// The result gives kernels C-style a[i][j] addressing over the same memory
// without exposing flat index arithmetic at call sites.
// Complexity: O(r) time, O(r) memory for the slice headers.
func (m *Dense) RowViews() [][]float64 {
	rows := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		rows[i] = m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
	}

	return rows
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// CopyFrom overwrites m with the contents of src.
// Stage 1 (Validate): src non-nil, shapes equal.
// Stage 2 (Execute): bulk copy of backing storage.
// Complexity: O(r*c).
func (m *Dense) CopyFrom(src *Dense) error {
	if src == nil {
		return ErrNilMatrix
	}
	if src.r != m.r || src.c != m.c {
		return fmt.Errorf("Dense.CopyFrom: source %dx%d, target %dx%d: %w",
			src.r, src.c, m.r, m.c, ErrDimensionMismatch)
	}
	copy(m.data, src.data)

	return nil
}

// String implements fmt.Stringer for easy debugging.
// Rows are printed one per line in a fixed-width grid.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&sb, "%8.4f", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
