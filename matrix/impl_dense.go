// SPDX-License-Identifier: MIT

// Package matrix - Dense batches (row-major) and their accessors.
//
// A Dense holds one sample per row: m points or tangent vectors of an
// n-dimensional ambient space are an m×n Dense. Storage is a single flat
// buffer indexed i*c + j, so a row is a contiguous slice and the row-wise
// kernels are plain loops.
//
// Guarantees:
//   - Public accessors return errors (ErrOutOfRange, ErrNaNInf) and never panic.
//   - Row extraction (Row, SliceRows, Induced) always copies, so chunks of a
//     batch can be processed concurrently and written back with SetRows.
//   - Loop orders are fixed; results are bit-for-bit reproducible.
//
// Costs: NewDense O(r*c); At/Set O(1); Row O(c); SliceRows O(k*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Method tags used in error wrappers.
const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxApply     = "Apply"
	ctxInduce    = "Induced"
	ctxRow       = "Row"
	ctxCol       = "Col"
	ctxSliceRows = "SliceRows"
	ctxSetRows   = "SetRows"
	ctxFrom      = "NewDenseFrom"
)

// denseErrorf tags err with the Dense method and the offending cell.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
type Dense struct {
	r, c           int       // rows (batch size) and cols (ambient dimension), both > 0
	data           []float64 // len == r*c, offset of (i,j) is i*c + j
	validateNaNInf bool      // when true, Set rejects NaN/±Inf
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense returns an r×c zero matrix carrying the default numeric policy.
// Errors: ErrInvalidDimensions unless rows > 0 and cols > 0.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: DefaultValidateNaNInf}, nil
}

// NewDenseFrom copies literal rows into a fresh Dense; the usual way to write
// a fixture batch.
//
// Implementation:
//   - Stage 1: the first row fixes the column count; empty input is rejected.
//   - Stage 2: each row is length-checked, then its cells are checked against
//     the numeric policy (opts) and copied.
//
// The result never aliases rows and keeps the policy for later Set calls.
//
// Errors:
//   - ErrInvalidDimensions (no rows, or an empty first row).
//   - ErrDimensionMismatch (ragged rows).
//   - ErrNaNInf (non-finite cell while the policy is on; the default).
func NewDenseFrom(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFrom, ErrInvalidDimensions)
	}
	o := NewOptions(opts...)
	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]float64, r*c), validateNaNInf: o.validateNaNInf}

	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w", ctxFrom, i, len(row), c, ErrDimensionMismatch)
		}
		for j, v := range row {
			if m.validateNaNInf && !isFinite(v) {
				return nil, denseErrorf(ctxFrom, i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// newDenseLike allocates a zero matrix with m's shape and policy. Kernels use
// it once shapes have been validated, so it cannot fail.
func newDenseLike(m *Dense) *Dense {
	return &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data)), validateNaNInf: m.validateNaNInf}
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows, Cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// offset maps (row, col) to the flat index, or returns ErrOutOfRange.
func (m *Dense) offset(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col).
// Errors: ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.offset(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: ErrOutOfRange; ErrNaNInf for a non-finite v while the policy is on.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.offset(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i, the natural way to read one sample.
// Errors: ErrOutOfRange.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...), nil
}

// Col returns a copy of column j. For the m×1 results of per-row reductions
// (dot products, distances) Col(0) yields the values as a slice.
// Errors: ErrOutOfRange.
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := range out {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy with the same numeric policy.
func (m *Dense) Clone() Matrix { return m.clone() }

func (m *Dense) clone() *Dense {
	cp := newDenseLike(m)
	copy(cp.data, m.data)

	return cp
}

// String renders one bracketed row per line, e.g. "[1, 0.5]\n".
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j, v := range m.data[i*m.c : (i+1)*m.c] {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", v)
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// Induced copies the submatrix selected by explicit row and column indices.
// Indices may repeat. The result keeps m's numeric policy.
// Errors: ErrInvalidDimensions (empty index set), ErrOutOfRange.
// Complexity: O(len(rowsIdx)*len(colsIdx)).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	res, err := NewDense(len(rowsIdx), len(colsIdx))
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxInduce, err)
	}
	res.validateNaNInf = m.validateNaNInf

	for _, cj := range colsIdx {
		if cj < 0 || cj >= m.c {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
		}
	}
	for i, ri := range rowsIdx {
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j, cj := range colsIdx {
			res.data[i*res.c+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// SliceRows copies the half-open row range [from, to) into a new Dense.
// Errors: ErrOutOfRange when the range is empty or leaves [0, Rows()].
func (m *Dense) SliceRows(from, to int) (*Dense, error) {
	if from < 0 || to > m.r || from >= to {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %w", ctxSliceRows, from, to, ErrOutOfRange)
	}
	res := &Dense{r: to - from, c: m.c, data: make([]float64, (to-from)*m.c), validateNaNInf: m.validateNaNInf}
	copy(res.data, m.data[from*m.c:to*m.c])

	return res, nil
}

// SetRows overwrites rows [at, at+src.Rows()) with src; the inverse of
// SliceRows when stitching processed chunks back together.
// Errors: ErrNilMatrix, ErrDimensionMismatch (column counts), ErrOutOfRange.
func (m *Dense) SetRows(at int, src *Dense) error {
	switch {
	case src == nil:
		return fmt.Errorf("Dense.%s: %w", ctxSetRows, ErrNilMatrix)
	case src.c != m.c:
		return fmt.Errorf("Dense.%s: %d cols into %d: %w", ctxSetRows, src.c, m.c, ErrDimensionMismatch)
	case at < 0 || at+src.r > m.r:
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetRows, at, ErrOutOfRange)
	}
	copy(m.data[at*m.c:], src.data)

	return nil
}

// Do visits every cell in row-major order until f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	for idx, v := range m.data {
		if !f(idx/m.c, idx%m.c, v) {
			return
		}
	}
}

// Apply replaces every cell with f(i, j, v) in place, row-major.
// Under the numeric policy a non-finite result aborts with ErrNaNInf; cells
// written before it keep their new values. Use Map for a policy-free,
// allocating variant.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var nv float64
	for idx, v := range m.data {
		i, j := idx/m.c, idx%m.c
		nv = f(i, j, v)
		if m.validateNaNInf && !isFinite(nv) {
			return denseErrorf(ctxApply, i, j, ErrNaNInf)
		}
		m.data[idx] = nv
	}

	return nil
}

// AsDense returns m itself when it is a *Dense, otherwise a copy read once
// through At. Kernels call it per operand so their loops run on flat slices;
// callers needing row slicing on an arbitrary Matrix use it the same way.
// Treat the result as read-only: it may alias m.
// Errors: ErrNilMatrix, ErrInvalidDimensions, or the At failure.
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for idx := range out.data {
		i, j := idx/out.c, idx%out.c
		v, err := m.At(i, j)
		if err != nil {
			return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
		}
		out.data[idx] = v
	}

	return out, nil
}
