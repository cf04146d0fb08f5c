// SPDX-License-Identifier: MIT
// Package matrix — constructor facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for neutral matrices
//     (identity, diagonal, zeros) used to build bilinear forms and buffers.
//   - Each facade delegates to NewDense; no hidden work beyond the fill loop.

package matrix

import "fmt"

const (
	opIdentity = "NewIdentity"
	opDiagonal = "NewDiagonal"
)

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewDiagonal returns the square matrix diag(d).
// Errors: ErrInvalidDimensions for an empty d, ErrNaNInf for non-finite entries.
// Complexity: O(n^2).
func NewDiagonal(d []float64) (*Dense, error) {
	n := len(d)
	D, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	for i, v := range d {
		if err = D.Set(i, i, v); err != nil {
			return nil, matrixErrorf(opDiagonal, fmt.Errorf("entry %d: %w", i, err))
		}
	}

	return D, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// Diagonal returns a copy of the main diagonal of a square matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
func Diagonal(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Diagonal", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("Diagonal", err)
	}
	n := m.Rows()
	out := make([]float64, n)
	var err error
	for i := 0; i < n; i++ {
		if out[i], err = m.At(i, i); err != nil {
			return nil, matrixErrorf("Diagonal", err)
		}
	}

	return out, nil
}
