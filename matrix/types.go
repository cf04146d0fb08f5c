// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// A batch of points or tangent vectors is a Matrix whose rows are independent
// samples; every kernel in this package preserves that row independence.
package matrix

// Matrix is a two-dimensional mutable array of float64 values. *Dense is the
// only implementation in this module; any other implementation is accepted by
// every kernel and read once through At.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows (batch size).
	Rows() int

	// Cols returns the number of columns (ambient dimension).
	Cols() int

	// At returns the element at (i, j), or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set stores v at (i, j), or returns ErrOutOfRange (or ErrNaNInf under the
	// implementation's numeric policy).
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
