// SPDX-License-Identifier: MIT

package metric

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/riemann/matrix"
)

var (
	// ErrBadDimension is returned when a metric of non-positive size is requested.
	ErrBadDimension = errors.New("metric: dimension must be > 0")

	// ErrNilMetric indicates a nil *Metric receiver.
	ErrNilMetric = errors.New("metric: nil metric")
)

// DimensionError reports a shape disagreement between batched operands:
// different row counts, or a column count that differs from the ambient
// dimension of the form. It matches matrix.ErrDimensionMismatch via errors.Is,
// and errors.As recovers the offending shapes.
type DimensionError struct {
	Op    string // operation tag, e.g. "Dot"
	Want  int    // ambient dimension required by the metric
	URows int    // rows of the first operand
	UCols int    // columns of the first operand
	VRows int    // rows of the second operand (== URows for unary checks)
	VCols int    // columns of the second operand (== UCols for unary checks)
}

// Error implements error.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("metric: %s: shapes %d×%d and %d×%d, want m×%d for both",
		e.Op, e.URows, e.UCols, e.VRows, e.VCols, e.Want)
}

// Unwrap exposes the matrix sentinel.
func (e *DimensionError) Unwrap() error { return matrix.ErrDimensionMismatch }
