// SPDX-License-Identifier: MIT
// Package matrix: shared validation checks.
//
// Purpose:
//   - One place for the nil / shape / symmetry checks every kernel runs before
//     touching data, so kernels stay loop-only.
//   - Failures carry the offending shapes in the message ("2×3 vs 3×3") and
//     wrap a sentinel, so callers still match with errors.Is.
//
// Determinism & Performance:
//   - Pure checks. Shape checks are O(1); symmetry and diagonality O(n²).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps err with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf reports two shapes that disagree.
func shapeErrorf(tag string, a, b Matrix) error {
	return fmt.Errorf("%s: %d×%d vs %d×%d: %w", tag, a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
}

// ValidateNotNil reports ErrNilMatrix for a nil interface and for a typed nil
// *Dense stored in one.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape requires equal Rows and Cols. Operands must be non-nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return shapeErrorf("ValidateSameShape", a, b)
	}

	return nil
}

// ValidateSquare requires Rows == Cols.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return fmt.Errorf("ValidateSquare: %d×%d: %w", m.Rows(), m.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen requires a non-nil x of length n. It guards every per-row
// or per-column scalar slice (ScaleRows, Combine, WeightedRowDots, MatVec).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return fmt.Errorf("ValidateVecLen: len %d, want %d: %w", len(x), n, ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is NotNil(a) → NotNil(b) → SameShape(a, b), the
// prologue of every element-wise binary kernel.
func ValidateBinarySameShape(a, b Matrix) error {
	for _, m := range [...]Matrix{a, b} {
		if err := ValidateNotNil(m); err != nil {
			return validatorErrorf("ValidateBinarySameShape", err)
		}
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible requires non-nil operands with a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return shapeErrorf("ValidateMulCompatible", a, b)
	}

	return nil
}

// squareWithTol is the shared prologue of the O(n²) structure checks: m
// non-nil and square, tol finite. A negative tol is used as |tol|.
func squareWithTol(m Matrix, tol float64) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, err
	}
	if err := ValidateSquare(m); err != nil {
		return 0, err
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, ErrNaNInf
	}

	return math.Abs(tol), nil
}

// ValidateSymmetric requires |m[i,j] − m[j,i]| ≤ tol for all i < j.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (tol), ErrAsymmetry.
func ValidateSymmetric(m Matrix, tol float64) error {
	tol, err := squareWithTol(m, tol)
	if err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	d, err := AsDense(m)
	if err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}

	n := d.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // upper triangle only
			if math.Abs(d.data[i*n+j]-d.data[j*n+i]) > tol {
				return fmt.Errorf("ValidateSymmetric: (%d,%d): %w", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// IsZeroOffDiagonal reports whether max_{i≠j} |m[i,j]| ≤ tol.
// Errors as ValidateSymmetric, minus ErrAsymmetry.
func IsZeroOffDiagonal(m Matrix, tol float64) (bool, error) {
	tol, err := squareWithTol(m, tol)
	if err != nil {
		return false, validatorErrorf("IsZeroOffDiagonal", err)
	}
	d, err := AsDense(m)
	if err != nil {
		return false, validatorErrorf("IsZeroOffDiagonal", err)
	}

	n := d.r
	for idx, v := range d.data {
		if idx/n != idx%n && math.Abs(v) > tol {
			return false, nil
		}
	}

	return true, nil
}
