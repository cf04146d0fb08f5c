// SPDX-License-Identifier: MIT
// Package matrix: row-wise broadcast kernels and numeric comparison.
//
// Purpose:
//   - Per-row scalars applied to whole rows (ScaleRows, AddScaledRows, Combine):
//     the building blocks of batched geodesic formulas such as
//     cos(|v|)·p + sin(|v|)·v/|v|, where every row carries its own scalar.
//   - Weighted row contractions (WeightedRowDots) for diagonal bilinear forms.
//   - Scalar maps (Map) for element-wise transcendental functions.
//   - Tolerance-based comparison (AllClose, IsClose).
//
// Determinism:
//   - Fixed i→j loops; one allocation per call.

package matrix

import "math"

const (
	opScaleRows       = "ScaleRows"
	opAddScaledRows   = "AddScaledRows"
	opCombine         = "Combine"
	opWeightedRowDots = "WeightedRowDots"
	opAllClose        = "AllClose"
	opMap             = "Map"
)

// Map returns out[i,j] = f(X[i,j]).
// Unlike Dense.Apply it never consults the numeric policy: transcendental
// maps (sqrt, arccos, ...) may legitimately yield NaN for out-of-domain input
// and that value is passed through to the caller.
// Time: O(r*c). Space: O(r*c).
func Map(X Matrix, f func(v float64) float64) (*Dense, error) {
	d, err := unaryDense(X, opMap)
	if err != nil {
		return nil, err
	}
	out := newDenseLike(d)
	for idx, v := range d.data {
		out.data[idx] = f(v)
	}

	return out, nil
}

// ScaleRows computes out[i,j] = X[i,j] * scale[i].
// Time: O(r*c). Space: O(r*c).
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(scale) != Rows).
func ScaleRows(X Matrix, scale []float64) (*Dense, error) {
	d, err := unaryDense(X, opScaleRows)
	if err != nil {
		return nil, err
	}
	if err = ValidateVecLen(scale, d.r); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	out := newDenseLike(d)
	var i, j, base int
	var sf float64
	for i = 0; i < d.r; i++ {
		base = i * d.c // row base offset
		sf = scale[i]  // scale factor for row i
		for j = 0; j < d.c; j++ {
			out.data[base+j] = d.data[base+j] * sf
		}
	}

	return out, nil
}

// AddScaledRows computes out[i,:] = X[i,:] + scale[i]*Y[i,:].
// Time: O(r*c). Space: O(r*c).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func AddScaledRows(X Matrix, scale []float64, Y Matrix) (*Dense, error) {
	dx, dy, err := binaryDense(X, Y, opAddScaledRows)
	if err != nil {
		return nil, err
	}
	if err = ValidateVecLen(scale, dx.r); err != nil {
		return nil, matrixErrorf(opAddScaledRows, err)
	}
	out := newDenseLike(dx)
	var i, j, base int
	var sf float64
	for i = 0; i < dx.r; i++ {
		base = i * dx.c
		sf = scale[i]
		for j = 0; j < dx.c; j++ {
			out.data[base+j] = dx.data[base+j] + sf*dy.data[base+j]
		}
	}

	return out, nil
}

// Combine computes out[i,:] = a[i]*X[i,:] + b[i]*Y[i,:].
// Time: O(r*c). Space: O(r*c).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Combine(a []float64, X Matrix, b []float64, Y Matrix) (*Dense, error) {
	dx, dy, err := binaryDense(X, Y, opCombine)
	if err != nil {
		return nil, err
	}
	if err = ValidateVecLen(a, dx.r); err != nil {
		return nil, matrixErrorf(opCombine, err)
	}
	if err = ValidateVecLen(b, dx.r); err != nil {
		return nil, matrixErrorf(opCombine, err)
	}
	out := newDenseLike(dx)
	var i, j, base int
	var ai, bi float64
	for i = 0; i < dx.r; i++ {
		base = i * dx.c
		ai, bi = a[i], b[i]
		for j = 0; j < dx.c; j++ {
			out.data[base+j] = ai*dx.data[base+j] + bi*dy.data[base+j]
		}
	}

	return out, nil
}

// WeightedRowDots returns the r×1 column out[i] = Σ_j w[j]·u[i,j]·v[i,j],
// i.e. the row-wise contraction uᵢᵀ·diag(w)·vᵢ.
// Time: O(r*c). Space: O(r).
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ or len(w) != Cols).
func WeightedRowDots(u, v Matrix, w []float64) (*Dense, error) {
	du, dv, err := binaryDense(u, v, opWeightedRowDots)
	if err != nil {
		return nil, err
	}
	if err = ValidateVecLen(w, du.c); err != nil {
		return nil, matrixErrorf(opWeightedRowDots, err)
	}
	out, err := NewDense(du.r, 1)
	if err != nil {
		return nil, matrixErrorf(opWeightedRowDots, err)
	}
	var i, j, base int
	var acc float64
	for i = 0; i < du.r; i++ {
		acc = ZeroSum
		base = i * du.c
		for j = 0; j < du.c; j++ {
			acc += w[j] * du.data[base+j] * dv.data[base+j]
		}
		out.data[i] = acc
	}

	return out, nil
}

// IsClose reports |a-b| ≤ atol + rtol*|b|.
// NaN is never close to anything; equal infinities are close.
// Tolerances are used as given; callers normalize them (see AllClose).
func IsClose(a, b, rtol, atol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if a == b { // covers ±Inf == ±Inf
		return true
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// AllClose reports whether every cell pair of two equally shaped batches
// satisfies IsClose; it stops at the first violation.
//
// Policy:
//   - Negative tolerances count by magnitude.
//   - Non-finite tolerances fail with ErrNaNInf.
//   - Shape errors as Add.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	da, db, err := binaryDense(a, b, opAllClose)
	if err != nil {
		return false, err
	}
	for idx := range da.data {
		if !IsClose(da.data[idx], db.data[idx], rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}

// MaxAbsDiff returns max |a[i,j]-b[i,j]|; handy in error messages of tests and
// for reporting how far two batches drifted apart.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MaxAbsDiff(a, b Matrix) (float64, error) {
	da, db, err := binaryDense(a, b, "MaxAbsDiff")
	if err != nil {
		return 0, err
	}
	var worst float64
	for idx := range da.data {
		d := math.Abs(da.data[idx] - db.data[idx])
		if math.IsNaN(d) {
			return math.NaN(), nil
		}
		if d > worst {
			worst = d
		}
	}

	return worst, nil
}
