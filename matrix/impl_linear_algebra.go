// SPDX-License-Identifier: MIT
// Package matrix - batch arithmetic over any Matrix.
//
// Kernels: Add, Sub, Scale, Negate, Hadamard, Mul, Transpose, MatVec, RowSums.
// Each one checks shapes before touching data, reads operands through AsDense
// and writes into a freshly allocated *Dense; operands are left untouched.

package matrix

import "fmt"

// ZeroSum seeds every accumulator.
const ZeroSum = 0.0

// Kernel tags prefixed to wrapped errors.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opNegate    = "Negate"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
	opRowSums   = "RowSums"
)

// matrixErrorf prefixes a non-nil err with tag; errors.Is still sees the cause.
func matrixErrorf(tag string, cause error) error {
	return fmt.Errorf("%s: %w", tag, cause)
}

// binaryDense validates a,b as same-shape non-nil operands and returns their
// flat-slice forms. Shared prologue of all element-wise binary kernels.
func binaryDense(a, b Matrix, opTag string) (*Dense, *Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, nil, matrixErrorf(opTag, err)
	}
	da, err := AsDense(a)
	if err != nil {
		return nil, nil, matrixErrorf(opTag, err)
	}
	db, err := AsDense(b)
	if err != nil {
		return nil, nil, matrixErrorf(opTag, err)
	}

	return da, db, nil
}

// unaryDense validates m as non-nil and returns its flat-slice form.
func unaryDense(m Matrix, opTag string) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	d, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	return d, nil
}

// addSub is a + sign*b; Add and Sub differ only in sign.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	da, db, err := binaryDense(a, b, opTag)
	if err != nil {
		return nil, err
	}
	out := newDenseLike(da)
	for idx, x := range da.data {
		out.data[idx] = x + sign*db.data[idx]
	}

	return out, nil
}

// Add returns the cell-wise sum a + b.
// Errors: ErrNilMatrix; ErrDimensionMismatch for unequal shapes.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns the cell-wise difference a − b.
// Errors: as Add.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul returns the product a·b, used by metric.Metric to apply a general form.
//
// Implementation:
//   - Stage 1: require a.Cols() == b.Rows() and allocate the a.Rows()×b.Cols() result.
//   - Stage 2: accumulate in i, k, j order so the innermost loop walks a row of
//     b and a row of the result contiguously; a zero a[i,k] contributes nothing
//     and is skipped.
//
// Errors: ErrNilMatrix; ErrDimensionMismatch for incompatible inner sizes.
// Complexity: O(r*n*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := AsDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := AsDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	out, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	for i := 0; i < da.r; i++ {
		dst := out.data[i*db.c : (i+1)*db.c]
		for k, aik := range da.data[i*da.c : (i+1)*da.c] {
			if aik == 0 {
				continue
			}
			for j, bkj := range db.data[k*db.c : (k+1)*db.c] {
				dst[j] += aik * bkj
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ.
// Errors: ErrNilMatrix.
func Transpose(m Matrix) (*Dense, error) {
	d, err := unaryDense(m, opTranspose)
	if err != nil {
		return nil, err
	}
	out, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for idx, v := range d.data {
		i, j := idx/d.c, idx%d.c
		out.data[j*d.r+i] = v
	}

	return out, nil
}

// Scale returns alpha·m. Scale(m, 1) is a cheap way to detach an
// independent *Dense from any Matrix.
// Errors: ErrNilMatrix.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	d, err := unaryDense(m, opScale)
	if err != nil {
		return nil, err
	}
	out := newDenseLike(d)
	for idx, v := range d.data {
		out.data[idx] = alpha * v
	}

	return out, nil
}

// Negate returns −m.
func Negate(m Matrix) (*Dense, error) {
	d, err := unaryDense(m, opNegate)
	if err != nil {
		return nil, err
	}
	out := newDenseLike(d)
	for idx, v := range d.data {
		out.data[idx] = -v
	}

	return out, nil
}

// Hadamard returns the cell-wise product a ⊙ b.
// Errors: as Add.
func Hadamard(a, b Matrix) (*Dense, error) {
	da, db, err := binaryDense(a, b, opHadamard)
	if err != nil {
		return nil, err
	}
	out := newDenseLike(da)
	for idx, x := range da.data {
		out.data[idx] = x * db.data[idx]
	}

	return out, nil
}

// MatVec returns y = m·x with len(x) == m.Cols() and len(y) == m.Rows().
func MatVec(m Matrix, x []float64) ([]float64, error) {
	d, err := unaryDense(m, opMatVec)
	if err != nil {
		return nil, err
	}
	if err = ValidateVecLen(x, d.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	for i := range y {
		acc := ZeroSum
		for j, v := range d.data[i*d.c : (i+1)*d.c] {
			acc += v * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// RowSums returns the r×1 column of per-row totals, Σⱼ m[i,j].
func RowSums(m Matrix) (*Dense, error) {
	d, err := unaryDense(m, opRowSums)
	if err != nil {
		return nil, err
	}
	out, err := NewDense(d.r, 1)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	for i := range out.data {
		acc := ZeroSum
		for _, v := range d.data[i*d.c : (i+1)*d.c] {
			acc += v
		}
		out.data[i] = acc
	}

	return out, nil
}
