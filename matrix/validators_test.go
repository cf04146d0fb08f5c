// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/riemann/matrix"
)

func TestValidateNotNil(t *testing.T) {
	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateShapes(t *testing.T) {
	a := MustDense(t, 2, 3)

	require.NoError(t, matrix.ValidateSameShape(a, MustDense(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateSameShape(a, MustDense(t, 3, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSquare(a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateMulCompatible(a, MustDense(t, 3, 1)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

func TestValidateSymmetric(t *testing.T) {
	sym := MustFrom(t, [][]float64{{1, 2}, {2, 1}})
	asym := MustFrom(t, [][]float64{{1, 2}, {2.1, 1}})

	require.NoError(t, matrix.ValidateSymmetric(sym, 0))
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 1e-3), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, -0.2), "negative tolerance is flipped")
	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3), 0), matrix.ErrDimensionMismatch)

	diag, err := matrix.IsZeroOffDiagonal(sym, 0)
	require.NoError(t, err)
	require.False(t, diag)

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	diag, err = matrix.IsZeroOffDiagonal(id, 0)
	require.NoError(t, err)
	require.True(t, diag)
}
