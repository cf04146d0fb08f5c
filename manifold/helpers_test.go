// SPDX-License-Identifier: MIT

package manifold_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/riemann/manifold"
	"github.com/katalvlaran/riemann/matrix"
)

// decimal6 mirrors a six-decimal almost-equal comparison.
const decimal6 = 1.5e-6

func mustFrom(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(tb, err)

	return m
}

func mustSphere(tb testing.TB, n int, opts ...manifold.Option) *manifold.Sphere {
	tb.Helper()
	s, err := manifold.NewSphere(n, opts...)
	require.NoError(tb, err)

	return s
}

func mustHyperboloid(tb testing.TB, n int, opts ...manifold.Option) *manifold.Hyperboloid {
	tb.Helper()
	h, err := manifold.NewHyperboloid(n, opts...)
	require.NoError(tb, err)

	return h
}

func column(tb testing.TB, m *matrix.Dense) []float64 {
	tb.Helper()
	require.Equal(tb, 1, m.Cols())
	c, err := m.Col(0)
	require.NoError(tb, err)

	return c
}

// requireClose compares every cell of got to want within tol.
func requireClose(tb testing.TB, want [][]float64, got matrix.Matrix, tol float64) {
	tb.Helper()
	requireAllClose(tb, mustFrom(tb, want), got, tol)
}

func requireAllClose(tb testing.TB, want, got matrix.Matrix, tol float64) {
	tb.Helper()
	ok, err := matrix.AllClose(got, want, 0, tol)
	require.NoError(tb, err)
	if !ok {
		diff, _ := matrix.MaxAbsDiff(got, want)
		require.Failf(tb, "not close", "max |Δ| = %g > %g\nwant:\n%vgot:\n%v", diff, tol, want, got)
	}
}

func requireAll(tb testing.TB, got []bool, msg string) {
	tb.Helper()
	for i, ok := range got {
		require.Truef(tb, ok, "%s: row %d", msg, i)
	}
}

// randomAmbient returns rows×cols values in [-1, 1) from a fixed seed.
func randomAmbient(tb testing.TB, rows, cols int, rng *rand.Rand) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(rows, cols)
	require.NoError(tb, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(tb, m.Set(i, j, 2*rng.Float64()-1))
		}
	}

	return m
}

// model bundles a manifold with generators of valid points, so property
// tests run once over both models.
type model struct {
	name  string
	m     manifold.Manifold
	point func(tb testing.TB, rows int, rng *rand.Rand) *matrix.Dense
}

func models(tb testing.TB, n int, opts ...manifold.Option) []model {
	tb.Helper()
	s := mustSphere(tb, n, opts...)
	h := mustHyperboloid(tb, n, opts...)

	return []model{
		{
			name: s.String(),
			m:    s,
			point: func(tb testing.TB, rows int, rng *rand.Rand) *matrix.Dense {
				tb.Helper()
				p, err := s.Normalize(randomAmbient(tb, rows, n+1, rng))
				require.NoError(tb, err)

				return p
			},
		},
		{
			name: h.String(),
			m:    h,
			point: func(tb testing.TB, rows int, rng *rand.Rand) *matrix.Dense {
				tb.Helper()
				p, err := h.Lift(randomAmbient(tb, rows, n, rng))
				require.NoError(tb, err)

				return p
			},
		},
	}
}

// tangent returns a tangent vector at point with ambient entries scaled by
// scale before projection.
func tangent(tb testing.TB, m manifold.Manifold, point *matrix.Dense, scale float64, rng *rand.Rand) *matrix.Dense {
	tb.Helper()
	raw, err := matrix.Scale(randomAmbient(tb, point.Rows(), point.Cols(), rng), scale)
	require.NoError(tb, err)
	v, err := m.ProjectToTangentSpace(point, raw)
	require.NoError(tb, err)

	return v
}

// plain hides every method but the Manifold contract.
type plain struct{ manifold.Manifold }
