// SPDX-License-Identifier: MIT

package manifold_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/riemann/matrix"
)

// Properties every model must satisfy, checked on seeded random batches
// over several dimensions.
func TestGeodesicProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{1, 2, 5} {
		for _, md := range models(t, n) {
			t.Run(md.name, func(t *testing.T) {
				p := md.point(t, 12, rng)
				q := md.point(t, 12, rng)

				on, err := md.m.IsOnManifold(p)
				require.NoError(t, err)
				requireAll(t, on, "generated points")

				self, err := md.m.Distance(p, p)
				require.NoError(t, err)
				for i, d := range column(t, self) {
					require.InDeltaf(t, 0, d, decimal6, "distance(p,p) row %d", i)
				}

				pq, err := md.m.Distance(p, q)
				require.NoError(t, err)
				qp, err := md.m.Distance(q, p)
				require.NoError(t, err)
				requireAllClose(t, pq, qp, 1e-12)
				for _, d := range column(t, pq) {
					require.GreaterOrEqual(t, d, 0.0)
				}

				v, err := md.m.LogarithmicMap(p, q)
				require.NoError(t, err)
				back, err := md.m.ExponentialMap(p, v)
				require.NoError(t, err)
				requireAllClose(t, q, back, decimal6)
				on, err = md.m.IsOnManifold(back)
				require.NoError(t, err)
				requireAll(t, on, "exp(log)")

				// |Log(p,q)| equals the distance.
				lens, err := md.m.Metric().Norm(v)
				require.NoError(t, err)
				requireAllClose(t, pq, lens, decimal6)

				in, err := md.m.IsInTangentSpace(p, v)
				require.NoError(t, err)
				requireAll(t, in, "log is tangent")
			})
		}
	}
}

func TestProjectionIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for _, md := range models(t, 3) {
		t.Run(md.name, func(t *testing.T) {
			p := md.point(t, 10, rng)
			raw := randomAmbient(t, 10, 4, rng)

			once, err := md.m.ProjectToTangentSpace(p, raw)
			require.NoError(t, err)
			twice, err := md.m.ProjectToTangentSpace(p, once)
			require.NoError(t, err)
			requireAllClose(t, once, twice, decimal6)

			in, err := md.m.IsInTangentSpace(p, once)
			require.NoError(t, err)
			requireAll(t, in, "projected")

			// Inputs untouched.
			cp := raw.Clone()
			_, err = md.m.ProjectToTangentSpace(p, raw)
			require.NoError(t, err)
			requireAllClose(t, cp, raw, 0)
		})
	}
}

func TestAcceptsAnyMatrix(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, md := range models(t, 2) {
		p := md.point(t, 4, rng)
		q := md.point(t, 4, rng)

		fast, err := md.m.LogarithmicMap(p, q)
		require.NoError(t, err)
		slow, err := md.m.LogarithmicMap(wrapped{p}, wrapped{q})
		require.NoError(t, err)
		requireAllClose(t, fast, slow, 0)
	}
}

// wrapped hides *matrix.Dense behind the bare interface.
type wrapped struct{ matrix.Matrix }
