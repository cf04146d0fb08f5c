// SPDX-License-Identifier: MIT

package manifold_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/riemann/manifold"
	"github.com/katalvlaran/riemann/matrix"
)

// transportCase is a batch of geodesics p0→p1 and tangent vectors at p0.
type transportCase struct {
	model
	p0, p1, v *matrix.Dense
}

func transportCases(t *testing.T, n, rows int, opts ...manifold.Option) []transportCase {
	t.Helper()
	rng := rand.New(rand.NewSource(20240611))
	var out []transportCase
	for _, md := range models(t, n, opts...) {
		p0 := md.point(t, rows, rng)
		p1 := md.point(t, rows, rng)
		out = append(out, transportCase{model: md, p0: p0, p1: p1, v: tangent(t, md.m, p0, 0.7, rng)})
	}

	return out
}

func TestPoleLadderRoundTrip(t *testing.T) {
	for _, tc := range transportCases(t, 3, 6) {
		t.Run(tc.name, func(t *testing.T) {
			there, err := manifold.PoleLadderTransport(tc.m, tc.v, tc.p0, tc.p1)
			require.NoError(t, err)
			back, err := manifold.PoleLadderTransport(tc.m, there, tc.p1, tc.p0)
			require.NoError(t, err)
			requireAllClose(t, tc.v, back, decimal6)
		})
	}
}

func TestParallelTransportRoundTrip(t *testing.T) {
	for _, tc := range transportCases(t, 2, 5) {
		t.Run(tc.name, func(t *testing.T) {
			there, err := manifold.ParallelTransport(tc.m, tc.v, tc.p0, tc.p1)
			require.NoError(t, err)
			back, err := manifold.ParallelTransport(tc.m, there, tc.p1, tc.p0)
			require.NoError(t, err)
			requireAllClose(t, tc.v, back, decimal6)
		})
	}
}

// TestTransportedVectorIsTangentIsometric: the result lives at p1 and keeps
// its metric length.
func TestTransportedVectorIsTangentIsometric(t *testing.T) {
	for _, tc := range transportCases(t, 3, 8) {
		t.Run(tc.name, func(t *testing.T) {
			got, err := manifold.ParallelTransport(tc.m, tc.v, tc.p0, tc.p1, manifold.WithSteps(4))
			require.NoError(t, err)

			in, err := tc.m.IsInTangentSpace(tc.p1, got)
			require.NoError(t, err)
			requireAll(t, in, "tangent at p1")

			before, err := tc.m.Metric().Dot(tc.v, tc.v)
			require.NoError(t, err)
			after, err := tc.m.Metric().Dot(got, got)
			require.NoError(t, err)
			requireAllClose(t, before, after, decimal6)
		})
	}
}

func TestClosedFormMatchesPoleLadder(t *testing.T) {
	for _, tc := range transportCases(t, 3, 7) {
		t.Run(tc.name, func(t *testing.T) {
			ladder, err := manifold.Transport(tc.m, tc.v, tc.p0, tc.p1)
			require.NoError(t, err)
			exact, err := manifold.Transport(tc.m, tc.v, tc.p0, tc.p1, manifold.WithStrategy(manifold.StrategyClosedForm))
			require.NoError(t, err)
			requireAllClose(t, exact, ladder, 1e-6)

			single, err := manifold.PoleLadderTransport(tc.m, tc.v, tc.p0, tc.p1)
			require.NoError(t, err)
			requireAllClose(t, exact, single, 1e-6)
		})
	}
}

// TestClosedFormCarriesGeodesicDirection: the initial velocity of the
// geodesic p0→p1 arrives as minus the velocity of p1→p0.
func TestClosedFormCarriesGeodesicDirection(t *testing.T) {
	for _, tc := range transportCases(t, 2, 4) {
		t.Run(tc.name, func(t *testing.T) {
			cf := tc.m.(manifold.ClosedFormTransporter)
			dir, err := tc.m.LogarithmicMap(tc.p0, tc.p1)
			require.NoError(t, err)
			got, err := cf.ClosedFormTransport(dir, tc.p0, tc.p1)
			require.NoError(t, err)
			rev, err := tc.m.LogarithmicMap(tc.p1, tc.p0)
			require.NoError(t, err)
			want, err := matrix.Negate(rev)
			require.NoError(t, err)
			requireAllClose(t, want, got, 1e-9)
		})
	}
}

func TestWorkersMatchSequential(t *testing.T) {
	for _, workers := range []int{2, 3, 4, 16} {
		for _, tc := range transportCases(t, 2, 9) {
			seq, err := manifold.ParallelTransport(tc.m, tc.v, tc.p0, tc.p1)
			require.NoError(t, err)
			par, err := manifold.ParallelTransport(tc.m, tc.v, tc.p0, tc.p1, manifold.WithWorkers(workers))
			require.NoError(t, err)
			requireAllClose(t, seq, par, 0)

			exactSeq, err := manifold.Transport(tc.m, tc.v, tc.p0, tc.p1, manifold.WithStrategy(manifold.StrategyClosedForm))
			require.NoError(t, err)
			exactPar, err := manifold.Transport(tc.m, tc.v, tc.p0, tc.p1,
				manifold.WithStrategy(manifold.StrategyClosedForm), manifold.WithWorkers(workers))
			require.NoError(t, err)
			requireAllClose(t, exactSeq, exactPar, 0)
		}
	}
}

func TestConstructorWorkersAreDefault(t *testing.T) {
	for _, tc := range transportCases(t, 2, 5, manifold.WithWorkers(3)) {
		assert.Equal(t, 3, tc.m.(manifold.Configured).Options().Workers())
		got, err := manifold.ParallelTransport(tc.m, tc.v, tc.p0, tc.p1)
		require.NoError(t, err)
		seq, err := manifold.ParallelTransport(tc.m, tc.v, tc.p0, tc.p1, manifold.WithWorkers(1))
		require.NoError(t, err)
		requireAllClose(t, seq, got, 0)
	}
}

func TestMethodWrappers(t *testing.T) {
	s := mustSphere(t, 2)
	h := mustHyperboloid(t, 2)
	for _, tc := range transportCases(t, 2, 3) {
		generic, err := manifold.ParallelTransport(tc.m, tc.v, tc.p0, tc.p1, manifold.WithSteps(3))
		require.NoError(t, err)
		single, err := manifold.PoleLadderTransport(tc.m, tc.v, tc.p0, tc.p1)
		require.NoError(t, err)

		var method, methodSingle *matrix.Dense
		switch tc.m.(type) {
		case *manifold.Sphere:
			method, err = s.ParallelTransport(tc.v, tc.p0, tc.p1, 3)
			require.NoError(t, err)
			methodSingle, err = s.PoleLadderTransport(tc.v, tc.p0, tc.p1)
		case *manifold.Hyperboloid:
			method, err = h.ParallelTransport(tc.v, tc.p0, tc.p1, 3)
			require.NoError(t, err)
			methodSingle, err = h.PoleLadderTransport(tc.v, tc.p0, tc.p1)
		}
		require.NoError(t, err)
		requireAllClose(t, generic, method, 0)
		requireAllClose(t, single, methodSingle, 0)
	}

	_, err := s.ParallelTransport(nil, nil, nil, 0)
	require.ErrorIs(t, err, manifold.ErrBadSteps)
	_, err = h.ParallelTransport(nil, nil, nil, -1)
	require.ErrorIs(t, err, manifold.ErrBadSteps)
}

func TestTransportWithoutClosedForm(t *testing.T) {
	for _, tc := range transportCases(t, 2, 2) {
		m := plain{tc.m}

		_, err := manifold.Transport(m, tc.v, tc.p0, tc.p1, manifold.WithStrategy(manifold.StrategyClosedForm))
		require.ErrorIs(t, err, manifold.ErrStrategyUnsupported)

		// The generic path still works through the bare contract.
		got, err := manifold.Transport(m, tc.v, tc.p0, tc.p1)
		require.NoError(t, err)
		want, err := manifold.ParallelTransport(tc.m, tc.v, tc.p0, tc.p1)
		require.NoError(t, err)
		requireAllClose(t, want, got, 0)
	}
}

func TestTransportErrors(t *testing.T) {
	s := mustSphere(t, 2)
	p := mustFrom(t, [][]float64{{1, 0, 0}})
	q := mustFrom(t, [][]float64{{0, 1, 0}})
	two := mustFrom(t, [][]float64{{1, 0, 0}, {0, 1, 0}})

	_, err := manifold.PoleLadderTransport(nil, p, p, q)
	require.ErrorIs(t, err, manifold.ErrNilManifold)
	_, err = manifold.ParallelTransport(nil, p, p, q)
	require.ErrorIs(t, err, manifold.ErrNilManifold)
	_, err = manifold.Transport(nil, p, p, q)
	require.ErrorIs(t, err, manifold.ErrNilManifold)

	_, err = manifold.PoleLadderTransport(s, two, p, q)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = manifold.ParallelTransport(s, p, p, two)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = manifold.Transport(s, p, p, two, manifold.WithWorkers(2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = manifold.ParallelTransport(s, p, p, q, manifold.WithSteps(0))
	require.ErrorIs(t, err, manifold.ErrBadSteps)
	require.ErrorIs(t, err, manifold.ErrBadOption)
	_, err = manifold.Transport(s, p, p, q, manifold.WithWorkers(0))
	require.ErrorIs(t, err, manifold.ErrBadOption)
}

// TestLogCoincidentPoints: Log(p, p) is (near) zero on both models, so one
// ladder rung between coincident points leaves the vector unchanged.
func TestLogCoincidentPoints(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, md := range models(t, 3) {
		t.Run(md.name, func(t *testing.T) {
			p := md.point(t, 10, rng)
			zero, err := md.m.LogarithmicMap(p, p)
			require.NoError(t, err)
			for i := 0; i < zero.Rows(); i++ {
				row, err := zero.Row(i)
				require.NoError(t, err)
				for _, x := range row {
					require.False(t, math.IsNaN(x))
					require.InDelta(t, 0, x, 1e-6)
				}
			}

			v := tangent(t, md.m, p, 0.5, rng)
			got, err := manifold.PoleLadderTransport(md.m, v, p, p)
			require.NoError(t, err)
			requireAllClose(t, v, got, decimal6)
		})
	}
}

func TestTransportLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tc := transportCases(t, 2, 2)[0]
	_, err := manifold.ParallelTransport(tc.m, tc.v, tc.p0, tc.p1, manifold.WithSteps(3), manifold.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=transport")
	assert.Contains(t, out, "strategy=pole_ladder")
	assert.Contains(t, out, "steps=3")
	assert.Contains(t, out, "rows=2")
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("pole ladder step")))

	// Nothing is written at Info.
	buf.Reset()
	quiet := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	_, err = manifold.Transport(tc.m, tc.v, tc.p0, tc.p1, manifold.WithLogger(quiet))
	require.NoError(t, err)
	assert.Zero(t, buf.Len())
}
