// SPDX-License-Identifier: MIT
// Package manifold - parallel transport written once against Manifold.
//
// Pole ladder (one rung, from point0 to point1, carrying vector):
//
//	mid    = Exp(p0, ½·Log(p0, p1))
//	prime0 = Exp(p0, vector)
//	prime1 = Exp(mid, −Log(mid, prime0))   // reflect prime0 through mid
//	result = −Log(p1, prime1)
//
// ParallelTransport walks the geodesic p0→p1 in n equal rungs, the step at
// iteration k covering 1/(n−k) of what is left. In symmetric spaces (both
// provided models) every rung is exact up to roundoff.
//
// Rows are independent, so a batch may be split into contiguous chunks that
// are transported concurrently (WithWorkers) and stitched back in order; the
// result is identical to the sequential run.

package manifold

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/riemann/matrix"
)

const (
	opPoleLadder = "PoleLadderTransport"
	opParallel   = "ParallelTransport"
	opTransport  = "Transport"
)

// PoleLadderTransport carries vector (tangent at point0) to the tangent space
// at point1 with a single pole ladder rung. It uses only the Manifold
// contract.
// Errors: ErrNilManifold, *metric.DimensionError and errors of m.
func PoleLadderTransport(m Manifold, vector, point0, point1 matrix.Matrix) (*matrix.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opPoleLadder, ErrNilManifold)
	}
	if err := checkTriple(m, opPoleLadder, vector, point0, point1); err != nil {
		return nil, err
	}

	return poleLadder(m, vector, point0, point1)
}

func poleLadder(m Manifold, vector, point0, point1 matrix.Matrix) (*matrix.Dense, error) {
	half, err := m.LogarithmicMap(point0, point1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPoleLadder, err)
	}
	if half, err = matrix.Scale(half, 0.5); err != nil {
		return nil, fmt.Errorf("%s: %w", opPoleLadder, err)
	}
	mid, err := m.ExponentialMap(point0, half)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPoleLadder, err)
	}
	prime0, err := m.ExponentialMap(point0, vector)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPoleLadder, err)
	}
	toPrime0, err := m.LogarithmicMap(mid, prime0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPoleLadder, err)
	}
	if toPrime0, err = matrix.Negate(toPrime0); err != nil {
		return nil, fmt.Errorf("%s: %w", opPoleLadder, err)
	}
	prime1, err := m.ExponentialMap(mid, toPrime0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPoleLadder, err)
	}
	back, err := m.LogarithmicMap(point1, prime1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPoleLadder, err)
	}
	out, err := matrix.Negate(back)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPoleLadder, err)
	}

	return out, nil
}

// ParallelTransport carries vector from point0 to point1 with the iterative
// pole ladder, WithSteps rungs (default 10). The manifold's own Options are
// the starting point; opts override them for this call. The strategy option
// is ignored here; see Transport.
// Errors: ErrNilManifold, ErrBadOption (which also matches ErrBadSteps for a
// step count below one), *metric.DimensionError and errors of m.
func ParallelTransport(m Manifold, vector, point0, point1 matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opParallel, ErrNilManifold)
	}
	o, err := optionsOf(m).apply(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opParallel, err)
	}

	return run(m, opParallel, StrategyPoleLadder, o, vector, point0, point1)
}

// Transport carries vector from point0 to point1 with the strategy in effect
// (WithStrategy; default StrategyPoleLadder, i.e. ParallelTransport).
// StrategyClosedForm requires m to implement ClosedFormTransporter.
// Errors: those of ParallelTransport, plus ErrStrategyUnsupported.
func Transport(m Manifold, vector, point0, point1 matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opTransport, ErrNilManifold)
	}
	o, err := optionsOf(m).apply(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTransport, err)
	}
	if o.strategy == StrategyClosedForm {
		if _, ok := m.(ClosedFormTransporter); !ok {
			return nil, fmt.Errorf("%s: %T: %w", opTransport, m, ErrStrategyUnsupported)
		}
	}

	return run(m, opTransport, o.strategy, o, vector, point0, point1)
}

// checkTriple verifies vector/point0 and point0/point1 share one shape.
func checkTriple(m Manifold, op string, vector, point0, point1 matrix.Matrix) error {
	g := m.Metric()
	if err := g.CheckPair(op, vector, point0); err != nil {
		return err
	}

	return g.CheckPair(op, point0, point1)
}

// run validates shapes, logs the plan and dispatches either the whole batch
// or its row chunks to transportChunk.
func run(m Manifold, op string, s Strategy, o Options, vector, point0, point1 matrix.Matrix) (*matrix.Dense, error) {
	if err := checkTriple(m, op, vector, point0, point1); err != nil {
		return nil, err
	}
	rows := vector.Rows()
	workers := o.workers
	if workers > rows {
		workers = rows
	}
	o.logger.Debug("transport",
		slog.String("op", op),
		slog.String("strategy", s.String()),
		slog.Int("steps", o.steps),
		slog.Int("rows", rows),
		slog.Int("workers", workers),
	)
	if workers <= 1 {
		out, err := transportChunk(m, s, o, vector, point0, point1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return out, nil
	}

	out, err := runChunked(m, s, o, workers, vector, point0, point1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// runChunked splits the batch into workers contiguous row ranges, transports
// them concurrently and stitches the results in row order.
func runChunked(m Manifold, s Strategy, o Options, workers int, vector, point0, point1 matrix.Matrix) (*matrix.Dense, error) {
	v, err := matrix.AsDense(vector)
	if err != nil {
		return nil, err
	}
	p0, err := matrix.AsDense(point0)
	if err != nil {
		return nil, err
	}
	p1, err := matrix.AsDense(point1)
	if err != nil {
		return nil, err
	}

	rows := v.Rows()
	size := (rows + workers - 1) / workers
	parts := make([]*matrix.Dense, (rows+size-1)/size)

	var g errgroup.Group
	g.SetLimit(workers)
	for k := range parts {
		k := k // per-iteration copy (go directive < 1.22)
		from, to := k*size, min((k+1)*size, rows)
		g.Go(func() error {
			cv, err := v.SliceRows(from, to)
			if err != nil {
				return err
			}
			c0, err := p0.SliceRows(from, to)
			if err != nil {
				return err
			}
			c1, err := p1.SliceRows(from, to)
			if err != nil {
				return err
			}
			o.logger.Debug("transport chunk", slog.Int("from", from), slog.Int("to", to))
			parts[k], err = transportChunk(m, s, o, cv, c0, c1)

			return err
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	out, err := matrix.NewDense(rows, v.Cols())
	if err != nil {
		return nil, err
	}
	for k, part := range parts {
		if err = out.SetRows(k*size, part); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// transportChunk runs one strategy on already validated operands.
func transportChunk(m Manifold, s Strategy, o Options, vector, point0, point1 matrix.Matrix) (*matrix.Dense, error) {
	if s == StrategyClosedForm {
		// run only reaches here for implementers.
		return m.(ClosedFormTransporter).ClosedFormTransport(vector, point0, point1)
	}

	return iterate(m, o, vector, point0, point1)
}

// iterate is the n-rung pole ladder along the geodesic point0→point1.
func iterate(m Manifold, o Options, vector, point0, point1 matrix.Matrix) (*matrix.Dense, error) {
	var (
		pointA matrix.Matrix = point0
		vecA   matrix.Matrix = vector
		out    *matrix.Dense
	)
	for step := 0; step < o.steps; step++ {
		remaining := o.steps - step
		dir, err := m.LogarithmicMap(pointA, point1)
		if err != nil {
			return nil, err
		}
		if dir, err = matrix.Scale(dir, 1/float64(remaining)); err != nil {
			return nil, err
		}
		pointB, err := m.ExponentialMap(pointA, dir)
		if err != nil {
			return nil, err
		}
		if out, err = poleLadder(m, vecA, pointA, pointB); err != nil {
			return nil, err
		}
		o.logger.Debug("pole ladder step", slog.Int("step", step+1), slog.Int("remaining", remaining-1))
		pointA, vecA = pointB, out
	}

	return out, nil
}
