// SPDX-License-Identifier: MIT
// Package manifold - shared machinery of the embedded models.
//
// Both models are level sets {x : ⟨x,x⟩ = κ} of a flat ambient form: κ = +1
// under the Euclidean form gives the sphere, κ = −1 under the Minkowski form
// gives the hyperboloid. With that single constant the projection, the
// logarithmic map direction and the closed-form transport share one
// implementation; only the trigonometric family differs (cos/sin versus
// cosh/sinh), and each model passes its own.

package manifold

import (
	"fmt"
	"math"

	"github.com/katalvlaran/riemann/matrix"
	"github.com/katalvlaran/riemann/metric"
)

// quadric holds what every model carries: the intrinsic dimension, the
// ambient form, the curvature sign κ and the immutable defaults.
type quadric struct {
	n      int
	metric *metric.Metric
	kappa  float64
	opts   Options
}

func newQuadric(op string, nDims int, kappa float64, form func(int) (*metric.Metric, error), opts []Option) (quadric, error) {
	if nDims < 1 {
		return quadric{}, fmt.Errorf("%s(%d): %w", op, nDims, ErrBadDimension)
	}
	o, err := DefaultOptions().apply(opts...)
	if err != nil {
		return quadric{}, fmt.Errorf("%s: %w", op, err)
	}
	g, err := form(nDims + 1)
	if err != nil {
		return quadric{}, fmt.Errorf("%s: %w", op, err)
	}

	return quadric{n: nDims, metric: g, kappa: kappa, opts: o}, nil
}

// Dim returns the intrinsic dimension.
func (q *quadric) Dim() int { return q.n }

// Metric returns the ambient form. The form is immutable and may be shared.
func (q *quadric) Metric() *metric.Metric { return q.metric }

// Options returns the defaults given at construction.
func (q *quadric) Options() Options { return q.opts }

// dots returns ⟨uᵢ,vᵢ⟩ as a slice after checking shapes under op.
func (q *quadric) dots(op string, u, v matrix.Matrix) ([]float64, error) {
	if err := q.metric.CheckPair(op, u, v); err != nil {
		return nil, err
	}
	col, err := q.metric.Dot(u, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return col.Col(0)
}

// tangentNorms returns sqrt(max(⟨vᵢ,vᵢ⟩, 0)). Tangent vectors of both models
// have non-negative squared norm; roundoff below zero is clamped so that no
// NaN reaches the geodesic formulas.
func (q *quadric) tangentNorms(op string, v matrix.Matrix) ([]float64, error) {
	sq, err := q.dots(op, v, v)
	if err != nil {
		return nil, err
	}
	for i, s := range sq {
		if s > 0 {
			sq[i] = math.Sqrt(s)
		} else {
			sq[i] = 0
		}
	}

	return sq, nil
}

// column packs per-row scalars into an m×1 result.
func column(op string, vals []float64) (*matrix.Dense, error) {
	out, err := matrix.NewDense(len(vals), 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i, v := range vals {
		if err = out.Set(i, 0, v); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return out, nil
}

// distance maps the row dots through the model's closed-form geodesic
// length.
func (q *quadric) distance(op string, u, v matrix.Matrix, length func(dot float64) float64) (*matrix.Dense, error) {
	d, err := q.dots(op, u, v)
	if err != nil {
		return nil, err
	}
	for i := range d {
		d[i] = length(d[i])
	}

	return column(op, d)
}

// project computes v − (⟨p,v⟩/κ)·p.
func (q *quadric) project(op string, point, vector matrix.Matrix) (*matrix.Dense, error) {
	d, err := q.dots(op, point, vector)
	if err != nil {
		return nil, err
	}
	for i := range d {
		d[i] = -d[i] / q.kappa
	}
	out, err := matrix.AddScaledRows(vector, d, point)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// exp computes c(|v|)·p + (s(|v|)/|v|)·v, or p when |v| < eps.
func (q *quadric) exp(op string, point, tangent matrix.Matrix, c, s func(float64) float64) (*matrix.Dense, error) {
	if err := q.metric.CheckPair(op, point, tangent); err != nil {
		return nil, err
	}
	norms, err := q.tangentNorms(op, tangent)
	if err != nil {
		return nil, err
	}
	a := make([]float64, len(norms))
	b := make([]float64, len(norms))
	for i, nv := range norms {
		if nv < q.opts.eps {
			a[i], b[i] = 1, 0
			continue
		}
		a[i], b[i] = c(nv), s(nv)/nv
	}
	out, err := matrix.Combine(a, point, b, tangent)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// log computes w = p1 − (⟨p0,p1⟩/κ)·p0, the component of p1 tangent at p0,
// rescaled to the geodesic length. Rows with |w| < eps are returned as w.
func (q *quadric) log(op string, point0, point1 matrix.Matrix, length func(dot float64) float64) (*matrix.Dense, error) {
	d, err := q.dots(op, point0, point1)
	if err != nil {
		return nil, err
	}
	coef := make([]float64, len(d))
	for i := range d {
		coef[i] = -d[i] / q.kappa
	}
	w, err := matrix.AddScaledRows(point1, coef, point0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	norms, err := q.tangentNorms(op, w)
	if err != nil {
		return nil, err
	}
	for i, nw := range norms {
		if nw < q.opts.eps {
			coef[i] = 1
			continue
		}
		coef[i] = length(d[i]) / nw
	}
	out, err := matrix.ScaleRows(w, coef)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// onManifold tests ⟨p,p⟩ ≈ κ per row, plus the optional row predicate
// extra (the hyperboloid's sheet condition).
func (q *quadric) onManifold(op string, point matrix.Matrix, extra func(row []float64) bool) ([]bool, error) {
	d, err := q.dots(op, point, point)
	if err != nil {
		return nil, err
	}
	var p *matrix.Dense
	if extra != nil {
		if p, err = matrix.AsDense(point); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	out := make([]bool, len(d))
	var row []float64
	for i := range d {
		out[i] = matrix.IsClose(d[i], q.kappa, q.opts.rtol, q.opts.atol)
		if out[i] && extra != nil {
			if row, err = p.Row(i); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			out[i] = extra(row)
		}
	}

	return out, nil
}

// inTangent tests ⟨p,v⟩ ≈ 0 per row.
func (q *quadric) inTangent(op string, point, vector matrix.Matrix) ([]bool, error) {
	d, err := q.dots(op, point, vector)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(d))
	for i := range d {
		out[i] = matrix.IsClose(d[i], 0, q.opts.rtol, q.opts.atol)
	}

	return out, nil
}

// transport moves v along the geodesic p0→p1 exactly. With d = |Log(p0,p1)|
// and u = Log/d, the only component of v that changes is the one along u:
//
//	v' = v + ⟨v,u⟩·(a(d)·p0 + b(d)·u)
//
// where (a, b) = (−sin d, cos d − 1) on the sphere and (sinh d, cosh d − 1)
// on the hyperboloid. Rows with d < eps return v.
func (q *quadric) transport(op string, vector, point0, point1 matrix.Matrix, along func(d float64) (a, b float64), length func(dot float64) float64) (*matrix.Dense, error) {
	if err := q.metric.CheckPair(op, vector, point0); err != nil {
		return nil, err
	}
	dir, err := q.log(op, point0, point1, length)
	if err != nil {
		return nil, err
	}
	dist, err := q.tangentNorms(op, dir)
	if err != nil {
		return nil, err
	}
	inv := make([]float64, len(dist))
	a := make([]float64, len(dist))
	b := make([]float64, len(dist))
	for i, d := range dist {
		if d < q.opts.eps {
			continue
		}
		inv[i] = 1 / d
		a[i], b[i] = along(d)
	}
	unit, err := matrix.ScaleRows(dir, inv)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	comp, err := q.dots(op, vector, unit)
	if err != nil {
		return nil, err
	}
	rot, err := matrix.Combine(a, point0, b, unit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out, err := matrix.AddScaledRows(vector, comp, rot)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
