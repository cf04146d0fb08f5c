// SPDX-License-Identifier: MIT

package manifold

import (
	"fmt"
	"math"

	"github.com/katalvlaran/riemann/matrix"
	"github.com/katalvlaran/riemann/metric"
)

const (
	opNewHyperboloid        = "NewHyperboloid"
	opHyperboloidDistance   = "Hyperboloid.Distance"
	opHyperboloidExp        = "Hyperboloid.ExponentialMap"
	opHyperboloidLog        = "Hyperboloid.LogarithmicMap"
	opHyperboloidProject    = "Hyperboloid.ProjectToTangentSpace"
	opHyperboloidOn         = "Hyperboloid.IsOnManifold"
	opHyperboloidTangent    = "Hyperboloid.IsInTangentSpace"
	opHyperboloidClosedForm = "Hyperboloid.ClosedFormTransport"
	opHyperboloidLift       = "Hyperboloid.Lift"
)

// Hyperboloid is the forward sheet {x : ⟨x,x⟩ = −1, x⁰ > 0} of the
// two-sheeted hyperboloid under the Minkowski form, a model of hyperbolic
// n-space. It is immutable and safe for concurrent use.
type Hyperboloid struct {
	quadric
}

// NewHyperboloid returns hyperbolic space of intrinsic dimension nDims,
// embedded in nDims+1 ambient coordinates with the timelike one first.
// Errors: ErrBadDimension (nDims < 1), ErrBadOption.
func NewHyperboloid(nDims int, opts ...Option) (*Hyperboloid, error) {
	q, err := newQuadric(opNewHyperboloid, nDims, -1, metric.NewMinkowski, opts)
	if err != nil {
		return nil, err
	}

	return &Hyperboloid{quadric: q}, nil
}

// String implements fmt.Stringer.
func (h *Hyperboloid) String() string { return fmt.Sprintf("Hyperboloid(%d)", h.n) }

// rapidity is the hyperbolic length for a Minkowski dot product of two
// forward-sheet points: arccosh(−dot). Arguments at or below one (coincident
// points up to roundoff) give zero.
func rapidity(dot float64) float64 {
	s := -dot
	if s > 1 {
		return math.Acosh(s)
	}

	return 0
}

// Distance returns arccosh(−⟨u,v⟩) per row, or 0 where −⟨u,v⟩ ≤ 1.
func (h *Hyperboloid) Distance(u, v matrix.Matrix) (*matrix.Dense, error) {
	return h.distance(opHyperboloidDistance, u, v, rapidity)
}

// ExponentialMap returns cosh|v|·p + sinh|v|·v/|v| per row.
func (h *Hyperboloid) ExponentialMap(point, tangent matrix.Matrix) (*matrix.Dense, error) {
	return h.exp(opHyperboloidExp, point, tangent, math.Cosh, math.Sinh)
}

// LogarithmicMap returns the tangent at point0 whose exponential is point1.
// Coincident rows give p1 + ⟨p0,p1⟩p0 unscaled, which is (near) zero.
func (h *Hyperboloid) LogarithmicMap(point0, point1 matrix.Matrix) (*matrix.Dense, error) {
	return h.log(opHyperboloidLog, point0, point1, rapidity)
}

// ProjectToTangentSpace returns v + ⟨p,v⟩·p per row.
func (h *Hyperboloid) ProjectToTangentSpace(point, vector matrix.Matrix) (*matrix.Dense, error) {
	return h.project(opHyperboloidProject, point, vector)
}

// IsOnManifold reports p⁰ > 0 and ⟨p,p⟩ ≈ −1 per row. Points of the
// backward sheet are rejected.
func (h *Hyperboloid) IsOnManifold(point matrix.Matrix) ([]bool, error) {
	return h.onManifold(opHyperboloidOn, point, func(row []float64) bool { return row[0] > 0 })
}

// IsInTangentSpace reports ⟨p,v⟩ ≈ 0 per row.
func (h *Hyperboloid) IsInTangentSpace(point, vector matrix.Matrix) ([]bool, error) {
	return h.inTangent(opHyperboloidTangent, point, vector)
}

// ClosedFormTransport applies the hyperbolic rotation (boost) of the plane
// spanned by point0 and the geodesic direction; orthogonal components are
// unchanged.
func (h *Hyperboloid) ClosedFormTransport(vector, point0, point1 matrix.Matrix) (*matrix.Dense, error) {
	return h.transport(opHyperboloidClosedForm, vector, point0, point1, func(d float64) (float64, float64) {
		return math.Sinh(d), math.Cosh(d) - 1
	}, rapidity)
}

// PoleLadderTransport performs one pole ladder step on h.
func (h *Hyperboloid) PoleLadderTransport(vector, point0, point1 matrix.Matrix) (*matrix.Dense, error) {
	return PoleLadderTransport(h, vector, point0, point1)
}

// ParallelTransport runs nSteps pole ladder steps on h.
// Errors: ErrBadSteps (nSteps < 1) and the errors of ParallelTransport.
func (h *Hyperboloid) ParallelTransport(vector, point0, point1 matrix.Matrix, nSteps int) (*matrix.Dense, error) {
	if nSteps < 1 {
		return nil, fmt.Errorf("Hyperboloid.ParallelTransport(%d): %w", nSteps, ErrBadSteps)
	}

	return ParallelTransport(h, vector, point0, point1, WithSteps(nSteps))
}

// Lift returns the forward-sheet points whose spatial coordinates are the
// rows of spatial (m×n): x⁰ = sqrt(1 + Σᵢ(xⁱ)²).
// Errors: matrix.ErrNilMatrix, *metric.DimensionError (Cols != Dim()).
func (h *Hyperboloid) Lift(spatial matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(spatial); err != nil {
		return nil, fmt.Errorf("%s: %w", opHyperboloidLift, err)
	}
	rows, cols := spatial.Rows(), spatial.Cols()
	if cols != h.n {
		return nil, &metric.DimensionError{
			Op: opHyperboloidLift, Want: h.n,
			URows: rows, UCols: cols, VRows: rows, VCols: cols,
		}
	}
	x, err := matrix.AsDense(spatial)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opHyperboloidLift, err)
	}
	out, err := matrix.NewDense(rows, cols+1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opHyperboloidLift, err)
	}
	var row []float64
	var sq float64
	for i := 0; i < rows; i++ {
		if row, err = x.Row(i); err != nil {
			return nil, fmt.Errorf("%s: %w", opHyperboloidLift, err)
		}
		sq = 1
		for j, v := range row {
			sq += v * v
			if err = out.Set(i, j+1, v); err != nil {
				return nil, fmt.Errorf("%s: %w", opHyperboloidLift, err)
			}
		}
		if err = out.Set(i, 0, math.Sqrt(sq)); err != nil {
			return nil, fmt.Errorf("%s: %w", opHyperboloidLift, err)
		}
	}

	return out, nil
}
