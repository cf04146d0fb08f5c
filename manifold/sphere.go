// SPDX-License-Identifier: MIT

package manifold

import (
	"fmt"
	"math"

	"github.com/katalvlaran/riemann/matrix"
	"github.com/katalvlaran/riemann/metric"
)

const (
	opNewSphere        = "NewSphere"
	opSphereDistance   = "Sphere.Distance"
	opSphereExp        = "Sphere.ExponentialMap"
	opSphereLog        = "Sphere.LogarithmicMap"
	opSphereProject    = "Sphere.ProjectToTangentSpace"
	opSphereOn         = "Sphere.IsOnManifold"
	opSphereTangent    = "Sphere.IsInTangentSpace"
	opSphereClosedForm = "Sphere.ClosedFormTransport"
	opSphereNormalize  = "Sphere.Normalize"
)

// Sphere is the unit n-sphere {x ∈ ℝⁿ⁺¹ : ⟨x,x⟩ = 1} under the Euclidean
// form. It is immutable and safe for concurrent use.
type Sphere struct {
	quadric
}

// NewSphere returns the unit sphere of intrinsic dimension nDims, embedded in
// nDims+1 ambient coordinates. opts become the defaults of every method.
// Errors: ErrBadDimension (nDims < 1), ErrBadOption.
func NewSphere(nDims int, opts ...Option) (*Sphere, error) {
	q, err := newQuadric(opNewSphere, nDims, 1, metric.NewEuclidean, opts)
	if err != nil {
		return nil, err
	}

	return &Sphere{quadric: q}, nil
}

// String implements fmt.Stringer.
func (s *Sphere) String() string { return fmt.Sprintf("Sphere(%d)", s.n) }

// arc is the great-circle length for a Euclidean dot product of unit
// vectors. The clamp absorbs roundoff just outside [−1, 1].
func arc(dot float64) float64 {
	return math.Acos(math.Max(-1, math.Min(1, dot)))
}

// Distance returns arccos(⟨u,v⟩) per row.
func (s *Sphere) Distance(u, v matrix.Matrix) (*matrix.Dense, error) {
	return s.distance(opSphereDistance, u, v, arc)
}

// ExponentialMap returns cos|v|·p + sin|v|·v/|v| per row.
func (s *Sphere) ExponentialMap(point, tangent matrix.Matrix) (*matrix.Dense, error) {
	return s.exp(opSphereExp, point, tangent, math.Cos, math.Sin)
}

// LogarithmicMap returns the tangent at point0 pointing along the great
// circle to point1 with length equal to their distance. Coincident rows give
// the (near) zero vector p1 − ⟨p0,p1⟩p0 unscaled. Antipodal rows have no
// unique answer; the result is then numerically meaningless.
func (s *Sphere) LogarithmicMap(point0, point1 matrix.Matrix) (*matrix.Dense, error) {
	return s.log(opSphereLog, point0, point1, arc)
}

// ProjectToTangentSpace returns v − ⟨p,v⟩·p per row.
func (s *Sphere) ProjectToTangentSpace(point, vector matrix.Matrix) (*matrix.Dense, error) {
	return s.project(opSphereProject, point, vector)
}

// IsOnManifold reports ⟨p,p⟩ ≈ 1 per row.
func (s *Sphere) IsOnManifold(point matrix.Matrix) ([]bool, error) {
	return s.onManifold(opSphereOn, point, nil)
}

// IsInTangentSpace reports ⟨p,v⟩ ≈ 0 per row.
func (s *Sphere) IsInTangentSpace(point, vector matrix.Matrix) ([]bool, error) {
	return s.inTangent(opSphereTangent, point, vector)
}

// ClosedFormTransport rotates vector in the plane of the great circle from
// point0 to point1; components orthogonal to that plane are unchanged.
func (s *Sphere) ClosedFormTransport(vector, point0, point1 matrix.Matrix) (*matrix.Dense, error) {
	return s.transport(opSphereClosedForm, vector, point0, point1, func(d float64) (float64, float64) {
		return -math.Sin(d), math.Cos(d) - 1
	}, arc)
}

// PoleLadderTransport performs one pole ladder step on s.
func (s *Sphere) PoleLadderTransport(vector, point0, point1 matrix.Matrix) (*matrix.Dense, error) {
	return PoleLadderTransport(s, vector, point0, point1)
}

// ParallelTransport runs nSteps pole ladder steps on s.
// Errors: ErrBadSteps (nSteps < 1) and the errors of ParallelTransport.
func (s *Sphere) ParallelTransport(vector, point0, point1 matrix.Matrix, nSteps int) (*matrix.Dense, error) {
	if nSteps < 1 {
		return nil, fmt.Errorf("Sphere.ParallelTransport(%d): %w", nSteps, ErrBadSteps)
	}

	return ParallelTransport(s, vector, point0, point1, WithSteps(nSteps))
}

// Normalize scales every row of vectors onto the sphere. Rows with
// Euclidean norm below epsilon have no direction and yield ErrZeroVector.
func (s *Sphere) Normalize(vectors matrix.Matrix) (*matrix.Dense, error) {
	norms, err := s.tangentNorms(opSphereNormalize, vectors)
	if err != nil {
		return nil, err
	}
	for i, nv := range norms {
		if nv < s.opts.eps {
			return nil, fmt.Errorf("%s: row %d: %w", opSphereNormalize, i, ErrZeroVector)
		}
		norms[i] = 1 / nv
	}
	out, err := matrix.ScaleRows(vectors, norms)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSphereNormalize, err)
	}

	return out, nil
}
