// SPDX-License-Identifier: MIT

package manifold

import (
	"github.com/katalvlaran/riemann/matrix"
	"github.com/katalvlaran/riemann/metric"
)

// Manifold is the contract every model implements. Points and tangent
// vectors are batches: one per row, Dim()+1 ambient columns. Column results
// are Rows×1; predicate results have one entry per row.
//
// Geometric validity of the inputs (points on the manifold, vectors in the
// tangent space) is a precondition that is not checked; IsOnManifold and
// IsInTangentSpace test it explicitly. Shape disagreements are always
// checked and reported as *metric.DimensionError.
type Manifold interface {
	// Dim returns the intrinsic dimension n; the ambient dimension is n+1.
	Dim() int

	// Metric returns the ambient bilinear form.
	Metric() *metric.Metric

	// Distance returns the geodesic distance between paired rows. It is
	// non-negative and symmetric.
	Distance(u, v matrix.Matrix) (*matrix.Dense, error)

	// ExponentialMap follows the geodesic from point with initial velocity
	// tangent for unit time. A row whose tangent norm is below epsilon yields
	// its point unchanged.
	ExponentialMap(point, tangent matrix.Matrix) (*matrix.Dense, error)

	// LogarithmicMap returns the tangent vector at point0 whose exponential
	// is point1.
	LogarithmicMap(point0, point1 matrix.Matrix) (*matrix.Dense, error)

	// ProjectToTangentSpace removes the component of vector normal to the
	// tangent space at point.
	ProjectToTangentSpace(point, vector matrix.Matrix) (*matrix.Dense, error)

	// IsOnManifold reports, per row, whether point satisfies the model's
	// defining equation within tolerance.
	IsOnManifold(point matrix.Matrix) ([]bool, error)

	// IsInTangentSpace reports, per row, whether ⟨point, vector⟩ ≈ 0.
	IsInTangentSpace(point, vector matrix.Matrix) ([]bool, error)
}

// ClosedFormTransporter is implemented by manifolds with an exact parallel
// transport along the geodesic joining point0 and point1.
type ClosedFormTransporter interface {
	ClosedFormTransport(vector, point0, point1 matrix.Matrix) (*matrix.Dense, error)
}

// Configured is implemented by manifolds that carry default Options. The
// generic algorithms start from them instead of DefaultOptions.
type Configured interface {
	Options() Options
}

// Compile-time checks.
var (
	_ Manifold              = (*Sphere)(nil)
	_ Manifold              = (*Hyperboloid)(nil)
	_ ClosedFormTransporter = (*Sphere)(nil)
	_ ClosedFormTransporter = (*Hyperboloid)(nil)
	_ Configured            = (*Sphere)(nil)
	_ Configured            = (*Hyperboloid)(nil)
)

// optionsOf returns the defaults m carries, or DefaultOptions.
func optionsOf(m Manifold) Options {
	if c, ok := m.(Configured); ok {
		return c.Options()
	}

	return DefaultOptions()
}
