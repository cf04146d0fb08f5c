// Package manifold implements two constant-curvature Riemannian manifolds
// embedded in a flat ambient space, and parallel transport written once
// against their common contract.
//
// Models:
//
//	NewSphere(n)       {x ∈ ℝⁿ⁺¹ : ⟨x,x⟩ = 1}          Euclidean form
//	NewHyperboloid(n)  {x ∈ ℝⁿ⁺¹ : ⟨x,x⟩ = −1, x⁰ > 0}  Minkowski form
//
// Both satisfy Manifold: Distance, ExponentialMap, LogarithmicMap,
// ProjectToTangentSpace, IsOnManifold and IsInTangentSpace. Inputs are
// batches (*matrix.Dense or any matrix.Matrix), one point or tangent vector
// per row with Dim()+1 columns; rows never interact.
//
// Transport:
//
//   - PoleLadderTransport: one pole ladder rung, geodesic primitives only.
//   - ParallelTransport: n rungs along the geodesic (WithSteps, default 10).
//   - Transport: strategy switch; StrategyClosedForm uses the exact formula
//     of manifolds implementing ClosedFormTransporter (both models do).
//
// Configuration is by functional options (WithEpsilon, WithTolerance,
// WithSteps, WithStrategy, WithWorkers, WithLogger). Options passed to a
// constructor are that manifold's defaults; options passed to a transport
// call override them for the call.
//
// Geometric validity of the inputs is a documented precondition and is not
// checked; shapes always are. Errors are sentinels matched with errors.Is.
//
// Example:
//
//	s, _ := manifold.NewSphere(2)
//	p0, _ := matrix.NewDenseFrom([][]float64{{1, 0, 0}})
//	p1, _ := matrix.NewDenseFrom([][]float64{{0, 1, 0}})
//	d, _ := s.Distance(p0, p1) // [[π/2]]
package manifold
