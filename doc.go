// Package riemann is a small toolkit of Riemannian geometry primitives for
// points embedded in a flat ambient space: geodesic distance, exponential and
// logarithmic maps, tangent projection and parallel transport.
//
// What is inside?
//
//	matrix/    — row-major Dense batches and the row-wise kernels behind them
//	metric/    — Euclidean and Minkowski bilinear forms, batched Dot and Norm
//	manifold/  — the Manifold contract, Sphere, Hyperboloid, pole ladder and
//	             iterative parallel transport
//	examples/  — runnable walkthroughs
//
// Every operation is batched: an m×(n+1) matrix holds m points (or tangent
// vectors) of an n-dimensional manifold, one per row, and rows never
// interact. Results are fresh matrices; inputs are never mutated.
//
// Quick example:
//
//	s, _ := manifold.NewSphere(2)
//	p0, _ := matrix.NewDenseFrom([][]float64{{1, 0, 0}})
//	p1, _ := matrix.NewDenseFrom([][]float64{{0, 1, 0}})
//	v, _ := matrix.NewDenseFrom([][]float64{{0, 0, 1}})
//	w, _ := manifold.ParallelTransport(s, v, p0, p1) // ≈ [[0 0 1]]
//
//	go get github.com/katalvlaran/riemann
package riemann
