// Package metric defines immutable bilinear forms over a flat ambient space
// and their batched contractions.
//
// Two forms are provided:
//
//	NewEuclidean(n)  G = I_n
//	NewMinkowski(n)  G = diag(−1, 1, …, 1)   ⟨x,x⟩ = −(x⁰)² + Σᵢ(xⁱ)²
//
// New accepts any symmetric matrix. Batches are m×n matrices (one vector per
// row) and every contraction returns an m×1 column:
//
//	g, _ := metric.NewMinkowski(2)
//	u, _ := matrix.NewDenseFrom([][]float64{{1, 1}})
//	v, _ := matrix.NewDenseFrom([][]float64{{0, 1}})
//	d, _ := g.Dot(u, v) // [[1]]
//
// Shape disagreements are reported as *DimensionError, which also matches
// matrix.ErrDimensionMismatch.
package metric
