// SPDX-License-Identifier: MIT

package metric

import (
	"fmt"
	"math"

	"github.com/katalvlaran/riemann/matrix"
)

// Names of the provided forms, reported by Name and String.
const (
	NameEuclidean = "euclidean"
	NameMinkowski = "minkowski"
	NameCustom    = "custom"
)

// symmetryTol bounds |G[i,j]-G[j,i]| accepted by New.
const symmetryTol = 1e-12

const (
	opNew  = "New"
	opDot  = "Dot"
	opNorm = "Norm"
)

// Metric is an immutable symmetric bilinear form G over an n-dimensional
// ambient space. All methods are safe for concurrent use: nothing is mutated
// after construction.
type Metric struct {
	name string
	n    int
	g    *matrix.Dense
	diag []float64 // diagonal of G when G is diagonal; nil otherwise
}

// NewEuclidean returns the Euclidean form on an n-dimensional space (G = I_n).
func NewEuclidean(n int) (*Metric, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewEuclidean(%d): %w", n, ErrBadDimension)
	}
	diag := make([]float64, n)
	for i := range diag {
		diag[i] = 1
	}

	return newDiagonal(NameEuclidean, diag)
}

// NewMinkowski returns the Minkowski form on an n-dimensional space with the
// timelike-first convention: ⟨x,x⟩ = −(x⁰)² + Σᵢ(xⁱ)².
func NewMinkowski(n int) (*Metric, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewMinkowski(%d): %w", n, ErrBadDimension)
	}
	diag := make([]float64, n)
	for i := range diag {
		diag[i] = 1
	}
	diag[0] = -1

	return newDiagonal(NameMinkowski, diag)
}

// New wraps an arbitrary symmetric form. g is copied; later changes to g do
// not affect the Metric.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square),
// matrix.ErrAsymmetry.
func New(g matrix.Matrix) (*Metric, error) {
	if err := matrix.ValidateSymmetric(g, symmetryTol); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	// Scale by one materializes an independent *Dense for any Matrix.
	cp, err := matrix.Scale(g, 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	m := &Metric{name: NameCustom, n: cp.Rows(), g: cp}
	if isDiag, _ := matrix.IsZeroOffDiagonal(cp, 0); isDiag {
		m.diag, _ = matrix.Diagonal(cp)
	}

	return m, nil
}

func newDiagonal(name string, diag []float64) (*Metric, error) {
	g, err := matrix.NewDiagonal(diag)
	if err != nil {
		return nil, err
	}

	return &Metric{name: name, n: len(diag), g: g, diag: diag}, nil
}

// Dim returns the ambient dimension n.
func (m *Metric) Dim() int { return m.n }

// Name returns "euclidean", "minkowski" or "custom".
func (m *Metric) Name() string { return m.name }

// Matrix returns a copy of G.
func (m *Metric) Matrix() *matrix.Dense {
	cp, _ := matrix.Scale(m.g, 1)

	return cp
}

// String implements fmt.Stringer.
func (m *Metric) String() string {
	return fmt.Sprintf("%s(%d)", m.name, m.n)
}

// CheckPair verifies that u and v are non-nil batches with equal row counts
// and exactly Dim() columns each. Manifolds call it before any arithmetic so
// that mismatches surface as *DimensionError instead of broadcasting.
func (m *Metric) CheckPair(op string, u, v matrix.Matrix) error {
	if m == nil {
		return fmt.Errorf("%s: %w", op, ErrNilMetric)
	}
	if err := matrix.ValidateNotNil(u); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := matrix.ValidateNotNil(v); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if u.Rows() != v.Rows() || u.Cols() != m.n || v.Cols() != m.n {
		return &DimensionError{
			Op: op, Want: m.n,
			URows: u.Rows(), UCols: u.Cols(),
			VRows: v.Rows(), VCols: v.Cols(),
		}
	}

	return nil
}

// CheckBatch is the unary form of CheckPair.
func (m *Metric) CheckBatch(op string, u matrix.Matrix) error {
	return m.CheckPair(op, u, u)
}

// Dot returns the m×1 column whose row i is uᵢᵀ·G·vᵢ.
// u and v must have equal rows and Dim() columns; otherwise *DimensionError.
//
// Diagonal forms (both provided constructors) use a weighted row contraction;
// general forms compute rowsum((u·G) ⊙ v).
func (m *Metric) Dot(u, v matrix.Matrix) (*matrix.Dense, error) {
	if err := m.CheckPair(opDot, u, v); err != nil {
		return nil, err
	}
	if m.diag != nil {
		out, err := matrix.WeightedRowDots(u, v, m.diag)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opDot, err)
		}

		return out, nil
	}

	ug, err := matrix.Mul(u, m.g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDot, err)
	}
	prod, err := matrix.Hadamard(ug, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDot, err)
	}
	out, err := matrix.RowSums(prod)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDot, err)
	}

	return out, nil
}

// Norm returns the m×1 column sqrt(⟨uᵢ,uᵢ⟩).
//
// Precondition: ⟨uᵢ,uᵢ⟩ ≥ 0 for every row. Under an indefinite form
// (Minkowski) timelike rows violate it and their entry is NaN; this is not
// reported as an error.
func (m *Metric) Norm(u matrix.Matrix) (*matrix.Dense, error) {
	sq, err := m.Dot(u, u)
	if err != nil {
		return nil, err
	}
	out, err := matrix.Map(sq, math.Sqrt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNorm, err)
	}

	return out, nil
}
