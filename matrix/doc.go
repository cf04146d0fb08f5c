// Package matrix provides the dense, row-major batch type and the row-wise
// kernels used by the metric and manifold packages.
//
// The matrix package provides:
//
//   - Dense: an r×c float64 matrix in a flat row-major buffer with bounds-safe
//     accessors (At, Set, Row, Col) and copy-based row extraction
//     (SliceRows, SetRows, Induced) for splitting batches into chunks.
//   - Kernels: Add, Sub, Scale, Negate, Hadamard, Mul, Transpose, MatVec,
//     RowSums. Every kernel validates shapes up front and returns a fresh
//     *Dense; operands are never mutated.
//   - Row broadcasts: ScaleRows, AddScaledRows, Combine and WeightedRowDots,
//     where each row carries its own scalar. A batch of m points is an m×n
//     matrix and rows never interact.
//   - Comparison: AllClose, IsClose and MaxAbsDiff for tolerance checks.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrOutOfRange, ...)
// wrapped with an operation tag; match them with errors.Is.
package matrix
