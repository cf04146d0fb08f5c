// SPDX-License-Identifier: MIT

package manifold

import "errors"

// Sentinel errors. Callers match them with errors.Is; shape disagreements are
// reported as *metric.DimensionError (which also matches
// matrix.ErrDimensionMismatch) and are not repeated here.
var (
	// ErrBadDimension indicates an intrinsic dimension below one.
	ErrBadDimension = errors.New("manifold: dimension must be >= 1")

	// ErrBadOption indicates an Option value outside its domain
	// (non-positive or NaN epsilon, negative tolerance, steps or workers < 1,
	// unknown strategy).
	ErrBadOption = errors.New("manifold: invalid option")

	// ErrBadSteps indicates a parallel transport step count below one.
	ErrBadSteps = errors.New("manifold: n_steps must be >= 1")

	// ErrStrategyUnsupported indicates StrategyClosedForm on a manifold that
	// does not implement ClosedFormTransporter.
	ErrStrategyUnsupported = errors.New("manifold: transport strategy not supported")

	// ErrZeroVector indicates a zero row where a direction is required.
	ErrZeroVector = errors.New("manifold: zero vector")

	// ErrNilManifold indicates a nil Manifold passed to a generic algorithm.
	ErrNilManifold = errors.New("manifold: nil manifold")
)
