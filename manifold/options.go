// SPDX-License-Identifier: MIT
// Package manifold - functional options.
//
// Options given to a constructor become the manifold's defaults; options given
// to ParallelTransport or Transport override them for that call only. Values
// are checked when they are applied, so an out-of-domain value surfaces as
// ErrBadOption from the constructor (or the transport call) instead of a panic.

package manifold

import (
	"fmt"
	"io"
	"log/slog"
	"math"
)

// Defaults.
const (
	// DefaultEpsilon is the zero-norm threshold of the exponential and
	// logarithmic maps: the float64 machine epsilon.
	DefaultEpsilon = 2.220446049250313e-16

	// DefaultRTol and DefaultATol are the relative and absolute tolerances of
	// the membership predicates (|a−b| ≤ atol + rtol·|b|).
	DefaultRTol = 1e-5
	DefaultATol = 1e-8

	// DefaultSteps is the number of pole ladder rungs of ParallelTransport.
	DefaultSteps = 10

	// DefaultWorkers keeps transport sequential.
	DefaultWorkers = 1
)

// Strategy selects how Transport moves a tangent vector.
type Strategy int

const (
	// StrategyPoleLadder runs the iterative pole ladder. It needs nothing but
	// the Manifold contract and is the default.
	StrategyPoleLadder Strategy = iota

	// StrategyClosedForm uses the manifold's exact parallel transport along the
	// connecting geodesic; the manifold must implement ClosedFormTransporter.
	StrategyClosedForm
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyPoleLadder:
		return "pole_ladder"
	case StrategyClosedForm:
		return "closed_form"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Option mutates Options.
type Option func(*Options)

// Options is the immutable configuration of a manifold or of one transport
// call. The zero value is not useful; start from DefaultOptions.
type Options struct {
	eps        float64
	rtol, atol float64
	steps      int
	strategy   Strategy
	workers    int
	logger     *slog.Logger
}

// discardLogger is shared by every default Options.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// DefaultOptions returns the package defaults.
func DefaultOptions() Options {
	return Options{
		eps:      DefaultEpsilon,
		rtol:     DefaultRTol,
		atol:     DefaultATol,
		steps:    DefaultSteps,
		strategy: StrategyPoleLadder,
		workers:  DefaultWorkers,
		logger:   discardLogger,
	}
}

// WithEpsilon sets the zero-norm threshold; eps must be finite and > 0.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.eps = eps }
}

// WithTolerance sets the membership predicate tolerances; both must be
// finite and non-negative.
func WithTolerance(rtol, atol float64) Option {
	return func(o *Options) { o.rtol, o.atol = rtol, atol }
}

// WithSteps sets the number of ParallelTransport iterations; n must be >= 1.
func WithSteps(n int) Option {
	return func(o *Options) { o.steps = n }
}

// WithStrategy selects the Transport strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.strategy = s }
}

// WithWorkers bounds the number of row chunks transported concurrently;
// n must be >= 1. One keeps transport on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// WithLogger routes debug records to l. A nil l restores the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger
		}
		o.logger = l
	}
}

// apply returns a copy of o with opts applied, or ErrBadOption.
func (o Options) apply(opts ...Option) (Options, error) {
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if err := o.validate(); err != nil {
		return Options{}, err
	}

	return o, nil
}

func (o Options) validate() error {
	switch {
	case !(o.eps > 0) || math.IsInf(o.eps, 0):
		return fmt.Errorf("epsilon %g: %w", o.eps, ErrBadOption)
	case !finiteNonNegative(o.rtol) || !finiteNonNegative(o.atol):
		return fmt.Errorf("tolerance (%g, %g): %w", o.rtol, o.atol, ErrBadOption)
	case o.steps < 1:
		return fmt.Errorf("steps %d: %w: %w", o.steps, ErrBadOption, ErrBadSteps)
	case o.workers < 1:
		return fmt.Errorf("workers %d: %w", o.workers, ErrBadOption)
	case o.strategy != StrategyPoleLadder && o.strategy != StrategyClosedForm:
		return fmt.Errorf("strategy %v: %w", o.strategy, ErrBadOption)
	}

	return nil
}

func finiteNonNegative(x float64) bool { return x >= 0 && !math.IsInf(x, 0) }

// Epsilon returns the zero-norm threshold.
func (o Options) Epsilon() float64 { return o.eps }

// Tolerance returns the predicate tolerances.
func (o Options) Tolerance() (rtol, atol float64) { return o.rtol, o.atol }

// Steps returns the ParallelTransport iteration count.
func (o Options) Steps() int { return o.steps }

// Strategy returns the Transport strategy.
func (o Options) Strategy() Strategy { return o.strategy }

// Workers returns the transport concurrency bound.
func (o Options) Workers() int { return o.workers }

// Logger returns the debug logger; never nil.
func (o Options) Logger() *slog.Logger { return o.logger }
