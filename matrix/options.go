// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense ingestion.
//
// Only the numeric policy is configurable: whether NewDenseFrom and Set
// reject NaN/±Inf. Kernels never consult it, because geometric formulas are
// allowed to produce NaN for out-of-domain input (see metric.Norm).
package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
const DefaultValidateNaNInf = true

// Option mutates the ingestion policy used by NewDenseFrom.
type Option func(*Options)

// Options holds the effective ingestion policy.
// Fields are unexported; build it with NewOptions.
type Options struct {
	validateNaNInf bool
}

// WithValidateNaNInf enables finite-only ingestion (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN/±Inf through ingestion and Set.
// Use it for fixtures that deliberately carry out-of-domain values.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions applies setters on top of the documented defaults (last writer wins).
func NewOptions(opts ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// ValidatesNaNInf reports whether the policy rejects non-finite values.
func (o Options) ValidatesNaNInf() bool { return o.validateNaNInf }
