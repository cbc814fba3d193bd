// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for sparse containers and the
// numeric policy shared with inverters. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - The numeric policy is captured on creation: a Sparse remembers whether it
//     rejects NaN/Inf, and an Inverter remembers its epsilon. Changing options
//     later never mutates existing values.
//   - Epsilon is an ABSOLUTE tolerance. No relative scaling is applied, so badly
//     scaled inputs may be classified as singular. This is a known limitation.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon is the absolute tolerance used to decide whether a value is
	// effectively zero during pivot selection and elimination.
	DefaultEpsilon = 1.0e-10

	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Add/SetRow.
	DefaultValidateNaNInf = true
)

// Storage policy.
const (
	// DefaultRowCapacity is the map capacity hint for lazily created rows.
	// Zero is legal and lets the runtime pick the initial size.
	DefaultRowCapacity = 16
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid     = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicRowCapacityInvalid = "matrix: WithRowCapacity: capacity must be non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; read them through the
// accessor methods below.
type Options struct {
	// numeric policy
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf

	// storage policy
	rowCapacity int // >= 0; DefaultRowCapacity
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the absolute near-zero tolerance used by inverters.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - A larger eps declares more pivots "zero" and therefore more matrices singular.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Implementation:
//   - Stage 1: set validateNaNInf=false.
//
// Behavior highlights:
//   - Allows ±Inf/NaN to pass through Set/Add/SetRow on newly created matrices.
//
// Notes:
//   - This flag propagates only on creation; existing matrices are unaffected.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithRowCapacity sets the initial map capacity used when a row is first touched.
// Panics on negative capacity.
//
// Complexity: O(1).
func WithRowCapacity(n int) Option {
	if n < 0 {
		panic(panicRowCapacityInvalid)
	}

	return func(o *Options) { o.rowCapacity = n }
}

// ---------- Accessors ----------

// Epsilon returns the resolved absolute tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether non-finite values are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// RowCapacity returns the resolved row capacity hint.
func (o Options) RowCapacity() int { return o.rowCapacity }

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Implementation:
//   - Stage 1: start from defaults (single source of truth).
//   - Stage 2: apply opt in order; last-writer-wins semantics.
//
// Behavior highlights:
//   - Pure function; no side effects beyond producing a value.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(opts).
//
// Notes:
//   - Used by the ops package to pick up WithEpsilon.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		rowCapacity:    DefaultRowCapacity,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in constructors.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue // tolerate nil setters from conditional composition
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
