// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with "%s: ...: %w" (method name first).
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).
//
// Priority when several validations fail:
//   • ErrTooFewVertices     - size checks first.
//   • ErrInvalidProbability - then probability ranges.
//   • ErrNeedRNG            - then RNG presence for stochastic builders.
//   • ErrConstructFailed    - nil constructors or nil target graph.

package builder

import "errors"

// ErrTooFewVertices indicates that n is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRNG indicates that a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRNG = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error at the orchestration level
// (nil constructor, nil graph).
var ErrConstructFailed = errors.New("builder: construction failed")
