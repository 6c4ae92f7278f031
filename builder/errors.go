// SPDX-License-Identifier: MIT
// Package: duopath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.
// Validation order when several checks fail: size, probability, rng,
// construction retries.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, degree)
// is below the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that retries were exhausted, a constructor was
// nil, or an emitted edge broke the canvas contract.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrNoSafePair indicates that RandomInstance found no vertex pair farther
// apart than the requested threshold.
var ErrNoSafePair = errors.New("builder: no vertex pair satisfies the threshold")
