// SPDX-License-Identifier: MIT
// Package: duopath/builder
//
// impl_random_regular.go - RandomRegular(n, d) constructor.
//
// Stub matching: every vertex contributes d stubs, the stubs are shuffled
// and paired consecutively. A pairing with a loop or a repeated pair is
// rejected and reshuffled, up to maxStubMatchingAttempts times.
//
// Contract:
//   - n ≥ 1, 0 ≤ d < n, n*d even (else ErrTooFewVertices).
//   - cfg.rng is required (else ErrNeedRandSource).
//   - Either a simple d-regular graph is emitted, or ErrConstructFailed.

package builder

import "fmt"

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 64
)

// RandomRegular returns a Constructor for a random simple d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		first := c.AddVertices(n)
		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		if len(stubs) == 0 {
			return nil
		}

		seen := make(map[[2]int]struct{}, len(stubs)/2)
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs, seen) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				if err := c.AddEdge(first+stubs[i], first+stubs[i+1]); err != nil {
					return fmt.Errorf("%s: %w", methodRandomRegular, err)
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a simple graph.
// seen is scratch space and is cleared first.
func simplePairing(stubs []int, seen map[[2]int]struct{}) bool {
	clear(seen)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
