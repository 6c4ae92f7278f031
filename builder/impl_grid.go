// SPDX-License-Identifier: MIT
// Package: duopath/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r,c) is vertex first + r*cols + c (row-major).
//   - For each cell in row-major order emit Right then Bottom if present.
//
// Complexity: O(rows*cols) vertices and edges.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
func Grid(rows, cols int) Constructor {
	return func(c *Canvas, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		first := c.AddVertices(rows * cols)
		cell := func(r, col int) int { return first + r*cols + col }

		for r := 0; r < rows; r++ {
			for col := 0; col < cols; col++ {
				if col+1 < cols {
					if err := c.AddEdge(cell(r, col), cell(r, col+1)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if err := c.AddEdge(cell(r, col), cell(r+1, col)); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}
