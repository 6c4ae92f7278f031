package builder

import "fmt"

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartition            = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}: the first n1
// vertices of the range form the left side, the next n2 the right side.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(c *Canvas, _ builderConfig) error {
		if n1 < minPartition || n2 < minPartition {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartition, ErrTooFewVertices)
		}
		left := c.AddVertices(n1)
		right := c.AddVertices(n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := c.AddEdge(left+i, right+j); err != nil {
					return fmt.Errorf("%s: %w", methodCompleteBipartite, err)
				}
			}
		}

		return nil
	}
}
