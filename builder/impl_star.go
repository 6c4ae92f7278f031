package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for a star: the first vertex of the range is the
// hub, the remaining n-1 are leaves.
func Star(n int) Constructor {
	return func(c *Canvas, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := c.AddVertices(n)
		for i := 1; i < n; i++ {
			if err := c.AddEdge(hub, hub+i); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}
