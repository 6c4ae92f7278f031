package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the simple path P_n: i-(i+1) for i ascending.
func Path(n int) Constructor {
	return func(c *Canvas, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		first := c.AddVertices(n)
		for i := 0; i+1 < n; i++ {
			if err := c.AddEdge(first+i, first+i+1); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}
