package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the ring C_n: i-(i+1) mod n, i ascending.
func Cycle(n int) Constructor {
	return func(c *Canvas, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		first := c.AddVertices(n)
		for i := 0; i < n; i++ {
			if err := c.AddEdge(first+i, first+(i+1)%n); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}

		return nil
	}
}
