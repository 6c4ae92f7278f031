package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // the rim C_{n-1} needs at least 3 vertices
)

// Wheel returns a Constructor for W_n: a rim cycle on the first n-1 vertices
// of the range plus a hub (the last vertex) joined to every rim vertex.
func Wheel(n int) Constructor {
	return func(c *Canvas, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		first := c.Order()
		if err := Cycle(n-1)(c, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		hub := c.AddVertices(1)
		for i := 0; i < n-1; i++ {
			if err := c.AddEdge(hub, first+i); err != nil {
				return fmt.Errorf("%s: %w", methodWheel, err)
			}
		}

		return nil
	}
}
