// Package statespace defines the product state space searched by the
// two-agent solvers.
//
// A composite state is the pair (x, y) of agent positions packed into one int
// as x*n + y, so search trees are flat arrays indexed by state. The half-step
// search appends one bit: (pair<<1)|bit, where bit 1 means A has already moved
// in the current step and B still owes its move.
//
// A state is valid when the agents are farther apart than the threshold D, or
// cannot reach each other at all. Successors enumerates the valid states one
// synchronized step away: both agents move, only A moves, or only B moves.
// The pair itself is never a successor, since a step in which nobody moves is
// not a step.
package statespace
