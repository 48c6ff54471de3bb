package engine

import (
	"fmt"
)

// Connection is a directed weighted edge between two neurons in
// adjacent layers. Its identity is the ordered (From, To) pair; the
// source neuron's layer is always exactly one below the destination's.
//
// Weight is drawn uniformly from [-1, 1) at construction and adjusted
// by gradient descent. Gradient holds the error derivative computed by
// the most recent backward pass; it is observable state for display and
// is never read back by a later computation.
type Connection struct {
	From     int
	To       int
	Weight   float64
	Gradient float64
}

// Key renders the canonical identifier for the ordered endpoint pair.
func (c *Connection) Key() string {
	return fmt.Sprintf("%d->%d", c.From, c.To)
}
