package model

import "github.com/sheikhrachel/go-life/rules"

// Cell holds a single alive/dead state plus the living-neighbor count
// cached between the two phases of a step
type Cell struct {
	alive           bool
	livingNeighbors int
}

// SetAlive marks the cell as alive
func (c *Cell) SetAlive() { c.alive = true }

// SetDead marks the cell as dead
func (c *Cell) SetDead() { c.alive = false }

// IsAlive returns the state of the cell
func (c *Cell) IsAlive() bool { return c.alive }

// Toggle flips alive to dead and dead to alive
func (c *Cell) Toggle() { c.alive = !c.alive }

// LivingNeighborCount returns the count stored by the last recompute
func (c *Cell) LivingNeighborCount() int { return c.livingNeighbors }

// RecomputeLivingNeighborCount stores how many of neighborStates are alive.
// The states must be read before any cell of the current generation changes.
func (c *Cell) RecomputeLivingNeighborCount(neighborStates []bool) {
	count := 0
	for _, alive := range neighborStates {
		if alive {
			count++
		}
	}
	c.livingNeighbors = count
}

// ApplyTransition sets the next state from the cached neighbor count
func (c *Cell) ApplyTransition() {
	c.alive = rules.ApplyConwayRules(c.livingNeighbors, c.alive)
}
