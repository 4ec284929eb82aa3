package metrics

import "github.com/san-kum/rover/internal/rover"

type cell struct{ x, y int }

// Coverage counts distinct cells occupied during a run, including the
// starting cell of the first observed step.
type Coverage struct {
	name    string
	visited map[cell]struct{}
}

func NewCoverage() *Coverage {
	return &Coverage{
		name:    "coverage",
		visited: make(map[cell]struct{}),
	}
}

func (c *Coverage) Name() string { return c.name }

func (c *Coverage) Observe(s rover.Step) {
	if len(c.visited) == 0 {
		c.visited[cell{s.From.X, s.From.Y}] = struct{}{}
	}
	c.visited[cell{s.To.X, s.To.Y}] = struct{}{}
}

func (c *Coverage) Value() float64 { return float64(len(c.visited)) }

func (c *Coverage) Reset() {
	c.visited = make(map[cell]struct{})
}
