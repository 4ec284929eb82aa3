package metrics

import "github.com/san-kum/rover/internal/rover"

// Commands counts recognised commands.
type Commands struct {
	name  string
	count int
}

func NewCommands() *Commands {
	return &Commands{name: "commands"}
}

func (c *Commands) Name() string         { return c.name }
func (c *Commands) Observe(s rover.Step) { c.count++ }
func (c *Commands) Value() float64       { return float64(c.count) }
func (c *Commands) Reset()               { c.count = 0 }

// Distance counts unit moves that were applied.
type Distance struct {
	name  string
	moves int
}

func NewDistance() *Distance {
	return &Distance{name: "distance"}
}

func (d *Distance) Name() string { return d.name }

func (d *Distance) Observe(s rover.Step) {
	if s.Command == rover.CmdMove && !s.Rejected {
		d.moves++
	}
}

func (d *Distance) Value() float64 { return float64(d.moves) }
func (d *Distance) Reset()         { d.moves = 0 }

// Rotations counts L and R commands.
type Rotations struct {
	name  string
	turns int
}

func NewRotations() *Rotations {
	return &Rotations{name: "rotations"}
}

func (r *Rotations) Name() string { return r.name }

func (r *Rotations) Observe(s rover.Step) {
	if s.Command == rover.CmdLeft || s.Command == rover.CmdRight {
		r.turns++
	}
}

func (r *Rotations) Value() float64 { return float64(r.turns) }
func (r *Rotations) Reset()         { r.turns = 0 }

// Rejected counts moves that were dropped at the grid edge.
type Rejected struct {
	name     string
	rejected int
}

func NewRejected() *Rejected {
	return &Rejected{name: "rejected"}
}

func (r *Rejected) Name() string { return r.name }

func (r *Rejected) Observe(s rover.Step) {
	if s.Rejected {
		r.rejected++
	}
}

func (r *Rejected) Value() float64 { return float64(r.rejected) }
func (r *Rejected) Reset()         { r.rejected = 0 }
