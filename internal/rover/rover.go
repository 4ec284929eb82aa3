package rover

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	CmdLeft  = 'L'
	CmdRight = 'R'
	CmdMove  = 'M'
)

type Rover struct {
	bounds    Bounds
	pose      Pose
	observers []Observer
}

type Option func(*Rover)

// WithObserver registers o to receive every processed Step.
// Observers are notified in registration order.
func WithObserver(o Observer) Option {
	return func(r *Rover) {
		if o != nil {
			r.observers = append(r.observers, o)
		}
	}
}

// New builds a rover from a boundary spec of the form "<max_x> <max_y>".
// The rover starts at (0, 0) facing North.
func New(spec string, opts ...Option) (*Rover, error) {
	bounds, err := ParseBounds(spec)
	if err != nil {
		return nil, err
	}
	r := &Rover{
		bounds: bounds,
		pose:   Pose{X: 0, Y: 0, Heading: North},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// MustNew is like New but panics on a malformed boundary spec.
func MustNew(spec string, opts ...Option) *Rover {
	r, err := New(spec, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseBounds parses "<max_x> <max_y>". Extra trailing fields are ignored.
func ParseBounds(spec string) (Bounds, error) {
	fields := strings.Fields(spec)
	if len(fields) < 2 {
		return Bounds{}, fmt.Errorf("%w: want \"<max_x> <max_y>\", got %q", ErrMalformedBoundaries, spec)
	}
	maxX, err := strconv.Atoi(fields[0])
	if err != nil {
		return Bounds{}, fmt.Errorf("%w: max_x %q: %v", ErrMalformedBoundaries, fields[0], err)
	}
	maxY, err := strconv.Atoi(fields[1])
	if err != nil {
		return Bounds{}, fmt.Errorf("%w: max_y %q: %v", ErrMalformedBoundaries, fields[1], err)
	}
	if maxX < 0 || maxY < 0 {
		return Bounds{}, fmt.Errorf("%w: negative bound in %q", ErrMalformedBoundaries, spec)
	}
	return Bounds{MaxX: maxX, MaxY: maxY}, nil
}

// ParsePose parses "<x> <y> <N|E|S|W>". Coordinates are not checked against any grid.
func ParsePose(spec string) (Pose, error) {
	fields := strings.Fields(spec)
	if len(fields) < 3 {
		return Pose{}, fmt.Errorf("%w: want \"<x> <y> <N|E|S|W>\", got %q", ErrMalformedPosition, spec)
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return Pose{}, fmt.Errorf("%w: x %q: %v", ErrMalformedPosition, fields[0], err)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return Pose{}, fmt.Errorf("%w: y %q: %v", ErrMalformedPosition, fields[1], err)
	}
	h, err := ParseHeading(fields[2])
	if err != nil {
		return Pose{}, err
	}
	return Pose{X: x, Y: y, Heading: h}, nil
}

// SetPosition overwrites position and heading from "<x> <y> <N|E|S|W>".
// No bounds check is applied; the rover is left unchanged on error.
func (r *Rover) SetPosition(spec string) error {
	p, err := ParsePose(spec)
	if err != nil {
		return err
	}
	r.pose = p
	return nil
}

// MustSetPosition is like SetPosition but panics on a malformed spec.
func (r *Rover) MustSetPosition(spec string) {
	if err := r.SetPosition(spec); err != nil {
		panic(err)
	}
}

// ProcessInput applies commands left to right. Characters other than
// L, R and M are skipped without notifying observers.
func (r *Rover) ProcessInput(commands string) {
	i := 0
	for _, c := range commands {
		switch c {
		case CmdLeft, CmdRight, CmdMove:
			r.apply(i, c)
		}
		i++
	}
}

func (r *Rover) apply(index int, c rune) {
	step := Step{Index: index, Command: c, From: r.pose}

	switch c {
	case CmdLeft:
		r.pose.Heading = r.pose.Heading.Left()
	case CmdRight:
		r.pose.Heading = r.pose.Heading.Right()
	case CmdMove:
		if r.canMove() {
			dx, dy := r.pose.Heading.Delta()
			r.pose.X += dx
			r.pose.Y += dy
		} else {
			step.Rejected = true
		}
	}

	step.To = r.pose
	for _, o := range r.observers {
		o.OnStep(step)
	}
}

// canMove compares the current coordinate on the axis of travel with the
// grid edge, so a rover repositioned outside the grid may still move along
// the other axis. Extreme coordinates never wrap.
func (r *Rover) canMove() bool {
	switch r.pose.Heading {
	case North:
		return r.pose.Y < r.bounds.MaxY
	case South:
		return r.pose.Y > 0
	case East:
		return r.pose.X < r.bounds.MaxX
	case West:
		return r.pose.X > 0
	}
	return false
}

// Position returns the current pose as "x y H".
func (r *Rover) Position() string { return r.pose.String() }

// Boundaries returns the grid bounds as "max_x max_y".
func (r *Rover) Boundaries() string { return r.bounds.String() }

func (r *Rover) Pose() Pose     { return r.pose }
func (r *Rover) Bounds() Bounds { return r.bounds }
