package rover

import "fmt"

// Bounds is the inclusive upper corner of the grid; the lower corner is (0, 0).
type Bounds struct {
	MaxX int `json:"max_x" yaml:"max_x"`
	MaxY int `json:"max_y" yaml:"max_y"`
}

// Contains reports whether (x, y) lies in [0, MaxX] x [0, MaxY].
func (b Bounds) Contains(x, y int) bool {
	return x >= 0 && x <= b.MaxX && y >= 0 && y <= b.MaxY
}

func (b Bounds) String() string {
	return fmt.Sprintf("%d %d", b.MaxX, b.MaxY)
}

// Pose is a position together with a heading.
type Pose struct {
	X       int     `json:"x" yaml:"x"`
	Y       int     `json:"y" yaml:"y"`
	Heading Heading `json:"heading" yaml:"heading"`
}

// String formats the pose as "x y H".
func (p Pose) String() string {
	return fmt.Sprintf("%d %d %s", p.X, p.Y, p.Heading)
}

// Step describes the effect of one recognised command.
type Step struct {
	Index    int  `json:"index"`
	Command  rune `json:"command"`
	From     Pose `json:"from"`
	To       Pose `json:"to"`
	Rejected bool `json:"rejected,omitempty"`
}

// Moved reports whether the step changed the position.
func (s Step) Moved() bool {
	return s.From.X != s.To.X || s.From.Y != s.To.Y
}

// Observer is notified after every recognised command.
type Observer interface {
	OnStep(s Step)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Step)

func (f ObserverFunc) OnStep(s Step) { f(s) }
