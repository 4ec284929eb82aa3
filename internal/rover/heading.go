package rover

import "fmt"

// Heading is one of the four compass directions.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

var (
	headingSymbols = [...]string{North: "N", East: "E", South: "S", West: "W"}

	leftOf  = [...]Heading{North: West, West: South, South: East, East: North}
	rightOf = [...]Heading{North: East, East: South, South: West, West: North}

	// unit step per heading, y grows northwards
	deltas = [...]struct{ dx, dy int }{
		North: {0, 1},
		East:  {1, 0},
		South: {0, -1},
		West:  {-1, 0},
	}
)

// Headings lists all headings in clockwise order starting at North.
func Headings() []Heading {
	return []Heading{North, East, South, West}
}

// Left returns the heading after a 90 degree counter-clockwise turn.
func (h Heading) Left() Heading { return leftOf[h] }

// Right returns the heading after a 90 degree clockwise turn.
func (h Heading) Right() Heading { return rightOf[h] }

// Delta returns the unit step taken when moving along h.
func (h Heading) Delta() (dx, dy int) {
	d := deltas[h]
	return d.dx, d.dy
}

func (h Heading) Valid() bool { return h <= West }

func (h Heading) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Heading(%d)", uint8(h))
	}
	return headingSymbols[h]
}

// ParseHeading converts a single-letter symbol into a Heading.
func ParseHeading(s string) (Heading, error) {
	switch s {
	case "N":
		return North, nil
	case "E":
		return East, nil
	case "S":
		return South, nil
	case "W":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHeading, s)
}

// MarshalText encodes the heading as its symbol.
func (h Heading) MarshalText() ([]byte, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHeading, uint8(h))
	}
	return []byte(h.String()), nil
}

func (h *Heading) UnmarshalText(text []byte) error {
	parsed, err := ParseHeading(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
