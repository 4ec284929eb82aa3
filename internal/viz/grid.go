package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/rover/internal/rover"
)

const (
	MaxGridWidth  = 80
	MaxGridHeight = 40

	emptyCell   = '.'
	visitedCell = '*'
)

var headingGlyphs = map[rover.Heading]rune{
	rover.North: '^',
	rover.East:  '>',
	rover.South: 'v',
	rover.West:  '<',
}

func Glyph(h rover.Heading) rune {
	if g, ok := headingGlyphs[h]; ok {
		return g
	}
	return '?'
}

// Marker places a rover glyph on the grid.
type Marker struct {
	Pose  rover.Pose
	Trail []rover.Step
}

// GridRows returns the unstyled grid, top row (y = MaxY) first. Markers
// outside the grid are not drawn.
func GridRows(b rover.Bounds, markers []Marker) []string {
	cells := make([][]rune, b.MaxY+1)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(string(emptyCell), b.MaxX+1))
	}

	set := func(x, y int, c rune) {
		if b.Contains(x, y) {
			cells[y][x] = c
		}
	}

	for _, m := range markers {
		for _, s := range m.Trail {
			set(s.From.X, s.From.Y, visitedCell)
		}
	}
	for _, m := range markers {
		set(m.Pose.X, m.Pose.Y, Glyph(m.Pose.Heading))
	}

	rows := make([]string, 0, len(cells))
	for y := len(cells) - 1; y >= 0; y-- {
		rows = append(rows, string(cells[y]))
	}
	return rows
}

// RenderGrid draws the styled grid with a y axis on the left and an x axis
// below. Grids larger than MaxGridWidth x MaxGridHeight are summarised.
func RenderGrid(b rover.Bounds, markers []Marker) string {
	if b.MaxX+1 > MaxGridWidth || b.MaxY+1 > MaxGridHeight {
		return Subtle.Render(fmt.Sprintf("grid %s too large to draw", b))
	}

	glyphOwner := make(map[[2]int]int, len(markers))
	for i, m := range markers {
		glyphOwner[[2]int{m.Pose.X, m.Pose.Y}] = i
	}

	rows := GridRows(b, markers)
	labelWidth := len(fmt.Sprint(b.MaxY))

	var sb strings.Builder
	for i, row := range rows {
		y := b.MaxY - i
		sb.WriteString(Subtle.Render(fmt.Sprintf("%*d ", labelWidth, y)))
		for x, c := range row {
			switch c {
			case emptyCell:
				sb.WriteString(Subtle.Render(string(c)))
			case visitedCell:
				sb.WriteString(Trail.Render(string(c)))
			default:
				sb.WriteString(RoverStyle(glyphOwner[[2]int{x, y}]).Render(string(c)))
			}
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(strings.Repeat(" ", labelWidth+1))
	for x := 0; x <= b.MaxX; x++ {
		sb.WriteString(Subtle.Render(fmt.Sprint(x % 10)))
	}
	return sb.String()
}
