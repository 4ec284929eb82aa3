package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/rover/internal/mission"
	"github.com/san-kum/rover/internal/rover"
)

const (
	// DefaultCellSize is the SVG edge length of one grid cell.
	DefaultCellSize = 40

	// MaxSVGDots is the largest grid that still gets one dot per cell.
	MaxSVGDots = 10000
)

var pathColors = []string{"#00ff87", "#ff5fd7", "#5fafff", "#ffd700", "#af87ff", "#ff8700"}

// WriteSVG draws the grid, each rover's path and its final pose as SVG.
// The origin is the bottom-left cell.
func WriteSVG(w io.Writer, result *mission.Result) error {
	_, err := io.WriteString(w, ResultToSVG(result, DefaultCellSize))
	return err
}

// ResultToSVG renders result with cells of the given size in pixels.
func ResultToSVG(result *mission.Result, cell float64) string {
	b := result.Grid
	width := float64(b.MaxX+1) * cell
	height := float64(b.MaxY+1) * cell

	// cell centre in SVG coordinates, y flipped
	center := func(x, y int) (float64, float64) {
		return float64(x)*cell + cell/2, height - float64(y)*cell - cell/2
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#3a3a3a">
`, width, height, width, height))

	if drawDots(b) {
		for y := 0; y <= b.MaxY; y++ {
			for x := 0; x <= b.MaxX; x++ {
				cx, cy := center(x, y)
				sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, cell*0.06))
			}
		}
	}
	sb.WriteString("</g>\n")

	for i, rr := range result.Rovers {
		color := pathColors[i%len(pathColors)]
		sb.WriteString(fmt.Sprintf(`<g id="rover-%d">
<title>`, i+1))
		xml.EscapeText(&sb, []byte(rr.Name))
		sb.WriteString("</title>\n")

		if d := pathData(rr.Start, rr.Trace, center); d != "" {
			sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%.1f" d="%s"/>
`, color, cell*0.08, d))
		}

		for _, s := range rr.Trace {
			if !s.Rejected {
				continue
			}
			cx, cy := center(s.From.X, s.From.Y)
			r := cell * 0.2
			sb.WriteString(fmt.Sprintf(`<path stroke="#ff5f5f" stroke-width="%.1f" d="M%.1f,%.1f L%.1f,%.1f M%.1f,%.1f L%.1f,%.1f"/>
`, cell*0.05, cx-r, cy-r, cx+r, cy+r, cx-r, cy+r, cx+r, cy-r))
		}

		cx, cy := center(rr.Final.X, rr.Final.Y)
		sb.WriteString(fmt.Sprintf(`<polygon fill="%s" points="%s"/>
`, color, arrow(cx, cy, cell*0.3, rr.Final.Heading)))
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// drawDots reports whether b has at most MaxSVGDots cells.
func drawDots(b rover.Bounds) bool {
	w, h := b.MaxX+1, b.MaxY+1
	return w > 0 && h > 0 && w <= MaxSVGDots/h
}

func pathData(start rover.Pose, trace []rover.Step, center func(x, y int) (float64, float64)) string {
	var sb strings.Builder
	x, y := center(start.X, start.Y)
	sb.WriteString(fmt.Sprintf("M%.1f,%.1f", x, y))

	moved := false
	for _, s := range trace {
		if !s.Moved() {
			continue
		}
		x, y = center(s.To.X, s.To.Y)
		sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		moved = true
	}
	if !moved {
		return ""
	}
	return sb.String()
}

// arrow returns triangle points pointing along h around (cx, cy).
func arrow(cx, cy, r float64, h rover.Heading) string {
	hx, hy := h.Delta()
	// SVG y grows downwards
	dx, dy := float64(hx), -float64(hy)
	px, py := -dy, dx

	tipX, tipY := cx+dx*r, cy+dy*r
	lx, ly := cx-dx*r*0.6+px*r*0.7, cy-dy*r*0.6+py*r*0.7
	rx, ry := cx-dx*r*0.6-px*r*0.7, cy-dy*r*0.6-py*r*0.7
	return fmt.Sprintf("%.1f,%.1f %.1f,%.1f %.1f,%.1f", tipX, tipY, lx, ly, rx, ry)
}
