package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/rover/internal/rover"
)

// PathSeries returns the x and y coordinate after every step, starting
// with the pose before the first step.
func PathSeries(trace []rover.Step) (xs, ys []float64) {
	if len(trace) == 0 {
		return nil, nil
	}
	xs = make([]float64, 0, len(trace)+1)
	ys = make([]float64, 0, len(trace)+1)
	xs = append(xs, float64(trace[0].From.X))
	ys = append(ys, float64(trace[0].From.Y))
	for _, s := range trace {
		xs = append(xs, float64(s.To.X))
		ys = append(ys, float64(s.To.Y))
	}
	return xs, ys
}

// PlotPath plots x and y against command index. Empty traces plot nothing.
func PlotPath(name string, trace []rover.Step, height int) string {
	xs, ys := PathSeries(trace)
	if len(xs) < 2 {
		return ""
	}

	width := len(xs)
	if width > 80 {
		width = 80
	}

	return asciigraph.PlotMany([][]float64{xs, ys},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Magenta),
		asciigraph.Caption(fmt.Sprintf("%s: x (green), y (magenta) per command", name)),
	)
}
