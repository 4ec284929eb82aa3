package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/rover/internal/mission"
)

// Summary renders every rover of result in a bordered panel.
func Summary(result *mission.Result) string {
	blocks := []string{Title.Render(fmt.Sprintf("mission on %s grid", result.Grid))}

	for i, rr := range result.Rovers {
		line := fmt.Sprintf("%s  %s → %s",
			RoverStyle(i).Render(rr.Name),
			rr.Start,
			MetricValue.Render(rr.Final.String()),
		)
		blocks = append(blocks, line, metricsLine(rr.Metrics))
	}

	return GlassPanel.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

func metricsLine(m map[string]float64) string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		val := MetricValue.Render(fmt.Sprintf("%g", m[name]))
		if name == "rejected" && m[name] > 0 {
			val = Rejected.Render(fmt.Sprintf("%g", m[name]))
		}
		parts = append(parts, MetricLabel.Render(name+":")+" "+val)
	}
	return "  " + strings.Join(parts, "  ")
}
