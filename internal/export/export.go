package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/rover/internal/mission"
	"github.com/san-kum/rover/internal/rover"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatSVG  = "svg"
)

type ExportData struct {
	Grid   string        `json:"grid"`
	Rovers []RoverExport `json:"rovers"`
}

type RoverExport struct {
	Name     string             `json:"name"`
	Start    string             `json:"start"`
	Final    string             `json:"final"`
	Commands string             `json:"commands"`
	Metrics  map[string]float64 `json:"metrics"`
	Trace    []StepExport       `json:"trace"`
}

type StepExport struct {
	Index    int    `json:"index"`
	Command  string `json:"command"`
	From     string `json:"from"`
	To       string `json:"to"`
	Rejected bool   `json:"rejected,omitempty"`
}

// Write renders result in the given format.
func Write(w io.Writer, format string, result *mission.Result) error {
	switch format {
	case FormatText, "":
		return WriteText(w, result)
	case FormatJSON:
		return WriteJSON(w, result)
	case FormatCSV:
		return WriteCSV(w, result)
	case FormatSVG:
		return WriteSVG(w, result)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// WriteText prints one "x y H" line per rover.
func WriteText(w io.Writer, result *mission.Result) error {
	for _, pos := range result.Positions() {
		if _, err := fmt.Fprintln(w, pos); err != nil {
			return err
		}
	}
	return nil
}

func WriteJSON(w io.Writer, result *mission.Result) error {
	data := ExportData{
		Grid:   result.Grid.String(),
		Rovers: make([]RoverExport, len(result.Rovers)),
	}

	for i, rr := range result.Rovers {
		re := RoverExport{
			Name:     rr.Name,
			Start:    rr.Start.String(),
			Final:    rr.Final.String(),
			Commands: rr.Commands,
			Metrics:  rr.Metrics,
			Trace:    make([]StepExport, len(rr.Trace)),
		}
		for j, s := range rr.Trace {
			re.Trace[j] = stepExport(s)
		}
		data.Rovers[i] = re
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

var csvHeader = []string{
	"rover", "index", "command",
	"from_x", "from_y", "from_heading",
	"to_x", "to_y", "to_heading",
	"rejected",
}

// WriteCSV writes one row per processed command across all rovers.
func WriteCSV(w io.Writer, result *mission.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, rr := range result.Rovers {
		for _, s := range rr.Trace {
			row := []string{
				rr.Name,
				strconv.Itoa(s.Index),
				string(s.Command),
				strconv.Itoa(s.From.X),
				strconv.Itoa(s.From.Y),
				s.From.Heading.String(),
				strconv.Itoa(s.To.X),
				strconv.Itoa(s.To.Y),
				s.To.Heading.String(),
				strconv.FormatBool(s.Rejected),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func stepExport(s rover.Step) StepExport {
	return StepExport{
		Index:    s.Index,
		Command:  string(s.Command),
		From:     s.From.String(),
		To:       s.To.String(),
		Rejected: s.Rejected,
	}
}
