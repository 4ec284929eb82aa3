package mission

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/rover/internal/rover"
)

type Deployment struct {
	Name     string `yaml:"name" json:"name"`
	Position string `yaml:"position" json:"position"`
	Commands string `yaml:"commands" json:"commands"`
}

type Mission struct {
	Grid   string       `yaml:"grid" json:"grid"`
	Rovers []Deployment `yaml:"rovers" json:"rovers"`
}

// Bounds parses the mission grid.
func (m *Mission) Bounds() (rover.Bounds, error) {
	return rover.ParseBounds(m.Grid)
}

// Parse reads the plain text format. The grid and every start position are
// validated; command lines are taken verbatim and may be of any length. A
// blank line directly after a start position stands for an empty command
// line; other blank lines are skipped.
func Parse(r io.Reader) (*Mission, error) {
	m := &Mission{}
	br := bufio.NewReader(r)
	lineNo := 0
	var pending *Deployment

	for {
		raw, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, &ParseError{Line: lineNo + 1, Err: err}
		}
		if raw == "" && err == io.EOF {
			break
		}
		lineNo++
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, "#"):
		case line == "":
			if pending != nil {
				m.Rovers = append(m.Rovers, *pending)
				pending = nil
			}
		case m.Grid == "":
			if _, err := rover.ParseBounds(line); err != nil {
				return nil, &ParseError{Line: lineNo, Err: err}
			}
			m.Grid = line
		case pending == nil:
			if _, err := rover.ParsePose(line); err != nil {
				return nil, &ParseError{Line: lineNo, Err: err}
			}
			pending = &Deployment{Position: line}
		default:
			pending.Commands = line
			m.Rovers = append(m.Rovers, *pending)
			pending = nil
		}

		if err == io.EOF {
			break
		}
	}

	if pending != nil {
		m.Rovers = append(m.Rovers, *pending)
	}
	if m.Grid == "" {
		return nil, ErrEmptyMission
	}
	if len(m.Rovers) == 0 {
		return nil, ErrNoRovers
	}
	m.assignNames()
	return m, nil
}

// ParseString is Parse over an in-memory mission.
func ParseString(s string) (*Mission, error) {
	return Parse(strings.NewReader(s))
}

func ParseYAML(data []byte) (*Mission, error) {
	m := &Mission{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("mission: parse yaml: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.assignNames()
	return m, nil
}

// Load reads a mission file, choosing the format by extension.
func Load(path string) (*Mission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(bytes.NewReader(data))
	}
}

// Validate checks the grid and every start position.
func (m *Mission) Validate() error {
	if strings.TrimSpace(m.Grid) == "" {
		return ErrEmptyMission
	}
	if _, err := rover.ParseBounds(m.Grid); err != nil {
		return err
	}
	if len(m.Rovers) == 0 {
		return ErrNoRovers
	}
	for i, d := range m.Rovers {
		if _, err := rover.ParsePose(d.Position); err != nil {
			return fmt.Errorf("rover %d: %w", i+1, err)
		}
	}
	return nil
}

func (m *Mission) assignNames() {
	for i := range m.Rovers {
		if m.Rovers[i].Name == "" {
			m.Rovers[i].Name = fmt.Sprintf("rover-%d", i+1)
		}
	}
}
