package config

import "sort"

// Preset is a built-in mission in the plain text mission format.
type Preset struct {
	Description string
	Source      string
}

var Presets = map[string]*Preset{
	"classic": {
		Description: "two rovers on a 5x5 plateau",
		Source:      "5 5\n1 2 N\nLMLMLMLMM\n3 3 E\nMMRMMRMRRM\n",
	},
	"turns": {
		Description: "single-step turns from the same start",
		Source:      "5 5\n1 2 N\nLM\n1 2 N\nRM\n1 2 E\nMMM\n",
	},
	"edge": {
		Description: "moves that run into every edge",
		Source:      "5 5\n0 0 S\nM\n0 0 W\nM\n5 5 N\nM\n5 5 E\nM\n",
	},
	"spiral": {
		Description: "one rover spiralling inwards on a 9x9 grid",
		Source:      "9 9\n0 0 N\nMMMMMMMMMRMMMMMMMMMRMMMMMMMMMRMMMMMMMMRMMMMMMMMRMMMMMMMRMMMMMMMRMMMMMMRMMMMMMRMMMMM\n",
	},
	"square": {
		Description: "a closed loop around a 3x3 grid",
		Source:      "3 3\n0 0 N\nMMMRMMMRMMMRMMMR\n",
	},
}

// GetPreset returns the named preset or nil.
func GetPreset(name string) *Preset {
	return Presets[name]
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
