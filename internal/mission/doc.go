// Package mission parses rover missions and runs them.
//
// A mission is one grid and an ordered list of rover deployments. The plain
// text format is the grid spec on the first line followed by one pair of
// lines per rover, start position then commands:
//
//	5 5
//	1 2 N
//	LMLMLMLMM
//	3 3 E
//	MMRMMRMRRM
//
// Lines starting with '#' are ignored. A blank line directly after a start
// position means that rover has no commands; any other blank line is
// skipped, so
//
//	5 5
//	1 2 N
//
//	3 3 E
//	MM
//
// deploys two rovers, the first of which stays put. The same mission in
// YAML:
//
//	grid: "5 5"
//	rovers:
//	  - name: spirit
//	    position: "1 2 N"
//	    commands: LMLMLMLMM
//
// Each deployment gets its own rover; rovers never interact, so a [Runner]
// may process them concurrently while keeping results in mission order.
package mission
