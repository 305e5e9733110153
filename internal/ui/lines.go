package ui

import (
	"fmt"

	"eca/internal/core"
)

// HelpLines lists the viewer controls.
var HelpLines = []string{
	"L/R click, Up/Down, wheel: change rule",
	"Middle click, R: toggle random seed",
	"Space: new random seed",
	"W A S D: pan   Q E, Ctrl+wheel: zoom",
	"C: cycle rules   H: hide help   Esc: quit",
}

// StatusLines turns a parameter snapshot into the overlay text. The rule line
// comes first so it reads like a title.
func StatusLines(snapshot core.ParameterSnapshot, showHelp bool) []string {
	var lines []string
	if rule, ok := snapshot.Lookup("rule"); ok {
		lines = append(lines, fmt.Sprintf("%s: %s", rule.Label, rule.Value))
	}
	for _, group := range snapshot.Groups {
		for _, p := range group.Params {
			if p.Key == "rule" {
				continue
			}
			lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	if showHelp {
		lines = append(lines, "")
		lines = append(lines, HelpLines...)
	}
	return lines
}
