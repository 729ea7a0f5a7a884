package ui

import (
	"fmt"

	"vitality/internal/board"
	"vitality/internal/core"
)

// statusLines formats the board counters followed by the configured
// parameters, one entry per HUD row.
func statusLines(frame board.Frame, params core.ParameterSnapshot) []string {
	state := core.Idle
	if frame.Running {
		state = core.Running
	}
	lines := []string{
		fmt.Sprintf("State       %s", state),
		fmt.Sprintf("Generation  %d", frame.Generation),
		fmt.Sprintf("Population  %d/%d", frame.Population, len(frame.Cells)),
		fmt.Sprintf("Max vitality %d", maxVitality(frame.Cells)),
	}
	for _, group := range params.Groups {
		lines = append(lines, "", group.Name)
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %-10s %s", p.Label, p.Value))
		}
	}
	return lines
}

func maxVitality(cells []int) int {
	m := 0
	for _, v := range cells {
		if v > m {
			m = v
		}
	}
	return m
}

// runLabel is the caption of the run/stop button.
func runLabel(running bool) string {
	if running {
		return "Stop"
	}
	return "Start"
}
