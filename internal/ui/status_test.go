package ui

import (
	"strings"
	"testing"

	"vitality/internal/board"
	"vitality/internal/core"
)

func TestStatusLines(t *testing.T) {
	frame := board.Frame{
		Size:       2,
		Generation: 12,
		Running:    true,
		Population: 3,
		Cells:      []int{0, 4, 1, 9},
	}
	params := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Board",
		Params: []core.Parameter{{Key: "size", Label: "Size", Value: "2"}},
	}}}

	lines := statusLines(frame, params)
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"running", "Generation  12", "Population  3/4", "Max vitality 9", "Board", "Size"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("status lines missing %q:\n%s", want, joined)
		}
	}
}

func TestRunLabel(t *testing.T) {
	if runLabel(true) != "Stop" || runLabel(false) != "Start" {
		t.Fatalf("unexpected labels %q/%q", runLabel(true), runLabel(false))
	}
}
