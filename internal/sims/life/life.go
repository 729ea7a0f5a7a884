// Package life computes generations of Conway's Game of Life on a toroidal
// grid whose cells carry a vitality counter instead of a boolean.
package life

import (
	"fmt"

	"vitality/internal/core"
)

const (
	// RuleVitality is the registry name of the vitality rule.
	RuleVitality = "vitality"
	// RuleConway is the registry name of the classic boolean rule.
	RuleConway = "conway"
)

// Vitality grows a cell with exactly three live neighbours, holds it with
// exactly two and resets it otherwise. Growth covers both birth and survival.
func Vitality(v, live int) int {
	switch live {
	case 3:
		return v + 1
	case 2:
		return v
	}
	return 0
}

// Conway is the classic rule: birth on three, survival on two or three.
// Results are always 0 or 1.
func Conway(v, live int) int {
	if live == 3 || (v > 0 && live == 2) {
		return 1
	}
	return 0
}

// NextGeneration applies the vitality rule to g and returns the new cells.
// g is not modified.
func NextGeneration(g *core.Grid) ([]int, error) {
	return NextGenerationWith(g, Vitality)
}

// NextGenerationWith applies rule to every cell of g. Neighbour counts are
// taken from the current generation only.
func NextGenerationWith(g *core.Grid, rule core.Rule) ([]int, error) {
	cur := g.Cells()
	nxt := make([]int, len(cur))
	for idx, v := range cur {
		neighbors, err := g.NeighborIndices(idx)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", idx, err)
		}
		live := 0
		for _, n := range neighbors {
			if cur[n] > 0 {
				live++
			}
		}
		nxt[idx] = rule(v, live)
	}
	return nxt, nil
}

func init() {
	core.Register(RuleVitality, Vitality)
	core.Register(RuleConway, Conway)
}
