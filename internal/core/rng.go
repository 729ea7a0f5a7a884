package core

import "math/rand/v2"

// NewRand returns a PCG-backed generator so a seed always reproduces the
// same board.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// FillBinary sets each cell to vitality 1 with probability one half and to
// 0 otherwise.
func FillBinary(r *rand.Rand, buf []int) {
	for i := range buf {
		buf[i] = r.IntN(2)
	}
}

// SeedGrid replaces g's contents with a random 0/1 pattern derived from seed.
func SeedGrid(g *Grid, seed int64) {
	FillBinary(NewRand(seed), g.data)
}
