package core

// Position is a cell coordinate on the grid.
type Position struct {
	X, Y int
}

// Offsets lists the Moore neighbourhood in the order neighbours are resolved.
var Offsets = [8]Position{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid stores an N×N toroidal grid of vitality values in row-major order.
// A value of 0 is a dead cell; any positive value is alive.
type Grid struct {
	size int
	data []int
}

// NewGrid allocates a size×size grid with every cell at 0.
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, &InvalidSizeError{Size: size}
	}
	return &Grid{size: size, data: make([]int, size*size)}, nil
}

// Size returns the edge length N.
func (g *Grid) Size() int { return g.size }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.data) }

// Cells exposes the backing slice. Callers must not retain or modify it.
func (g *Grid) Cells() []int { return g.data }

// Snapshot returns a copy of the current vitality values.
func (g *Grid) Snapshot() []int {
	out := make([]int, len(g.data))
	copy(out, g.data)
	return out
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.size + x }

// Position converts a linear index back into coordinates.
func (g *Grid) Position(index int) Position {
	return Position{X: index % g.size, Y: index / g.size}
}

// At returns the vitality stored at index.
func (g *Grid) At(index int) (int, error) {
	if err := g.check(index); err != nil {
		return 0, err
	}
	return g.data[index], nil
}

// Toggle flips the cell at index between dead (0) and alive (1).
func (g *Grid) Toggle(index int) error {
	if err := g.check(index); err != nil {
		return err
	}
	if g.data[index] == 0 {
		g.data[index] = 1
	} else {
		g.data[index] = 0
	}
	return nil
}

// WrapPosition resolves (baseX+dx, baseY+dy) on the torus. Only offsets of
// magnitude one are handled; larger offsets need true modulo arithmetic.
func (g *Grid) WrapPosition(baseX, baseY, dx, dy int) Position {
	return Position{X: g.wrap(baseX + dx), Y: g.wrap(baseY + dy)}
}

func (g *Grid) wrap(v int) int {
	switch v {
	case -1:
		return g.size - 1
	case g.size:
		return 0
	}
	return v
}

// NeighborIndices returns the wrapped Moore neighbourhood of index in
// Offsets order. Small grids fold several offsets onto the same cell and the
// duplicates are kept.
func (g *Grid) NeighborIndices(index int) ([8]int, error) {
	var out [8]int
	if err := g.check(index); err != nil {
		return out, err
	}
	base := g.Position(index)
	for i, off := range Offsets {
		p := g.WrapPosition(base.X, base.Y, off.X, off.Y)
		out[i] = g.Index(p.X, p.Y)
	}
	return out, nil
}

// Replace swaps in a whole generation of cells.
func (g *Grid) Replace(cells []int) error {
	if len(cells) != len(g.data) {
		return &LengthMismatchError{Want: len(g.data), Got: len(cells)}
	}
	for i, v := range cells {
		if v < 0 {
			return &NegativeVitalityError{Index: i, Value: v}
		}
	}
	copy(g.data, cells)
	return nil
}

// Population counts the cells with positive vitality.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		if v > 0 {
			n++
		}
	}
	return n
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

func (g *Grid) check(index int) error {
	if index < 0 || index >= len(g.data) {
		return &IndexOutOfRangeError{Index: index, Len: len(g.data)}
	}
	return nil
}
