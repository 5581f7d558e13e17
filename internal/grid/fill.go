package grid

// FloodFill recolors every cell reachable from (row, col) through
// 4-directional adjacency that currently equals target, replacing it with
// replacement. It returns the number of cells changed.
//
// Nothing happens when replacement equals target, or when the start cell does
// not hold target. Neighbors are visited left, right, up, down.
func FloodFill[T comparable](g *Grid[T], row, col int, target, replacement T) int {
	if !g.InBounds(row, col) {
		return 0
	}
	return fill(g, row, col, target, replacement)
}

func fill[T comparable](g *Grid[T], row, col int, target, replacement T) int {
	i := g.Index(row, col)
	if g.cells[i] == replacement {
		return 0
	}
	if g.cells[i] != target {
		return 0
	}

	g.cells[i] = replacement
	n := 1

	if col > 0 {
		n += fill(g, row, col-1, target, replacement)
	}
	if col < g.axis-1 {
		n += fill(g, row, col+1, target, replacement)
	}
	if row > 0 {
		n += fill(g, row-1, col, target, replacement)
	}
	if row < g.axis-1 {
		n += fill(g, row+1, col, target, replacement)
	}
	return n
}

// Region returns the coordinates 4-connected to (row, col) that share its
// value, in visit order. Used to verify fills and to highlight regions.
func Region[T comparable](g *Grid[T], row, col int) []Coord {
	if !g.InBounds(row, col) {
		return nil
	}
	want := g.At(row, col)
	seen := make([]bool, g.Len())
	var out []Coord
	stack := []Coord{{Row: row, Col: col}}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !g.InBounds(c.Row, c.Col) {
			continue
		}
		i := g.Index(c.Row, c.Col)
		if seen[i] || g.cells[i] != want {
			continue
		}
		seen[i] = true
		out = append(out, c)
		stack = append(stack,
			Coord{Row: c.Row + 1, Col: c.Col},
			Coord{Row: c.Row - 1, Col: c.Col},
			Coord{Row: c.Row, Col: c.Col + 1},
			Coord{Row: c.Row, Col: c.Col - 1},
		)
	}
	return out
}
