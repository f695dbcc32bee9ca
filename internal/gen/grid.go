package gen

import "fmt"

// Grid is the logical rows×cols placement lattice. It is never materialized;
// it only fixes the numbering of vertices, which are written row-major.
type Grid struct {
	Rows int
	Cols int
}

// Len returns the number of vertices placed on the grid.
func (g Grid) Len() int { return g.Rows * g.Cols }

// Index maps a cell to its 0-based linear vertex index.
func (g Grid) Index(row, col int) int {
	if checkBounds && !g.in(row, col) {
		panic(fmt.Sprintf("gen: cell (%d, %d) outside %dx%d grid", row, col, g.Rows, g.Cols))
	}
	return row*g.Cols + col
}

// Ref maps a cell to the 1-based vertex reference used in face records.
func (g Grid) Ref(row, col int) int { return g.Index(row, col) + 1 }

// Cell is the inverse of Index.
func (g Grid) Cell(index int) (row, col int) {
	return index / g.Cols, index % g.Cols
}

func (g Grid) in(row, col int) bool {
	return row >= 0 && col >= 0 && row < g.Rows && col < g.Cols
}
