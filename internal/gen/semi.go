package gen

import "golang.org/x/exp/slices"

// semi1: 3.3.3.3.6 (snub hexagonal). Built on the triangular lattice; the
// residue of col+3*row mod 7 picks which of the two triangles in the cell
// survive, and bucket 4 owns the hexagon around the cell's right neighbour.
var semi1 = &Pattern{
	Name:   "semi1",
	Config: "3.3.3.3.6",
	Place:  placeSheared,
	Passes: []Pass{{
		Rows: Span{1, 1},
		Cols: Span{1, 1},
		Rules: []Rule{
			{When: bucket(0, 2, 5, 6), Faces: []Polygon{lowerTri}},
			{When: bucket(2, 4, 5, 6), Faces: []Polygon{upperTri}},
			{When: bucket(4), Faces: []Polygon{
				{{0, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}},
			}},
		},
	}},
}

// bucket matches cells whose (col + 3*row) mod 7 is one of residues.
func bucket(residues ...int) func(row, col int) bool {
	return func(row, col int) bool {
		return slices.Contains(residues, (col+3*row)%7)
	}
}

// semi2: 4.8.8 (truncated square). Octagons are emitted in a first pass over a
// wider margin, squares in a second.
var semi2 = &Pattern{
	Name:   "semi2",
	Config: "4.8.8",
	Place: func(row, col int) (float32, float32) {
		x := float32(f32(col/2)*semi2Stride) + f32(col%2) + float32(f32(row/2)*semi2Rise)
		y := float32(f32(row/2)*semi2Rise) + f32(row%2)
		return x, y
	},
	Passes: []Pass{
		{
			Rows: Span{1, 2},
			Cols: Span{1, 2},
			Rules: []Rule{{When: at(2, 1, 2, 0), Faces: []Polygon{
				{{0, 0}, {-1, 1}, {-1, 2}, {0, 1}, {1, 1}, {2, 0}, {2, -1}, {1, 0}},
			}}},
		},
		{
			Rows:  Span{0, 1},
			Cols:  Span{0, 1},
			Rules: []Rule{{When: at(2, 0, 2, 0), Faces: []Polygon{unitQuad}}},
		},
	},
}

var (
	semi2Stride = 2 + sqrt2
	semi2Rise   = 1 + halfSqrt2
)

// semi3: 3.3.3.4.4 (elongated triangular). Even rows are squares, odd rows
// are pairs of triangles; every other row shifts half a unit.
var semi3 = &Pattern{
	Name:   "semi3",
	Config: "3.3.3.4.4",
	Place: func(row, col int) (float32, float32) {
		x := f32(col) + float32(f32(row/2)*0.5)
		y := float32(f32(row/2)*semiRise) + f32(row%2)
		return x, y
	},
	Passes: []Pass{{
		Rows: Span{0, 1},
		Cols: Span{0, 1},
		Rules: []Rule{
			{When: func(row, _ int) bool { return row%2 == 0 }, Faces: []Polygon{unitQuad}},
			{When: func(row, _ int) bool { return row%2 != 0 }, Faces: []Polygon{lowerTri, upperTri}},
		},
	}},
}

// semiRise is the height of a square stacked on an equilateral triangle.
var semiRise = 1 + halfSqrt3

// semi4: 3.6.3.6 (trihexagonal).
var semi4 = &Pattern{
	Name:   "semi4",
	Config: "3.6.3.6",
	Place:  placeSheared,
	Passes: []Pass{{
		Rows: Span{0, 2},
		Cols: Span{1, 1},
		Rules: []Rule{
			{When: at(2, 0, 2, 0), Faces: []Polygon{lowerTri}},
			{When: at(2, 0, 2, 1), Faces: []Polygon{
				{{0, 0}, {1, 0}, {1, -1}},
			}},
			{When: at(2, 1, 2, 0), Faces: []Polygon{
				{{0, 0}, {0, 1}, {1, 1}, {2, 0}, {2, -1}, {1, -1}},
			}},
		},
	}},
}
