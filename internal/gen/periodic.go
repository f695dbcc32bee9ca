package gen

// The patterns below place vertices on a coarse lattice indexed by col/2 (or
// col/4) and row/2 (or row/4), then nudge each vertex by a per-residue shift
// looked up from a table.

// shift is an additive correction applied to a placed vertex.
type shift struct {
	dx, dy float32
}

// semi5: 3.3.4.3.4 (snub square). Squares are tilted by sliding every other
// column pair up half a unit and every other row pair left.
var semi5 = &Pattern{
	Name:   "semi5",
	Config: "3.3.4.3.4",
	Place: func(row, col int) (float32, float32) {
		x := float32(f32(col/2)*semiRise) + f32(col%2) - float32(f32(row/2)*0.5)
		y := float32(f32(row/2)*semiRise) + f32(row%2) + float32(f32(col/2)*0.5)
		return x, y
	},
	Passes: []Pass{{
		Rows: Span{0, 1},
		Cols: Span{1, 1},
		Rules: []Rule{
			{When: at(2, 0, 2, 0), Faces: []Polygon{
				unitQuad,
				{{0, 0}, {1, 0}, {1, -1}},
			}},
			{When: at(2, 1, 2, 0), Faces: []Polygon{lowerTri}},
			{When: at(2, 0, 2, 1), Faces: []Polygon{
				{{0, 0}, {0, 1}, {1, 1}},
				{{0, 0}, {1, 1}, {1, 0}},
			}},
			{When: at(2, 1, 2, 1), Faces: []Polygon{unitQuad}},
		},
	}},
}

// semi6: 3.12.12 (truncated hexagonal). Rows come in bands of four; the band
// residue selects the vertex's offset within the band.
var semi6 = &Pattern{
	Name:   "semi6",
	Config: "3.12.12",
	Place: func(row, col int) (float32, float32) {
		x := float32(f32(col/2)*semi6Stride) + f32(col%2) + float32(f32(row/4)*semiRise)
		y := float32(f32(row/4) * semi6Rise)
		s := semi6Band[row%4]
		return x + s.dx, y + s.dy
	},
	Passes: []Pass{{
		Rows: Span{1, 4},
		Cols: Span{0, 3},
		Rules: []Rule{
			{When: at(2, 0, 4, 0), Faces: []Polygon{
				{{0, 1}, {-1, 2}, {-1, 3}, {0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 1}, {4, 0}, {3, 1}, {2, 0}, {1, 0}},
				lowerTri,
			}},
			{When: at(2, 0, 4, 2), Faces: []Polygon{
				{{0, 0}, {1, 1}, {1, 0}},
			}},
		},
	}},
}

var (
	semi6Stride = 2 + sqrt3
	semi6Rise   = 1.5 + sqrt3

	semi6Band = [4]shift{
		{0, 0},
		{0.5, halfSqrt3},
		{0.5, 1 + halfSqrt3},
		{0, 1 + sqrt3},
	}
)

// semi7: 3.4.6.4 (rhombitrihexagonal).
var semi7 = &Pattern{
	Name:   "semi7",
	Config: "3.4.6.4",
	Place: func(row, col int) (float32, float32) {
		x := float32(f32(col/2)*semi7Stride) + float32(f32(col%2)*sqrt3) + float32(f32(row/4)*semi7Slant)
		y := float32(f32(row/4) * stagger4Rise)
		s := stagger4[row%4]
		return x + s.dx, y + s.dy
	},
	Passes: []Pass{{
		Rows: Span{2, 3},
		Cols: Span{2, 2},
		Rules: []Rule{
			{When: at(2, 0, 4, 0), Faces: []Polygon{
				tallHex,
				{{0, 0}, {-2, 2}, {-1, 2}, {1, 1}},
				{{1, 1}, {-1, 2}, {1, 2}},
			}},
			{When: at(2, 1, 4, 1), Faces: []Polygon{unitQuad}},
			{When: at(2, 1, 4, 2), Faces: []Polygon{
				{{0, 0}, {2, -1}, {3, -1}, {1, -1}},
			}},
			{When: at(2, 0, 4, 2), Faces: []Polygon{
				{{0, -1}, {0, 0}, {2, -2}},
			}},
		},
	}},
}

var (
	semi7Stride  = 1 + sqrt3
	semi7Slant   = 0.5 + halfSqrt3
	stagger4Rise = 1.5 + halfSqrt3

	// stagger4 is shared by semi7 and semi8: each band of four rows traces
	// the left side of a hexagon.
	stagger4 = [4]shift{
		{halfSqrt3, -0.5},
		{0, 0},
		{0, 1},
		{halfSqrt3, 1.5},
	}
)

// semi8: 4.6.12 (truncated trihexagonal). Both axes use bands of four.
var semi8 = &Pattern{
	Name:   "semi8",
	Config: "4.6.12",
	Place: func(row, col int) (float32, float32) {
		x := float32(f32(col/4)*semi8Stride) + float32(f32(row/4)*semi8Slant)
		y := float32(f32(row/4) * stagger4Rise)
		s := stagger4[row%4]
		x, y = x+s.dx, y+s.dy
		return x + semi8Column[col%4], y
	},
	Passes: []Pass{{
		Rows: Span{3, 4},
		Cols: Span{3, 3},
		Rules: []Rule{
			{When: at(2, 0, 4, 0), Faces: []Polygon{tallHex}},
			{When: at(4, 1, 4, 1), Faces: []Polygon{unitQuad}},
			{When: at(4, 3, 4, 2), Faces: []Polygon{
				{{0, 0}, {2, -3}, {3, -3}, {1, -1}},
			}},
			{When: at(4, 0, 4, 2), Faces: []Polygon{
				{{1, 0}, {3, -1}, {2, -2}, {0, 0}},
			}},
			{When: at(4, 3, 4, 1), Faces: []Polygon{
				{{0, 0}, {-2, 1}, {-3, 2}, {-3, 3}, {-2, 3}, {0, 1}, {1, 1}, {3, -1}, {4, -1}, {4, -2}, {3, -3}, {1, 0}},
			}},
		},
	}},
}

var (
	semi8Stride = 3 + float32(3*sqrt3)
	semi8Slant  = 1.5 + float32(1.5*sqrt3)

	semi8Column = [4]float32{0, sqrt3, 1 + sqrt3, 1 + float32(2*sqrt3)}
)
