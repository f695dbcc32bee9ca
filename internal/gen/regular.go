package gen

import "math"

// Single-precision constants shared by the placement laws. They're derived in
// float32 arithmetic so that every coordinate matches a float32 evaluation of
// the same expression, operation for operation.
var (
	sqrt2 = float32(math.Sqrt(2))
	sqrt3 = float32(math.Sqrt(3))

	halfSqrt2 = sqrt2 / 2
	halfSqrt3 = sqrt3 / 2
)

func f32(v int) float32 { return float32(v) }

// square: 4.4.4.4.
var square = &Pattern{
	Name:   "square",
	Config: "4.4.4.4",
	Place: func(row, col int) (float32, float32) {
		return f32(col), f32(row)
	},
	Passes: []Pass{{
		Rows:  Span{0, 1},
		Cols:  Span{0, 1},
		Rules: []Rule{{When: always, Faces: []Polygon{unitQuad}}},
	}},
}

// placeSheared puts every row half a unit further right than the last, giving
// the triangular lattice.
func placeSheared(row, col int) (float32, float32) {
	x := f32(col) + float32(0.5*f32(row))
	y := float32(f32(row)*sqrt3) / 2
	return x, y
}

// triangle: 3.3.3.3.3.3.
var triangle = &Pattern{
	Name:   "triangle",
	Config: "3.3.3.3.3.3",
	Place:  placeSheared,
	Passes: []Pass{{
		Rows:  Span{0, 1},
		Cols:  Span{0, 1},
		Rules: []Rule{{When: always, Faces: []Polygon{lowerTri, upperTri}}},
	}},
}

// hexagon: 6.6.6. Each row of vertices zig-zags; a hexagon spans three rows
// and is anchored on cells where row and column parity agree.
var hexagon = &Pattern{
	Name:   "hexagon",
	Config: "6.6.6",
	Place: func(row, col int) (float32, float32) {
		x := float32(f32((col+row%2)/2)*3) + f32((col+row)%2) - float32(f32(row%2)*1.5)
		y := float32(f32(row)*sqrt3) / 2
		return x, y
	},
	Passes: []Pass{{
		Rows: Span{0, 2},
		Cols: Span{0, 1},
		Rules: []Rule{{
			When: func(row, col int) bool { return row%2 == col%2 },
			Faces: []Polygon{
				{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 0}, {1, 0}},
			},
		}},
	}},
}
