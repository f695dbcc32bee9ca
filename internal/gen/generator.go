// Package gen implements the procedural generation of regular and
// semi-regular tilings of the plane.
//
// Every pattern works over an implicit rows×cols grid in two stages:
//   - A placement function maps each grid cell to a planar position. Cells are
//     visited row-major, which fixes the vertex numbering (row*cols + col).
//   - Face rules stitch grid cells into polygons. For each cell inside a
//     pattern-specific margin, the cell's row/column residues select which
//     polygons (if any) it contributes, each listed as fixed (row, col)
//     offsets from the cell.
//
// Output is streamed to a Sink: all vertices first, then all faces. Nothing is
// retained between records.
package gen

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/irfansharif/tiling/internal/geom"
)

// ErrUnknownPattern is returned when a pattern name is not registered.
var ErrUnknownPattern = errors.New("unknown pattern")

// Sink receives the generated mesh. Face refs are 1-based vertex references;
// the slice is reused between calls and must not be retained.
type Sink interface {
	Vertex(x, y, z float32) error
	Face(refs ...int) error
}

// Progress is advanced once per grid row visited by either stage.
type Progress interface {
	Add(n int) error
}

// Offset addresses a grid cell relative to the cell being visited.
type Offset struct {
	Row, Col int
}

// Polygon lists a face's corners in output order. The order is the pattern's
// own and is not normalized to any winding.
type Polygon []Offset

// Rule emits its polygons, in order, for every cell matching When.
type Rule struct {
	When  func(row, col int) bool
	Faces []Polygon
}

// Span is the half-open range [Lo, n-Trim) of a grid axis of length n.
type Span struct {
	Lo, Trim int
}

func (s Span) bounds(n int) (lo, hi int) { return s.Lo, n - s.Trim }

// Pass visits every cell of Rows×Cols and applies Rules to each.
type Pass struct {
	Rows, Cols Span
	Rules      []Rule
}

// Pattern is a named tiling.
type Pattern struct {
	Name   string
	Config string // vertex configuration, e.g. "4.8.8"
	Place  func(row, col int) (x, y float32)
	Passes []Pass
}

// Generator runs one pattern over one grid.
type Generator struct {
	Pattern  *Pattern
	Grid     Grid
	Progress Progress // optional
}

func NewGenerator(p *Pattern, rows, cols int) *Generator {
	return &Generator{Pattern: p, Grid: Grid{Rows: rows, Cols: cols}}
}

// Generate resolves name and streams the tiling into sink. An unknown name
// returns ErrUnknownPattern before anything is written.
func Generate(name string, rows, cols int, sink Sink) error {
	p, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return NewGenerator(p, rows, cols).Generate(sink)
}

// Generate writes every vertex of the grid and then every face.
func (g *Generator) Generate(sink Sink) error {
	if err := g.writeVertices(sink); err != nil {
		return fmt.Errorf("%s: writing vertices: %w", g.Pattern.Name, err)
	}
	if err := g.writeFaces(sink); err != nil {
		return fmt.Errorf("%s: writing faces: %w", g.Pattern.Name, err)
	}
	return nil
}

// Steps returns how many times Progress will be advanced by Generate.
func (g *Generator) Steps() int {
	steps := g.Grid.Rows
	for _, pass := range g.Pattern.Passes {
		lo, hi := pass.Rows.bounds(g.Grid.Rows)
		steps += max(0, hi-lo)
	}
	return steps
}

// Locate returns the planar position of the vertex with the given 0-based
// index.
func (g *Generator) Locate(index int) geom.Point {
	x, y := g.Pattern.Place(g.Grid.Cell(index))
	return geom.MakePoint(float64(x), float64(y))
}

func (g *Generator) writeVertices(sink Sink) error {
	for row := 0; row < g.Grid.Rows; row++ {
		for col := 0; col < g.Grid.Cols; col++ {
			x, y := g.Pattern.Place(row, col)
			if err := sink.Vertex(x, y, 0); err != nil {
				return err
			}
		}
		g.step()
	}
	return nil
}

func (g *Generator) writeFaces(sink Sink) error {
	refs := make([]int, 0, 12)
	for _, pass := range g.Pattern.Passes {
		rlo, rhi := pass.Rows.bounds(g.Grid.Rows)
		clo, chi := pass.Cols.bounds(g.Grid.Cols)
		for row := rlo; row < rhi; row++ {
			for col := clo; col < chi; col++ {
				for _, rule := range pass.Rules {
					if !rule.When(row, col) {
						continue
					}
					for _, face := range rule.Faces {
						refs = refs[:0]
						for _, o := range face {
							refs = append(refs, g.Grid.Ref(row+o.Row, col+o.Col))
						}
						if err := sink.Face(refs...); err != nil {
							return err
						}
					}
				}
			}
			g.step()
		}
	}
	return nil
}

func (g *Generator) step() {
	if g.Progress == nil {
		return
	}
	// Progress is cosmetic; a failed redraw doesn't fail the run.
	_ = g.Progress.Add(1)
}

// patterns is the registry, in the order they're listed to users.
var patterns = []*Pattern{
	square, triangle, hexagon,
	semi1, semi2, semi3, semi4,
	semi5, semi6, semi7, semi8,
}

// Lookup returns the pattern registered under name. Matching is exact and
// case-sensitive.
func Lookup(name string) (*Pattern, bool) {
	i := slices.IndexFunc(patterns, func(p *Pattern) bool { return p.Name == name })
	if i < 0 {
		return nil, false
	}
	return patterns[i], true
}

// Patterns returns every registered pattern.
func Patterns() []*Pattern {
	return slices.Clone(patterns)
}

// Names returns the registered pattern names.
func Names() []string {
	names := make([]string, len(patterns))
	for i, p := range patterns {
		names[i] = p.Name
	}
	return names
}

// always matches every cell.
func always(int, int) bool { return true }

// at matches cells with col ≡ colRes (mod colMod) and row ≡ rowRes (mod rowMod).
func at(colMod, colRes, rowMod, rowRes int) func(row, col int) bool {
	return func(row, col int) bool {
		return col%colMod == colRes && row%rowMod == rowRes
	}
}

// Shared polygons.
var (
	unitQuad = Polygon{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	lowerTri = Polygon{{0, 0}, {0, 1}, {1, 0}}
	upperTri = Polygon{{0, 1}, {1, 1}, {1, 0}}
	tallHex  = Polygon{{0, 0}, {1, 1}, {2, 1}, {3, 0}, {2, 0}, {1, 0}}
)
