package mesh

import (
	"fmt"

	"github.com/rclancey/earcut"

	"github.com/irfansharif/tiling/internal/geom"
)

// Locator returns the planar position of a vertex by 0-based index.
type Locator func(index int) geom.Point

// Triangulator splits every face with more than three corners into triangles
// using the earcut algorithm, and forwards the triangles to the next sink.
// Vertex positions come from the Locator rather than from the vertex records,
// so nothing is buffered.
type Triangulator struct {
	next   Sink
	locate Locator

	coords []float64
	tri    [3]int
}

func NewTriangulator(next Sink, locate Locator) *Triangulator {
	return &Triangulator{next: next, locate: locate}
}

func (t *Triangulator) Vertex(x, y, z float32) error {
	return t.next.Vertex(x, y, z)
}

func (t *Triangulator) Face(refs ...int) error {
	if len(refs) < 3 {
		return fmt.Errorf("degenerate face (%d vertices < 3)", len(refs))
	}
	if len(refs) == 3 {
		return t.next.Face(refs...)
	}

	// Flat coordinate array required by earcut: [x0, y0, x1, y1, ..., xn, yn].
	t.coords = t.coords[:0]
	for _, r := range refs {
		p := t.locate(r - 1)
		t.coords = append(t.coords, p.X, p.Y)
	}

	indices, err := earcut.Earcut(t.coords, nil /* holeIndices */, 2 /* dim */)
	if err != nil {
		return fmt.Errorf("triangulating %d-vertex face: %w", len(refs), err)
	}
	if len(indices) == 0 || len(indices)%3 != 0 {
		return fmt.Errorf("triangulating %d-vertex face: got %d indices", len(refs), len(indices))
	}

	// Earcut indexes into the face's corner list; map back to vertex refs.
	for i := 0; i < len(indices); i += 3 {
		t.tri = [3]int{refs[indices[i]], refs[indices[i+1]], refs[indices[i+2]]}
		if err := t.next.Face(t.tri[:]...); err != nil {
			return err
		}
	}
	return nil
}
