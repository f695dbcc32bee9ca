package mesh

import (
	"fmt"
	"sort"
	"strings"
)

// Sink is the record consumer shared by every adapter in this package. It
// matches gen.Sink.
type Sink interface {
	Vertex(x, y, z float32) error
	Face(refs ...int) error
}

// Stats tallies what passes through it before forwarding to the next sink.
type Stats struct {
	next Sink

	Vertices int
	Faces    int
	ByArity  map[int]int // face count keyed by vertex count
	MinRef   int         // smallest face reference seen, 0 if none
	MaxRef   int         // largest face reference seen, 0 if none
}

// NewStats returns a Stats forwarding to next. A nil next only counts.
func NewStats(next Sink) *Stats {
	return &Stats{next: next, ByArity: make(map[int]int)}
}

func (s *Stats) Vertex(x, y, z float32) error {
	s.Vertices++
	if s.next == nil {
		return nil
	}
	return s.next.Vertex(x, y, z)
}

func (s *Stats) Face(refs ...int) error {
	s.Faces++
	s.ByArity[len(refs)]++
	for _, r := range refs {
		if s.MinRef == 0 || r < s.MinRef {
			s.MinRef = r
		}
		if r > s.MaxRef {
			s.MaxRef = r
		}
	}
	if s.next == nil {
		return nil
	}
	return s.next.Face(refs...)
}

// String summarizes the tallies, e.g. "36 vertices, 12 faces (3:4 4:8)".
func (s *Stats) String() string {
	arities := make([]int, 0, len(s.ByArity))
	for k := range s.ByArity {
		arities = append(arities, k)
	}
	sort.Ints(arities)

	var b strings.Builder
	fmt.Fprintf(&b, "%d vertices, %d faces", s.Vertices, s.Faces)
	if len(arities) > 0 {
		b.WriteString(" (")
		for i, k := range arities {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d:%d", k, s.ByArity[k])
		}
		b.WriteByte(')')
	}
	return b.String()
}

// Tee forwards every record to each sink in turn, stopping at the first error.
type Tee []Sink

func (t Tee) Vertex(x, y, z float32) error {
	for _, s := range t {
		if err := s.Vertex(x, y, z); err != nil {
			return err
		}
	}
	return nil
}

func (t Tee) Face(refs ...int) error {
	for _, s := range t {
		if err := s.Face(refs...); err != nil {
			return err
		}
	}
	return nil
}
