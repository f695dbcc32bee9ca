package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/irfansharif/tiling/internal/mesh"
	"github.com/irfansharif/tiling/internal/palette"
)

const faceStyle = "fill:%s; stroke:%s; stroke-width:%g; stroke-linejoin:round"

// SVG writes one <polygon> per face as it arrives.
type SVG struct {
	*frame
	canvas *svg.SVG
	xs, ys []int
}

func NewSVG(w io.Writer, locate mesh.Locator, n int, opts Options) (*SVG, error) {
	fr, err := newFrame(locate, n, opts)
	if err != nil {
		return nil, err
	}

	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:"+palette.Hex(fr.palette.Background))
	return &SVG{frame: fr, canvas: canvas}, nil
}

func (r *SVG) Vertex(x, y, z float32) error { return nil }

func (r *SVG) Face(refs ...int) error {
	corners := r.project(refs)
	r.xs, r.ys = r.xs[:0], r.ys[:0]
	for _, p := range corners {
		r.xs = append(r.xs, int(math.Round(p.X)))
		r.ys = append(r.ys, int(math.Round(p.Y)))
	}
	r.canvas.Polygon(r.xs, r.ys, fmt.Sprintf(faceStyle,
		palette.Hex(r.palette.Fill(len(refs))),
		palette.Hex(r.palette.Stroke),
		r.opts.LineWidth,
	))
	return nil
}

// Close terminates the document. It does not close the underlying writer.
func (r *SVG) Close() error {
	r.canvas.End()
	return nil
}
