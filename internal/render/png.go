package render

import (
	"image/png"
	"io"

	"github.com/fogleman/gg"

	"github.com/irfansharif/tiling/internal/mesh"
)

// PNG rasterizes faces with gg and encodes the image on Close.
type PNG struct {
	*frame
	ctx *gg.Context
	w   io.Writer
}

func NewPNG(w io.Writer, locate mesh.Locator, n int, opts Options) (*PNG, error) {
	fr, err := newFrame(locate, n, opts)
	if err != nil {
		return nil, err
	}

	ctx := gg.NewContext(opts.Width, opts.Height)
	ctx.SetColor(fr.palette.Background)
	ctx.Clear()
	ctx.SetLineWidth(opts.LineWidth)
	return &PNG{frame: fr, ctx: ctx, w: w}, nil
}

func (r *PNG) Vertex(x, y, z float32) error { return nil }

func (r *PNG) Face(refs ...int) error {
	corners := r.project(refs)
	if len(corners) == 0 {
		return nil
	}

	r.ctx.MoveTo(corners[0].X, corners[0].Y)
	for _, p := range corners[1:] {
		r.ctx.LineTo(p.X, p.Y)
	}
	r.ctx.ClosePath()

	r.ctx.SetColor(r.palette.Fill(len(refs)))
	r.ctx.FillPreserve()
	r.ctx.SetColor(r.palette.Stroke)
	r.ctx.Stroke()
	return nil
}

// Close encodes the image. It does not close the underlying writer.
func (r *PNG) Close() error {
	return png.Encode(r.w, r.ctx.Image())
}
