// Package render draws preview images of generated tilings.
//
// A renderer is a mesh sink: it ignores vertex records and draws each face as
// it arrives. Face corners are positioned through a Locator, so the mesh is
// never buffered. Before drawing, the bounds of every placed vertex are
// measured and mapped onto the canvas (y up, centered, uniformly scaled).
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/irfansharif/tiling/internal/geom"
	"github.com/irfansharif/tiling/internal/mesh"
	"github.com/irfansharif/tiling/internal/palette"
)

// Renderer is a mesh sink that produces an image once closed.
type Renderer interface {
	mesh.Sink
	Close() error
}

// Options configures the canvas.
type Options struct {
	Width, Height int
	Margin        float64 // canvas pixels left blank around the tiling
	LineWidth     float64
	Title         string
}

// DefaultOptions returns a 1024x1024 canvas.
func DefaultOptions() Options {
	return Options{Width: 1024, Height: 1024, Margin: 16, LineWidth: 1}
}

// frame carries what every renderer needs to place a face on its canvas.
type frame struct {
	locate   mesh.Locator
	toCanvas geom.Affine
	palette  palette.Palette
	opts     Options
	corners  []geom.Point
}

// newFrame measures the n vertices reachable through locate and fits them
// onto the canvas described by opts.
func newFrame(locate mesh.Locator, n int, opts Options) (*frame, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}

	var bounds geom.Bounds
	for i := 0; i < n; i++ {
		bounds.Extend(locate(i))
	}
	if bounds.Empty() {
		return nil, fmt.Errorf("nothing to render")
	}

	// Mesh space has +y up; flip before fitting so the image does too.
	box := bounds.Box(1)
	flipped := geom.MakeBox(box.X, -(box.Y + box.H), box.W, box.H)
	canvas := geom.MakeBox(
		opts.Margin, opts.Margin,
		float64(opts.Width)-2*opts.Margin, float64(opts.Height)-2*opts.Margin,
	)
	fit, err := geom.FillBox(flipped, canvas)
	if err != nil {
		return nil, fmt.Errorf("fitting tiling to canvas: %w", err)
	}

	return &frame{
		locate:   locate,
		toCanvas: fit.Mul(geom.FlipY()),
		palette:  palette.Default(),
		opts:     opts,
	}, nil
}

// project returns the canvas positions of a face's corners. The slice is
// reused between calls.
func (f *frame) project(refs []int) []geom.Point {
	f.corners = f.corners[:0]
	for _, r := range refs {
		f.corners = append(f.corners, f.toCanvas.MulPoint(f.locate(r-1)))
	}
	return f.corners
}

// Create opens path and returns a renderer for it, chosen by extension (.png
// or .svg). Closing the renderer closes the file.
func Create(path string, locate mesh.Locator, n int, opts Options) (Renderer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".png" && ext != ".svg" {
		return nil, fmt.Errorf("unsupported preview format %q (want .png or .svg)", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	var r Renderer
	switch ext {
	case ".png":
		r, err = NewPNG(f, locate, n, opts)
	case ".svg":
		r, err = NewSVG(f, locate, n, opts)
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	return &fileRenderer{Renderer: r, f: f}, nil
}

type fileRenderer struct {
	Renderer
	f *os.File
}

func (r *fileRenderer) Close() error {
	err := r.Renderer.Close()
	if cerr := r.f.Close(); err == nil {
		err = cerr
	}
	return err
}
