package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/irfansharif/tiling/internal/gen"
)

func generator(t *testing.T, name string) *gen.Generator {
	t.Helper()
	p, ok := gen.Lookup(name)
	if !ok {
		t.Fatalf("no pattern %q", name)
	}
	return gen.NewGenerator(p, 12, 12)
}

func smallOptions() Options {
	opts := DefaultOptions()
	opts.Width, opts.Height = 128, 96
	return opts
}

func TestPNG(t *testing.T) {
	g := generator(t, "semi2")
	var buf bytes.Buffer
	r, err := NewPNG(&buf, g.Locate, g.Grid.Len(), smallOptions())
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Generate(r); err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding preview: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 96 {
		t.Errorf("image is %dx%d, want 128x96", b.Dx(), b.Dy())
	}
	// Octagon interiors are filled with the palette's 8-gon color.
	fr, fg, fb, _ := r.palette.Fill(8).RGBA()
	var filled int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if pr, pg, pb, _ := img.At(x, y).RGBA(); pr == fr && pg == fg && pb == fb {
				filled++
			}
		}
	}
	if filled == 0 {
		t.Error("no pixel carries the octagon fill")
	}
}

func TestSVG(t *testing.T) {
	g := generator(t, "semi8")
	var buf bytes.Buffer
	opts := smallOptions()
	opts.Title = "semi8 (4.6.12)"
	r, err := NewSVG(&buf, g.Locate, g.Grid.Len(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Generate(r); err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	// semi8 at 12x12 has 5 squares, 3 hexagons and 2 dodecagons.
	if got := strings.Count(out, "<polygon"); got != 10 {
		t.Errorf("got %d polygons, want 10", got)
	}
	for _, want := range []string{`width="128"`, `height="96"`, "<title>semi8 (4.6.12)</title>", "</svg>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q", want)
		}
	}
}

func TestFrameFitsCanvas(t *testing.T) {
	for _, name := range gen.Names() {
		g := generator(t, name)
		opts := smallOptions()
		fr, err := newFrame(g.Locate, g.Grid.Len(), opts)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < g.Grid.Len(); i++ {
			p := fr.project([]int{i + 1})[0]
			if p.X < opts.Margin-1e-6 || p.X > float64(opts.Width)-opts.Margin+1e-6 ||
				p.Y < opts.Margin-1e-6 || p.Y > float64(opts.Height)-opts.Margin+1e-6 {
				t.Errorf("%s: vertex %d lands at %v, outside the canvas margin", name, i+1, p)
			}
		}
	}
}

func TestFrameFlipsY(t *testing.T) {
	// Row 0 is at the bottom of the mesh and must end up at the bottom of
	// the image.
	g := generator(t, "square")
	fr, err := newFrame(g.Locate, g.Grid.Len(), smallOptions())
	if err != nil {
		t.Fatal(err)
	}
	bottom := fr.project([]int{1})[0]
	top := fr.project([]int{g.Grid.Len()})[0]
	if bottom.Y <= top.Y {
		t.Errorf("row 0 at y=%v, last row at y=%v", bottom.Y, top.Y)
	}
}

func TestNewFrameErrors(t *testing.T) {
	g := generator(t, "square")
	if _, err := newFrame(g.Locate, 0, smallOptions()); err == nil {
		t.Error("expected an error with no vertices")
	}
	opts := smallOptions()
	opts.Width = 0
	if _, err := newFrame(g.Locate, g.Grid.Len(), opts); err == nil {
		t.Error("expected an error for a zero-width canvas")
	}
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	g := generator(t, "hexagon")

	for _, name := range []string{"preview.png", "preview.SVG"} {
		path := filepath.Join(dir, name)
		r, err := Create(path, g.Locate, g.Grid.Len(), smallOptions())
		if err != nil {
			t.Fatalf("Create(%s): %v", name, err)
		}
		if err := g.Generate(r); err != nil {
			t.Fatal(err)
		}
		if err := r.Close(); err != nil {
			t.Fatal(err)
		}
		if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
			t.Errorf("%s was not written: %v", name, err)
		}
	}

	bad := filepath.Join(dir, "preview.jpg")
	if _, err := Create(bad, g.Locate, g.Grid.Len(), smallOptions()); err == nil {
		t.Error("expected an error for a .jpg preview")
	}
	if _, err := os.Stat(bad); !os.IsNotExist(err) {
		t.Error("unsupported preview format should not create a file")
	}
}
