package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/irfansharif/tiling/internal/config"
	"github.com/irfansharif/tiling/internal/gen"
	"github.com/irfansharif/tiling/internal/mesh"
	"github.com/irfansharif/tiling/internal/render"
)

// runner generates jobs, reporting failures on stderr.
type runner struct {
	stderr   io.Writer
	progress bool
}

// run generates one job and returns the process exit status for it.
//
// The output file is created before the pattern is resolved, so an unknown
// pattern leaves an empty file behind. That case is reported but exits 0.
func (r runner) run(job config.Job) int {
	start := time.Now()

	f, err := os.Create(job.Out)
	if err != nil {
		fmt.Fprintf(r.stderr, "Error: couldn't open file %s for output.\n", job.Out)
		debugLogger.Printf("create %s: %v", job.Out, err)
		return 1
	}

	stats, err := r.generate(job, f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing %s: %w", job.Out, cerr)
	}
	switch {
	case errors.Is(err, gen.ErrUnknownPattern):
		fmt.Fprintln(r.stderr, "Error: unknown pattern.")
		return 0
	case err != nil:
		fmt.Fprintf(r.stderr, "Error: %v\n", err)
		return 1
	}

	debugLogger.Printf("%s %dx%d -> %s: %s in %s",
		job.Pattern, job.Rows, job.Cols, job.Out, stats, time.Since(start))
	return 0
}

func (r runner) generate(job config.Job, out io.Writer) (*mesh.Stats, error) {
	p, ok := gen.Lookup(job.Pattern)
	if !ok {
		return nil, fmt.Errorf("%w: %q", gen.ErrUnknownPattern, job.Pattern)
	}
	g := gen.NewGenerator(p, job.Rows, job.Cols)

	w := mesh.NewWriter(out)
	stats := mesh.NewStats(w)
	var sink gen.Sink = stats

	var preview render.Renderer
	if job.Preview != "" {
		opts := render.DefaultOptions()
		opts.Title = fmt.Sprintf("%s (%s)", p.Name, p.Config)
		var err error
		preview, err = render.Create(job.Preview, g.Locate, g.Grid.Len(), opts)
		if err != nil {
			return nil, fmt.Errorf("preview: %w", err)
		}
		sink = mesh.Tee{stats, preview}
	}
	if job.Triangulate {
		sink = mesh.NewTriangulator(sink, g.Locate)
	}

	if bar := r.progressBar(p.Name, g.Steps()); bar != nil {
		g.Progress = bar
		defer bar.Finish()
	}

	err := g.Generate(sink)
	if err == nil {
		err = w.Flush()
	}
	if preview != nil {
		if cerr := preview.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("preview: %w", cerr)
		}
	}
	return stats, err
}

// progressBar returns nil unless progress was requested and stderr is a
// terminal; a bar is noise in a pipe or log file.
func (r runner) progressBar(name string, steps int) *progressbar.ProgressBar {
	if !r.progress {
		return nil
	}
	f, ok := r.stderr.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	return progressbar.NewOptions(steps,
		progressbar.OptionSetWriter(f),
		progressbar.OptionSetDescription(name),
		progressbar.OptionThrottle(50*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
