package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/irfansharif/tiling/internal/config"
	"github.com/irfansharif/tiling/internal/gen"
)

const program = "tiling"

const logFlags = log.Ltime | log.Lshortfile

var debugLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	log.SetFlags(logFlags)

	if config.Debug() {
		debugLogger = log.New(os.Stderr, "[tiling] ", log.Ltime|log.Lmsgprefix)
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		preview     = fs.String("preview", "", "also render the tiling to this .png or .svg file")
		triangulate = fs.Bool("triangulate", false, "write every face as triangles")
		progress    = fs.Bool("progress", false, "show a progress bar when stderr is a terminal")
		batch       = fs.String("batch", "", "run the jobs listed in this YAML manifest")
		list        = fs.Bool("list", false, "list the known patterns")
	)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printHelp(stderr)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			printUsage(stderr)
		}
		return 1
	}

	if *list {
		for _, p := range gen.Patterns() {
			fmt.Fprintf(stdout, "%s\t%s\n", p.Name, p.Config)
		}
		return 0
	}

	r := runner{stderr: stderr, progress: *progress}

	if *batch != "" {
		if fs.NArg() != 0 {
			printUsage(stderr)
			return 1
		}
		m, err := config.Load(*batch)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		for _, job := range m.Jobs {
			if code := r.run(job); code != 0 {
				return code
			}
		}
		return 0
	}

	if fs.NArg() != 4 {
		printUsage(stderr)
		return 1
	}

	pos := fs.Args()
	rows, cols := atoi(pos[1]), atoi(pos[2])
	if rows <= 0 || cols <= 0 {
		fmt.Fprintf(stderr, "Error: invalid size ( %d x %d )\n", rows, cols)
		return 1
	}

	return r.run(config.Job{
		Pattern:     pos[0],
		Rows:        rows,
		Cols:        cols,
		Out:         pos[3],
		Preview:     *preview,
		Triangulate: *triangulate,
	})
}

// atoi parses the leading integer of s, ignoring leading whitespace and
// anything after the digits. Input without a leading integer parses as 0.
func atoi(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
