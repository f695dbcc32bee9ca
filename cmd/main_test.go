package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/irfansharif/tiling/internal/gen"
)

// invoke runs the command with args and returns its exit status and output.
func invoke(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// The golden files were produced by the reference generator and must match
// byte for byte.
func TestGolden(t *testing.T) {
	dir := t.TempDir()
	for _, name := range gen.Names() {
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(dir, name+".obj")
			code, stdout, stderr := invoke(t, name, "12", "12", out)
			if code != 0 || stdout != "" || stderr != "" {
				t.Fatalf("exit %d, stdout %q, stderr %q", code, stdout, stderr)
			}

			got := readFile(t, out)
			want := readFile(t, filepath.Join("testdata", name+"-12x12.obj"))
			if got != want {
				t.Errorf("%s differs from testdata/%s-12x12.obj", out, name)
			}
		})
	}
}

func TestUsage(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"square"},
		{"square", "3", "3"},
		{"square", "3", "3", "out.obj", "extra"},
		{"-bogus", "square", "3", "3", "out.obj"},
	} {
		code, _, stderr := invoke(t, args...)
		if code != 1 {
			t.Errorf("%q: exit %d, want 1", args, code)
		}
		if !strings.Contains(stderr, "usage: tiling pattern rows columns out\n") {
			t.Errorf("%q: stderr %q has no usage line", args, stderr)
		}
	}
}

func TestHelp(t *testing.T) {
	for _, arg := range []string{"-help", "-h", "--help"} {
		code, stdout, stderr := invoke(t, arg)
		if code != 1 {
			t.Errorf("%s: exit %d, want 1", arg, code)
		}
		if stdout != "" {
			t.Errorf("%s: wrote %q to stdout", arg, stdout)
		}
		if !strings.Contains(stderr, "DESCRIPTION") || !strings.Contains(stderr, "semi8") {
			t.Errorf("%s: stderr %q is not the help text", arg, stderr)
		}
	}
}

func TestInvalidSize(t *testing.T) {
	dir := t.TempDir()
	for _, tc := range []struct {
		rows, cols string
		want       string
	}{
		{"0", "10", "Error: invalid size ( 0 x 10 )\n"},
		{"10", "-3", "Error: invalid size ( 10 x -3 )\n"},
		{"abc", "10", "Error: invalid size ( 0 x 10 )\n"},
	} {
		out := filepath.Join(dir, "out.obj")
		code, _, stderr := invoke(t, "square", tc.rows, tc.cols, out)
		if code != 1 {
			t.Errorf("%s x %s: exit %d, want 1", tc.rows, tc.cols, code)
		}
		if stderr != tc.want {
			t.Errorf("%s x %s: stderr %q, want %q", tc.rows, tc.cols, stderr, tc.want)
		}
		if _, err := os.Stat(out); !os.IsNotExist(err) {
			t.Errorf("%s x %s: output file was created", tc.rows, tc.cols)
		}
	}
}

func TestUnknownPattern(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.obj")
	code, _, stderr := invoke(t, "hex", "10", "10", out)
	if code != 0 {
		t.Errorf("exit %d, want 0", code)
	}
	if stderr != "Error: unknown pattern.\n" {
		t.Errorf("stderr %q", stderr)
	}
	// The file is opened before the pattern is checked, and left empty.
	if got := readFile(t, out); got != "" {
		t.Errorf("output file holds %q, want it empty", got)
	}
}

func TestUnwritableOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "out.obj")
	code, _, stderr := invoke(t, "square", "3", "3", out)
	if code != 1 {
		t.Errorf("exit %d, want 1", code)
	}
	if want := "Error: couldn't open file " + out + " for output.\n"; stderr != want {
		t.Errorf("stderr %q, want %q", stderr, want)
	}
}

func TestLenientSizes(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.obj")
	if code, _, stderr := invoke(t, "square", " 12rows", "12.9", out); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if got, want := readFile(t, out), readFile(t, "testdata/square-12x12.obj"); got != want {
		t.Error("sizes with trailing junk should parse like their leading digits")
	}
}

func TestAtoi(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want int
	}{
		{"12", 12},
		{"+7", 7},
		{"-3", -3},
		{"  42", 42},
		{"\t5x", 5},
		{"3.5", 3},
		{"", 0},
		{"x1", 0},
		{"-", 0},
		{"99999999999999999999999", 0},
	} {
		if got := atoi(tc.in); got != tc.want {
			t.Errorf("atoi(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestList(t *testing.T) {
	code, stdout, _ := invoke(t, "-list")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	names := gen.Names()
	if len(lines) != len(names) {
		t.Fatalf("got %d lines, want %d", len(lines), len(names))
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, names[i]+"\t") {
			t.Errorf("line %d = %q, want it to start with %q", i+1, line, names[i])
		}
	}
	if lines[4] != "semi2\t4.8.8" {
		t.Errorf("semi2 line = %q", lines[4])
	}
}

func TestTriangulate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "semi6.obj")
	if code, _, stderr := invoke(t, "-triangulate", "semi6", "12", "12", out); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}

	var vertices, faces int
	s := bufio.NewScanner(strings.NewReader(readFile(t, out)))
	for s.Scan() {
		fields := strings.Fields(s.Text())
		switch fields[0] {
		case "v":
			vertices++
		case "f":
			faces++
			if len(fields) != 4 {
				t.Fatalf("face %q is not a triangle", s.Text())
			}
		}
	}
	if vertices != 144 {
		t.Errorf("got %d vertices, want 144", vertices)
	}
	// 15 triangles plus 5 dodecagons of 10 triangles each.
	if faces != 65 {
		t.Errorf("got %d faces, want 65", faces)
	}
}

func TestPreview(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "semi7.obj")
	preview := filepath.Join(dir, "semi7.svg")
	if code, _, stderr := invoke(t, "-preview", preview, "semi7", "12", "12", out); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if got, want := readFile(t, out), readFile(t, "testdata/semi7-12x12.obj"); got != want {
		t.Error("previewing changed the OBJ output")
	}
	// 16 triangles, 20 squares and 8 hexagons.
	if got := strings.Count(readFile(t, preview), "<polygon"); got != 44 {
		t.Errorf("preview has %d polygons, want 44", got)
	}
}

func TestBadPreview(t *testing.T) {
	dir := t.TempDir()
	code, _, stderr := invoke(t, "-preview", filepath.Join(dir, "x.gif"), "square", "3", "3", filepath.Join(dir, "x.obj"))
	if code != 1 {
		t.Errorf("exit %d, want 1", code)
	}
	if !strings.HasPrefix(stderr, "Error: preview:") {
		t.Errorf("stderr %q", stderr)
	}
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "jobs.yaml")
	yamlContent := "jobs:\n" +
		"  - {pattern: semi3, rows: 12, cols: 12, out: " + filepath.Join(dir, "a.obj") + "}\n" +
		"  - {pattern: hexagon, rows: 12, cols: 12, out: " + filepath.Join(dir, "b.obj") + "}\n"
	if err := os.WriteFile(manifest, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write yaml: %v", err)
	}

	if code, _, stderr := invoke(t, "-batch", manifest); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	for out, golden := range map[string]string{
		"a.obj": "testdata/semi3-12x12.obj",
		"b.obj": "testdata/hexagon-12x12.obj",
	} {
		if readFile(t, filepath.Join(dir, out)) != readFile(t, golden) {
			t.Errorf("%s differs from %s", out, golden)
		}
	}
}

func TestBatchErrors(t *testing.T) {
	dir := t.TempDir()
	if code, _, stderr := invoke(t, "-batch", filepath.Join(dir, "missing.yaml")); code != 1 || !strings.HasPrefix(stderr, "Error: ") {
		t.Errorf("missing manifest: exit %d, stderr %q", code, stderr)
	}
	if code, _, _ := invoke(t, "-batch", "jobs.yaml", "square"); code != 1 {
		t.Errorf("positional arguments with -batch: exit %d, want 1", code)
	}
}
