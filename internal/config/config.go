// Package config loads batch manifests: YAML files listing several tilings to
// generate in one invocation.
//
//	jobs:
//	  - pattern: semi8
//	    rows: 40
//	    cols: 40
//	    out: semi8.obj
//	    preview: semi8.svg
//	  - pattern: square
//	    rows: 10
//	    cols: 10
//	    out: square.obj
//	    triangulate: true
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/irfansharif/tiling/internal/gen"
)

// DebugEnv enables the debug logger when set to "1".
const DebugEnv = "TILING_DEBUG"

// Manifest is a list of jobs, run in order.
type Manifest struct {
	Jobs []Job `yaml:"jobs"`
}

// Job describes one generated tiling.
type Job struct {
	Pattern     string `yaml:"pattern"`
	Rows        int    `yaml:"rows"`
	Cols        int    `yaml:"cols"`
	Out         string `yaml:"out"`
	Preview     string `yaml:"preview,omitempty"`
	Triangulate bool   `yaml:"triangulate,omitempty"`
}

// Validate checks the job the same way the command line checks its
// arguments.
func (j Job) Validate() error {
	if _, ok := gen.Lookup(j.Pattern); !ok {
		return fmt.Errorf("%w: %q", gen.ErrUnknownPattern, j.Pattern)
	}
	if j.Rows <= 0 || j.Cols <= 0 {
		return fmt.Errorf("invalid size ( %d x %d )", j.Rows, j.Cols)
	}
	if j.Out == "" {
		return fmt.Errorf("missing output path")
	}
	return nil
}

// Parse decodes and validates a manifest.
func Parse(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	if len(m.Jobs) == 0 {
		return Manifest{}, fmt.Errorf("manifest has no jobs")
	}
	for i, j := range m.Jobs {
		if err := j.Validate(); err != nil {
			return Manifest{}, fmt.Errorf("job %d (%s): %w", i+1, j.Out, err)
		}
	}
	return m, nil
}

// Load reads and parses the manifest at path.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Debug reports whether the debug logger was requested.
func Debug() bool {
	return os.Getenv(DebugEnv) == "1"
}
