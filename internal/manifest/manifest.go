// Package manifest loads batch render jobs for the tfmt command.
//
// A manifest is a YAML document:
//
//	buffer: 128        # sink size in bytes; 0 defers to the command line
//	newline: true      # end every job with '\n'
//	jobs:
//	  - name: header
//	    template: "{s,-8}|{u32,x,f}"
//	    args: ["mask", "255"]
//	  - template: "{f,m}"
//	    args: ["1536"]
//	    buffer: 4
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oy3o/tfmt"
)

var (
	ErrEmpty         = errors.New("manifest: document is empty")
	ErrNoJobs        = errors.New("manifest: no jobs")
	ErrEmptyTemplate = errors.New("manifest: job has an empty template")
	ErrBufferRange   = errors.New("manifest: buffer size must not be negative")
	ErrDuplicateName = errors.New("manifest: duplicate job name")
)

// Manifest is a parsed batch file.
type Manifest struct {
	Source  string `yaml:"-"`
	Buffer  int    `yaml:"buffer"`
	Newline *bool  `yaml:"newline"`
	Jobs    []Job  `yaml:"jobs"`
}

// Job is one template with its arguments in text form.
type Job struct {
	Name     string   `yaml:"name"`
	Template string   `yaml:"template"`
	Args     []string `yaml:"args"`
	Buffer   *int     `yaml:"buffer"`
}

// BufferSize returns the sink size for job, falling back to the manifest
// default. 0 means the manifest does not set one.
func (m *Manifest) BufferSize(job Job) int {
	if job.Buffer != nil {
		return *job.Buffer
	}
	return m.Buffer
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f, path)
}

// Decode parses a manifest from r. source names r in error messages.
func Decode(r io.Reader, source string) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", source, err)
	}
	return Parse(data, source)
}

// Parse parses and checks a manifest. Unknown keys are rejected, jobs
// without a name are named "job-N", and every template must validate.
func Parse(data []byte, source string) (*Manifest, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, source)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	m := &Manifest{}
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", source, err)
	}
	m.Source = source

	if err := m.check(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manifest) check() error {
	if m.Buffer < 0 {
		return fmt.Errorf("%w (%s: %d)", ErrBufferRange, m.Source, m.Buffer)
	}
	if len(m.Jobs) == 0 {
		return fmt.Errorf("%w: %s", ErrNoJobs, m.Source)
	}

	seen := make(map[string]struct{}, len(m.Jobs))
	for i := range m.Jobs {
		job := &m.Jobs[i]
		job.Name = strings.TrimSpace(job.Name)
		if job.Name == "" {
			job.Name = "job-" + strconv.Itoa(i+1)
		}
		if _, dup := seen[job.Name]; dup {
			return fmt.Errorf("%w %q (%s)", ErrDuplicateName, job.Name, m.Source)
		}
		seen[job.Name] = struct{}{}

		if job.Template == "" {
			return fmt.Errorf("%w: %q (%s)", ErrEmptyTemplate, job.Name, m.Source)
		}
		if job.Buffer != nil && *job.Buffer < 0 {
			return fmt.Errorf("%w (%s, job %q: %d)", ErrBufferRange, m.Source, job.Name, *job.Buffer)
		}
		if err := tfmt.Validate(job.Template); err != nil {
			return fmt.Errorf("manifest: job %q (%s): %w", job.Name, m.Source, err)
		}
	}
	return nil
}
