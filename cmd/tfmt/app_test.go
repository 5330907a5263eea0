package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), append([]string{"tfmt"}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRender(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		code, out, _ := runCLI(t, "render", "{s,-8}|{u32,x,f}", "mask", "255")
		assert.Zero(t, code)
		assert.Equal(t, "mask    |0x000000ff", out)
	})

	t.Run("Newline", func(t *testing.T) {
		code, out, _ := runCLI(t, "render", "--newline", "{f,m}", "1536")
		assert.Zero(t, code)
		assert.Equal(t, "1.50 KB\n", out)
	})

	t.Run("NewlineFromEnv", func(t *testing.T) {
		t.Setenv("TFMT_NEWLINE", "true")
		_, out, _ := runCLI(t, "render", "{b}", "false")
		assert.Equal(t, "false\n", out)
	})

	t.Run("BufferTruncates", func(t *testing.T) {
		code, out, errOut := runCLI(t, "render", "--buffer", "4", "{s}", "abcdefgh")
		assert.Zero(t, code)
		assert.Equal(t, "abcd", out)
		assert.Contains(t, errOut, "output truncated")
		assert.Contains(t, errOut, "missing=4")
	})

	t.Run("DebugLogsStats", func(t *testing.T) {
		t.Setenv("TFMT_LOG_LEVEL", "debug")
		_, _, errOut := runCLI(t, "render", "a{u8}b", "1")
		assert.Contains(t, errOut, "written=3")
		assert.Contains(t, errOut, "puts=3")
	})

	t.Run("BadArgument", func(t *testing.T) {
		code, out, errOut := runCLI(t, "render", "{u8}", "300")
		assert.Equal(t, 1, code)
		assert.Empty(t, out)
		assert.True(t, strings.HasPrefix(errOut, "tfmt: argument 1 ({u8} at offset 0)"), errOut)
	})

	t.Run("MissingTemplate", func(t *testing.T) {
		code, _, errOut := runCLI(t, "render")
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "usage: tfmt render")
	})

	t.Run("BadLogLevel", func(t *testing.T) {
		code, _, errOut := runCLI(t, "--log-level", "loud", "render", "x")
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "invalid --log-level")
	})
}

func TestCheck(t *testing.T) {
	code, out, errOut := runCLI(t, "check", "{u8} {s,*}", "{q}", "{{")
	assert.Equal(t, 1, code)

	want := []string{
		"ok   {u8} {s,*} (2 directives)",
		`FAIL {q}: tfmt: unknown identifier at offset 0: "{q}"`,
		"ok   {{ (0 directives)",
	}
	got := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("check output mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "tfmt: 1 of 3 templates are invalid\n", errOut)

	code, _, _ = runCLI(t, "check", "{f,m,.1}")
	assert.Zero(t, code)
}

const batchManifest = `
newline: true
jobs:
  - name: header
    template: "{s,-6}|{u16,x,f}"
    args: [id, "255"]
  - name: sizes
    template: "{u64,m,-9}|{f,.1,*}"
    args: ["1536", "0.5;1.5"]
  - name: short
    template: "{s}"
    args: [abcdefgh]
    buffer: 3
`

func writeManifest(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestBatch(t *testing.T) {
	t.Run("RendersEveryJob", func(t *testing.T) {
		code, out, errOut := runCLI(t, "batch", writeManifest(t, batchManifest))
		assert.Zero(t, code, errOut)

		want := "id    |0x00ff\n" +
			"1.50 KB  |{ 0.5, 1.5 }\n" +
			"abc\n"
		if diff := cmp.Diff(want, out); diff != "" {
			t.Fatalf("batch output mismatch (-want +got):\n%s", diff)
		}
		assert.Contains(t, errOut, "job=short")
	})

	t.Run("FlagOverridesManifestNewline", func(t *testing.T) {
		_, out, _ := runCLI(t, "batch", "--newline=false", writeManifest(t, batchManifest))
		assert.Equal(t, "id    |0x00ff1.50 KB  |{ 0.5, 1.5 }abc", out)
	})

	t.Run("FlagBufferIsFallback", func(t *testing.T) {
		doc := "jobs:\n  - template: \"{s}\"\n    args: [abcdef]\n"
		_, out, _ := runCLI(t, "batch", "--buffer", "2", writeManifest(t, doc))
		assert.Equal(t, "ab", out)
	})

	t.Run("FailedJobsAreReported", func(t *testing.T) {
		doc := "jobs:\n  - {name: bad, template: \"{u8}\", args: [\"999\"]}\n  - {name: good, template: \"{u8}\", args: [\"9\"]}\n"
		code, out, errOut := runCLI(t, "batch", writeManifest(t, doc))
		assert.Equal(t, 1, code)
		assert.Equal(t, "9", out, "later jobs still run")
		assert.Contains(t, errOut, "1 of 2 jobs failed")
		assert.Contains(t, errOut, `job "bad"`)
	})

	t.Run("InvalidManifest", func(t *testing.T) {
		code, _, errOut := runCLI(t, "batch", writeManifest(t, "jobs: []\n"))
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "manifest: no jobs")
	})
}
