package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/oy3o/tfmt"
	"github.com/oy3o/tfmt/internal/manifest"
)

var newline = []byte{'\n'}

// newApp builds the tfmt command. Output goes to stdout, logs and
// diagnostics to stderr.
func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "tfmt",
		Usage:     "Render and check typed format templates",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level: debug, info, warn or error",
				Value:   "warn",
				Sources: cli.EnvVars("TFMT_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "render",
				Usage:     "Render one template with text arguments",
				ArgsUsage: "TEMPLATE [ARGS...]",
				Flags:     outputFlags(),
				Action:    renderAction,
			},
			{
				Name:      "check",
				Usage:     "Validate templates without rendering",
				ArgsUsage: "TEMPLATE...",
				Action:    checkAction,
			},
			{
				Name:      "batch",
				Usage:     "Render every job of a YAML manifest ('-' reads stdin)",
				ArgsUsage: "FILE.yaml",
				Flags:     outputFlags(),
				Action:    batchAction,
			},
		},
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "buffer",
			Aliases: []string{"b"},
			Usage:   "Render into a fixed buffer of this many bytes and report truncation (0 = unbounded)",
			Sources: cli.EnvVars("TFMT_BUFFER"),
		},
		&cli.BoolFlag{
			Name:    "newline",
			Aliases: []string{"n"},
			Usage:   "End the output with a newline (default: when stdout is a terminal)",
			Sources: cli.EnvVars("TFMT_NEWLINE"),
		},
	}
}

func newLogger(cmd *cli.Command) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	h := slog.NewTextHandler(cmd.Root().ErrWriter, &slog.HandlerOptions{Level: level})
	return slog.New(h), nil
}

// wantNewline resolves --newline: an explicit flag or env value wins, then the
// fallback, then whether out is a terminal.
func wantNewline(cmd *cli.Command, fallback *bool, out io.Writer) bool {
	if cmd.IsSet("newline") {
		return cmd.Bool("newline")
	}
	if fallback != nil {
		return *fallback
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type job struct {
	name     string
	template string
	args     []tfmt.Arg
	buffer   int
	newline  bool
}

// render writes one job to out and returns the number of bytes the fixed
// buffer could not hold.
func (j *job) render(out io.Writer, log *slog.Logger) (int, error) {
	w, err := tfmt.NewWriter(out)
	if err != nil {
		return 0, err
	}

	var sink tfmt.Sink = w
	var fixed *tfmt.FixedBuffer
	if j.buffer > 0 {
		fixed = tfmt.NewFixedBuffer(make([]byte, 0, j.buffer))
		sink = fixed
	}
	stats := tfmt.NewCountingSink(sink)
	unwritten := tfmt.Format(stats, j.template, j.args...)

	if fixed != nil {
		w.Put(fixed.Bytes())
	}
	if j.newline {
		w.Put(newline)
	}
	if err := w.Flush(); err != nil {
		return unwritten, err
	}

	log.Debug("rendered",
		"job", j.name,
		"written", stats.Written(),
		"dropped", stats.Dropped(),
		"puts", stats.Puts(),
	)
	if unwritten > 0 {
		log.Warn("output truncated", "job", j.name, "buffer", j.buffer, "missing", unwritten)
	}
	return unwritten, nil
}

func renderAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: tfmt render TEMPLATE [ARGS...]")
	}
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	if cmd.Int("buffer") < 0 {
		return fmt.Errorf("--buffer must not be negative")
	}

	template := cmd.Args().First()
	args, err := parseArgs(template, cmd.Args().Tail())
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	j := &job{
		name:     "render",
		template: template,
		args:     args,
		buffer:   cmd.Int("buffer"),
		newline:  wantNewline(cmd, nil, out),
	}
	_, err = j.render(out, log)
	return err
}

func checkAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: tfmt check TEMPLATE...")
	}
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	failed := 0
	for _, template := range cmd.Args().Slice() {
		ds, err := tfmt.Directives(template)
		if err != nil {
			failed++
			tfmt.Fprint(out, "FAIL {s}: {s}\n", template, err.Error())
			continue
		}
		tfmt.Fprint(out, "ok   {s} ({isize} directives)\n", template, len(ds))
		for _, d := range ds {
			log.Debug("directive", "template", template, "offset", d.Offset, "ident", d.Ident.String())
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d templates are invalid", failed, cmd.NArg())
	}
	return nil
}

func batchAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return fmt.Errorf("usage: tfmt batch FILE.yaml")
	}
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}

	var m *manifest.Manifest
	if path := cmd.Args().First(); path == "-" {
		m, err = manifest.Decode(os.Stdin, "stdin")
	} else {
		m, err = manifest.Load(path)
	}
	if err != nil {
		return err
	}
	log.Info("manifest loaded", "source", m.Source, "jobs", len(m.Jobs))

	out := cmd.Root().Writer
	var errs []error
	for _, mj := range m.Jobs {
		if err := ctx.Err(); err != nil {
			return err
		}
		args, err := parseArgs(mj.Template, mj.Args)
		if err != nil {
			log.Error("job failed", "job", mj.Name, "err", err)
			errs = append(errs, fmt.Errorf("job %q: %w", mj.Name, err))
			continue
		}
		j := &job{
			name:     mj.Name,
			template: mj.Template,
			args:     args,
			buffer:   m.BufferSize(mj),
			newline:  wantNewline(cmd, m.Newline, out),
		}
		if j.buffer == 0 {
			j.buffer = cmd.Int("buffer")
		}
		if _, err := j.render(out, log); err != nil {
			return err
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d jobs failed: %w", len(errs), len(m.Jobs), errors.Join(errs...))
	}
	return nil
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	if err := newApp(stdout, stderr).Run(ctx, argv); err != nil {
		msg := strings.TrimSpace(err.Error())
		tfmt.Fprint(stderr, "tfmt: {s}\n", msg)
		return 1
	}
	return 0
}
