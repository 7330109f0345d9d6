// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"loopcmp-core/aminoacid"
	"loopcmp-core/peptide"
	"loopcmp-core/protein"
	"loopcmp/internal/cli"
	"loopcmp/internal/cmdutil"
	"loopcmp/internal/sweep"
	"loopcmp/internal/version"
	"loopcmp/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitFailure  = 3
	ExitCanceled = 130
)

// flush finishes a run: a reader hanging up early is success, any other
// write failure is exit 3.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		return cmdutil.Errorf(stderr, ExitFailure, err)
	}
	return code
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	if len(argv) == 0 {
		cli.PrintUsage(outw)
		return flush(outw, stderr, ExitOK)
	}
	switch argv[0] {
	case "-h", "-help", "--help", "help":
		cli.PrintUsage(outw)
		return flush(outw, stderr, ExitOK)
	case "-v", "-version", "--version":
		_, _ = fmt.Fprintf(outw, "loopcmp version %s\n", version.Version)
		return flush(outw, stderr, ExitOK)
	}

	cmd := argv[0]
	fs := cli.NewFlagSet("loopcmp " + cmd)
	opts, err := cli.ParseArgs(fs, cmd, argv[1:])
	switch {
	case errors.Is(err, flag.ErrHelp):
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, ExitOK)
	case errors.Is(err, cli.ErrUnknownCommand):
		_ = cmdutil.Errorf(stderr, ExitUsage, err)
		cli.PrintUsage(outw)
		return flush(outw, stderr, ExitUsage)
	case err != nil:
		_ = cmdutil.Errorf(stderr, ExitUsage, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, ExitUsage)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "loopcmp version %s\n", version.Version)
		return flush(outw, stderr, ExitOK)
	}

	code := run(ctx, opts, outw, stderr)
	return flush(outw, stderr, code)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// exitCode maps a command error to its exit status.
func exitCode(stderr io.Writer, err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitCanceled
	case writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, protein.ErrMissingLoop),
		errors.Is(err, protein.ErrUnknownProtein),
		errors.Is(err, peptide.ErrBadShift),
		errors.Is(err, aminoacid.ErrInvalidInput):
		return cmdutil.Errorf(stderr, ExitUsage, err)
	default:
		return cmdutil.Errorf(stderr, ExitFailure, err)
	}
}

func run(ctx context.Context, o cli.Options, out io.Writer, stderr io.Writer) int {
	if o.Command == cli.CmdMatrix {
		return exitCode(stderr, runMatrix(o, out))
	}

	c, err := protein.LoadTable(o.Input)
	if err != nil {
		return cmdutil.Errorf(stderr, ExitUsage, err)
	}
	for _, name := range c.Replaced() {
		cmdutil.Warnf(stderr, o.Quiet, "duplicate protein %q: later row replaces earlier", name)
	}
	if c.Len() == 0 {
		cmdutil.Warnf(stderr, o.Quiet, "no proteins in %s", sourceLabel(o.Input))
	}
	src := sourceLabel(o.Input)

	var tables []sweep.Table
	switch o.Command {
	case cli.CmdCompare:
		var t sweep.Table
		t, err = sweep.Full(ctx, c, sweep.FullOptions{Source: src, Loops: o.Loops, Proteins: o.Proteins, Shift: o.Shift})
		if o.NoSelf {
			t.MaskSelf()
		}
		tables = append(tables, t)
	case cli.CmdShifts:
		var t sweep.Table
		t, err = sweep.AllShifts(ctx, c, src, o.Protein)
		if o.NoSelf {
			t.MaskSelf()
		}
		tables = append(tables, t)
	case cli.CmdBest:
		var t sweep.Table
		t, err = sweep.BestShifts(ctx, c, src, o.Threads)
		tables = append(tables, t)
	case cli.CmdQuick:
		tables, err = sweep.Quick(ctx, c, src)
	case cli.CmdMotifs:
		list := sweep.Motifs(c, o.Loops)
		return exitCode(stderr, writers.WriteMotifs(o.Output, out, list, o.Header))
	}
	if err != nil {
		return exitCode(stderr, err)
	}
	return exitCode(stderr, writers.WriteTables(o.Output, out, tables, o.Header))
}

func runMatrix(o cli.Options, out io.Writer) error {
	build := sweep.AminoAcidMatrix
	if o.Blosum {
		build = sweep.BLOSUM62Matrix
	}
	t, err := build()
	if err != nil {
		return err
	}
	return writers.WriteTables(o.Output, out, []sweep.Table{t}, o.Header)
}

// sourceLabel names the input in table titles: the file name without its
// extension, or "stdin".
func sourceLabel(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".gz")
	return strings.TrimSuffix(base, filepath.Ext(base))
}
