// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"

	"loopcmp/internal/output"
	"loopcmp/internal/sweep"
)

// TableWriter renders a batch of tables; header controls the column row.
type TableWriter func(w io.Writer, ts []sweep.Table, header bool) error

// MotifWriter renders motif reports.
type MotifWriter func(w io.Writer, list []sweep.MotifReport, header bool) error

var (
	tableWriters = map[string]TableWriter{}
	motifWriters = map[string]MotifWriter{}
)

// RegisterTable and RegisterMotif are last-wins.
func RegisterTable(format string, fn TableWriter) { tableWriters[format] = fn }
func RegisterMotif(format string, fn MotifWriter) { motifWriters[format] = fn }

func init() {
	RegisterTable("text", eachTable(output.WriteText, true))
	RegisterTable("csv", eachTable(output.WriteCSV, false))
	RegisterTable("json", func(w io.Writer, ts []sweep.Table, _ bool) error {
		if len(ts) == 1 {
			return output.WriteJSON(w, ts[0])
		}
		return output.WriteTablesJSON(w, ts)
	})

	RegisterMotif("text", output.WriteMotifsText)
	RegisterMotif("csv", output.WriteMotifsCSV)
	RegisterMotif("json", func(w io.Writer, list []sweep.MotifReport, _ bool) error {
		return output.WriteMotifsJSON(w, list)
	})
	RegisterMotif("jsonl", func(w io.Writer, list []sweep.MotifReport, _ bool) error {
		return StreamMotifsJSONL(w, list)
	})
}

// eachTable writes tables one after another, separated by a blank line when
// sep is set.
func eachTable(fn func(io.Writer, sweep.Table, bool) error, sep bool) TableWriter {
	return func(w io.Writer, ts []sweep.Table, header bool) error {
		for i, t := range ts {
			if sep && i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if err := fn(w, t, header); err != nil {
				return err
			}
		}
		return nil
	}
}

// WriteTables dispatches to the table writer registered for format.
func WriteTables(format string, w io.Writer, ts []sweep.Table, header bool) error {
	fn, ok := tableWriters[format]
	if !ok {
		return fmt.Errorf("unknown table format %q (no writer registered)", format)
	}
	return fn(w, ts, header)
}

// WriteMotifs dispatches to the motif writer registered for format.
func WriteMotifs(format string, w io.Writer, list []sweep.MotifReport, header bool) error {
	fn, ok := motifWriters[format]
	if !ok {
		return fmt.Errorf("unknown motif format %q (no writer registered)", format)
	}
	return fn(w, list, header)
}

// TableFormats and MotifFormats list the registered names, sorted.
func TableFormats() []string { return keys(tableWriters) }
func MotifFormats() []string { return keys(motifWriters) }

func keys[T any](m map[string]T) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// IsBrokenPipe reports whether err comes from a reader that went away early
// (e.g. `loopcmp ... | head`).
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
