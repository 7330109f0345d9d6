// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"loopcmp/internal/sweep"
)

// FormatValue renders a score; masked (NaN) cells are empty.
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatRow(label string, vals []float64) []string {
	out := make([]string, 0, len(vals)+1)
	out = append(out, label)
	for _, v := range vals {
		out = append(out, FormatValue(v))
	}
	return out
}

// WriteText prints a table as TSV preceded by a "# title" line.
func WriteText(w io.Writer, t sweep.Table, header bool) error {
	if _, err := fmt.Fprintf(w, "# %s\n", t.Title); err != nil {
		return err
	}
	if header {
		if _, err := fmt.Fprintln(w, TableHeaderLabel+"\t"+strings.Join(t.Columns, "\t")); err != nil {
			return err
		}
	}
	for _, r := range t.Rows {
		if _, err := fmt.Fprintln(w, strings.Join(formatRow(r.Label, r.Values), "\t")); err != nil {
			return err
		}
	}
	return nil
}

// WriteMotifsText prints one TSV line per scanned loop.
func WriteMotifsText(w io.Writer, list []sweep.MotifReport, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, MotifTSVHeader); err != nil {
			return err
		}
	}
	for _, m := range list {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Protein, m.Loop, m.Peptide, strings.Join(m.Motifs, MotifSep)); err != nil {
			return err
		}
	}
	return nil
}
