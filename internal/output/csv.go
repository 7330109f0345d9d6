// internal/output/csv.go
package output

import (
	"encoding/csv"
	"io"
	"strings"

	"loopcmp/internal/sweep"
)

// WriteCSV writes the title on its own line, then the header and rows.
func WriteCSV(w io.Writer, t sweep.Table, header bool) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{t.Title}); err != nil {
		return err
	}
	if header {
		if err := cw.Write(append([]string{TableHeaderLabel}, t.Columns...)); err != nil {
			return err
		}
	}
	for _, r := range t.Rows {
		if err := cw.Write(formatRow(r.Label, r.Values)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMotifsCSV writes motif reports with one column per field.
func WriteMotifsCSV(w io.Writer, list []sweep.MotifReport, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write([]string{"protein", "loop", "peptide", "motifs"}); err != nil {
			return err
		}
	}
	for _, m := range list {
		rec := []string{m.Protein, m.Loop, m.Peptide, strings.Join(m.Motifs, MotifSep)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

