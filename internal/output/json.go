// internal/output/json.go
package output

import (
	"io"
	"math"

	"loopcmp/internal/jsonutil"
	"loopcmp/internal/sweep"
	"loopcmp/pkg/api"
)

// ToAPITable converts a table to the stable wire schema (v1).
func ToAPITable(t sweep.Table) api.TableV1 {
	v := api.TableV1{
		Title:   t.Title,
		Subject: t.Subject,
		Columns: append([]string{}, t.Columns...),
		Rows:    make([]api.RowV1, 0, len(t.Rows)),
	}
	for _, r := range t.Rows {
		row := api.RowV1{Label: r.Label, Values: make([]*float64, len(r.Values))}
		for i, x := range r.Values {
			if math.IsNaN(x) {
				continue
			}
			x := x
			row.Values[i] = &x
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}

// ToAPIMotif converts a motif report to the stable wire schema (v1).
func ToAPIMotif(m sweep.MotifReport) api.MotifReportV1 {
	return api.MotifReportV1{
		Protein: m.Protein,
		Loop:    m.Loop,
		Peptide: m.Peptide,
		Motifs:  append([]string{}, m.Motifs...),
	}
}

// WriteJSON writes one table as indented JSON.
func WriteJSON(w io.Writer, t sweep.Table) error {
	return jsonutil.EncodePretty(w, ToAPITable(t))
}

// WriteTablesJSON writes several tables as one JSON array.
func WriteTablesJSON(w io.Writer, ts []sweep.Table) error {
	out := make([]api.TableV1, 0, len(ts))
	for _, t := range ts {
		out = append(out, ToAPITable(t))
	}
	return jsonutil.EncodePretty(w, out)
}

// WriteMotifsJSON writes all motif reports as one JSON array.
func WriteMotifsJSON(w io.Writer, list []sweep.MotifReport) error {
	out := make([]api.MotifReportV1, 0, len(list))
	for _, m := range list {
		out = append(out, ToAPIMotif(m))
	}
	return jsonutil.EncodePretty(w, out)
}
