// internal/sweep/table.go
package sweep

import "math"

// Row is one labelled line of a Table.
type Row struct {
	Label  string
	Values []float64
}

// Table is a materialised comparison. Masked cells hold NaN.
type Table struct {
	Title   string
	Subject string // protein of interest for per-protein sweeps
	Columns []string
	Rows    []Row
}

// MaskSelf blanks self comparisons: the Subject column when Subject is set,
// otherwise every cell whose column equals its row label.
func (t *Table) MaskSelf() {
	col := make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		col[c] = i
	}
	for r := range t.Rows {
		name := t.Subject
		if name == "" {
			name = t.Rows[r].Label
		}
		if i, ok := col[name]; ok && i < len(t.Rows[r].Values) {
			t.Rows[r].Values[i] = math.NaN()
		}
	}
}

// ColumnMax returns the per-column maximum over all rows, ignoring NaN.
func (t *Table) ColumnMax() []float64 {
	out := make([]float64, len(t.Columns))
	for i := range out {
		out[i] = math.NaN()
	}
	for _, r := range t.Rows {
		for i, v := range r.Values {
			if math.IsNaN(v) {
				continue
			}
			if math.IsNaN(out[i]) || v > out[i] {
				out[i] = v
			}
		}
	}
	return out
}
