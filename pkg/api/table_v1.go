// pkg/api/table_v1.go
package api

// TableV1 is the stable JSON schema for comparison tables.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type TableV1 struct {
	Title   string   `json:"title"`
	Subject string   `json:"subject,omitempty"` // protein of interest for shift sweeps
	Columns []string `json:"columns"`
	Rows    []RowV1  `json:"rows"`
}

// RowV1 is one labelled row; masked cells are null.
type RowV1 struct {
	Label  string     `json:"label"`
	Values []*float64 `json:"values"`
}
