// pkg/api/motifs_v1.go
package api

// MotifReportV1 is the stable JSON/JSONL schema for one scanned loop.
type MotifReportV1 struct {
	Protein string   `json:"protein"`
	Loop    string   `json:"loop"`
	Peptide string   `json:"peptide"`
	Motifs  []string `json:"motifs"` // never null; empty when nothing matched
}
