// internal/sweep/motifs.go
package sweep

import (
	"loopcmp-core/motif"
	"loopcmp-core/protein"
)

// MotifReport lists the motifs found in one loop of one protein.
type MotifReport struct {
	Protein string
	Loop    string
	Peptide string
	Motifs  []string
}

// Motifs scans the requested loops of every protein. With no loops, each
// protein's own loops are scanned. Loops a protein lacks are skipped.
func Motifs(c *protein.Collection, loops []string) []MotifReport {
	var out []MotifReport
	for p := range c.All() {
		ids := loops
		if len(ids) == 0 {
			ids = p.LoopIDs()
		}
		for _, id := range ids {
			pep, ok := p.Loop(id)
			if !ok {
				continue
			}
			out = append(out, MotifReport{Protein: p.Name, Loop: id, Peptide: pep, Motifs: motif.Scan(pep)})
		}
	}
	return out
}
