// core/peptide/iter.go
package peptide

import (
	"iter"

	"loopcmp-core/aminoacid"
)

// Plain yields the letters of p in order.
func Plain(p string) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := 0; i < len(p); i++ {
			if !yield(p[i]) {
				return
			}
		}
	}
}

// Shifted yields the letters of p with one gap letter emitted just before
// position at. An out-of-range at yields p unchanged.
func Shifted(p string, at int) iter.Seq[byte] {
	if at < 0 || at >= len(p) {
		return Plain(p)
	}
	return func(yield func(byte) bool) {
		for i := 0; i < len(p); i++ {
			if i == at && !yield(aminoacid.Gap) {
				return
			}
			if !yield(p[i]) {
				return
			}
		}
	}
}
