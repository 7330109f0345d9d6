// internal/sweep/matrix.go
package sweep

import (
	"loopcmp-core/aminoacid"
)

func letters() []string {
	out := make([]string, len(aminoacid.Alphabet))
	for i := range out {
		out[i] = aminoacid.Alphabet[i : i+1]
	}
	return out
}

func pairwise(title string, f func(a, b byte) (float64, error)) (Table, error) {
	t := Table{Title: title, Columns: letters()}
	for i := 0; i < len(aminoacid.Alphabet); i++ {
		row := Row{Label: t.Columns[i], Values: make([]float64, len(aminoacid.Alphabet))}
		for j := 0; j < len(aminoacid.Alphabet); j++ {
			v, err := f(aminoacid.Alphabet[i], aminoacid.Alphabet[j])
			if err != nil {
				return t, err
			}
			row.Values[j] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// AminoAcidMatrix is the 20x20 property-based substitution matrix.
func AminoAcidMatrix() (Table, error) {
	return pairwise("amino acid comparison matrix", aminoacid.Compare)
}

// BLOSUM62Matrix lays BLOSUM62 out in the same order as AminoAcidMatrix.
func BLOSUM62Matrix() (Table, error) {
	return pairwise("BLOSUM62 substitution matrix", func(a, b byte) (float64, error) {
		v, err := aminoacid.BLOSUM62(a, b)
		return float64(v), err
	})
}
