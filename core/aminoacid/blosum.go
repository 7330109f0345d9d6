// core/aminoacid/blosum.go
package aminoacid

import (
	"fmt"

	"github.com/biogo/biogo/align/matrix"
	"github.com/biogo/biogo/alphabet"
)

// BLOSUM62 returns the BLOSUM62 substitution value for two canonical
// letters, for side-by-side comparison with Compare.
func BLOSUM62(a, b byte) (int, error) {
	i, err := blosumIndex(a)
	if err != nil {
		return 0, err
	}
	j, err := blosumIndex(b)
	if err != nil {
		return 0, err
	}
	return matrix.BLOSUM62[i][j], nil
}

func blosumIndex(c byte) (int, error) {
	c = upper(c)
	if c == Gap || !known[c] {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, c)
	}
	i := alphabet.Protein.IndexOf(alphabet.Letter(c))
	if i < 0 || i >= len(matrix.BLOSUM62) {
		return 0, fmt.Errorf("%w: %q not in protein alphabet", ErrInvalidInput, c)
	}
	return i, nil
}
