// core/peptide/compare.go
package peptide

import (
	"fmt"
	"iter"

	"loopcmp-core/aminoacid"
	"loopcmp-core/score"
)

func letters(p string, s, side Side, at int) iter.Seq[byte] {
	if s == side {
		return Shifted(p, at)
	}
	return Plain(p)
}

// Score sums aminoacid.Score over positionally paired letters of p1 and p2,
// stopping at the end of the shorter side. The side named by side gets a gap
// inserted at index at before pairing. The total is not length-normalised.
func Score(p1, p2 string, side Side, at int) (float64, error) {
	if !side.valid() {
		return 0, fmt.Errorf("%w %v", ErrBadShift, side)
	}
	next1, stop1 := iter.Pull(letters(p1, First, side, at))
	defer stop1()
	next2, stop2 := iter.Pull(letters(p2, Second, side, at))
	defer stop2()

	total := 0.0
	for {
		a, ok1 := next1()
		b, ok2 := next2()
		if !ok1 || !ok2 {
			return total, nil
		}
		v, err := aminoacid.Score(a, b)
		if err != nil {
			return 0, err
		}
		total += v
	}
}

// Compare is Score rounded to two decimals.
func Compare(p1, p2 string, side Side, at int) (float64, error) {
	v, err := Score(p1, p2, side, at)
	if err != nil {
		return 0, err
	}
	return score.Round2(v), nil
}
