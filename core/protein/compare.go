// core/protein/compare.go
package protein

import (
	"errors"
	"fmt"
	"iter"

	"loopcmp-core/peptide"
	"loopcmp-core/score"
)

var (
	ErrMissingLoop    = errors.New("missing loop")
	ErrUnknownProtein = errors.New("unknown protein")
)

// ShortPeptide is the length below which a loop is treated as short.
const ShortPeptide = 4

// Compare scores the protein named of against every protein of c, in
// collection order, itself included.
//
// For each loop the running score either grows by the peptide comparison or,
// when either peptide is short, doubles. The doubling depends on the loops
// already processed: a short first loop leaves the score at 0.
//
// A candidate that cannot be scored yields (0, err) and the sequence moves on
// to the next candidate. An unknown protein of interest ends the sequence
// after one error.
func Compare(loops []string, c *Collection, of string, sh Shift) iter.Seq2[float64, error] {
	return func(yield func(float64, error) bool) {
		ref, ok := c.Get(of)
		if !ok {
			yield(0, fmt.Errorf("%w %q", ErrUnknownProtein, of))
			return
		}
		for _, cand := range c.list {
			v, err := comparePair(loops, ref, cand, sh)
			if !yield(v, err) {
				return
			}
		}
	}
}

func comparePair(loops []string, ref, cand Protein, sh Shift) (float64, error) {
	total := 0.0
	for _, loop := range loops {
		p1, ok := ref.Loop(loop)
		if !ok {
			return 0, fmt.Errorf("%w %s in protein %q", ErrMissingLoop, loop, ref.Name)
		}
		p2, ok := cand.Loop(loop)
		if !ok {
			return 0, fmt.Errorf("%w %s in protein %q", ErrMissingLoop, loop, cand.Name)
		}
		if len(p1) < ShortPeptide || len(p2) < ShortPeptide {
			total += total
			continue
		}
		side, at := peptide.NoShift, 0
		if sh.Targets(loop) {
			side, at = sh.Side, sh.Index
		}
		v, err := peptide.Score(p1, p2, side, at)
		if err != nil {
			return 0, fmt.Errorf("%s vs %s, %s: %w", ref.Name, cand.Name, loop, err)
		}
		total += v
	}
	return score.Round2(total), nil
}
