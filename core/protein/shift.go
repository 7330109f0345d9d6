// core/protein/shift.go
package protein

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"loopcmp-core/peptide"
)

// Shift says where, for which loops, a gap letter is injected during a
// protein comparison. The zero value is no shift.
type Shift struct {
	Loops []string
	Side  peptide.Side
	Index int
}

var NoShift = Shift{}

// Targets reports whether loop is one of the shifted loops.
func (s Shift) Targets(loop string) bool { return slices.Contains(s.Loops, loop) }

func (s Shift) String() string {
	if s.Side == peptide.NoShift || len(s.Loops) == 0 {
		return "none"
	}
	return fmt.Sprintf("%s/%s/%d", strings.Join(s.Loops, "+"), s.Side, s.Index)
}

// ParseShift reads the form produced by String ("loop_1+loop_2/second/3").
// ':' is accepted in place of '/'. An empty string or "none" is NoShift.
func ParseShift(v string) (Shift, error) {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "none") {
		return NoShift, nil
	}
	parts := strings.FieldsFunc(v, func(r rune) bool { return r == '/' || r == ':' })
	if len(parts) != 3 {
		return NoShift, fmt.Errorf("%w: %q (want loops/side/index)", peptide.ErrBadShift, v)
	}
	side, err := peptide.ParseSide(parts[1])
	if err != nil {
		return NoShift, err
	}
	idx, err := strconv.Atoi(parts[2])
	if err != nil || idx < 0 {
		return NoShift, fmt.Errorf("%w: bad index %q", peptide.ErrBadShift, parts[2])
	}
	loops := strings.Split(parts[0], "+")
	for _, l := range loops {
		if _, ok := loopIndex(l); !ok {
			return NoShift, fmt.Errorf("%w: bad loop %q", peptide.ErrBadShift, l)
		}
	}
	return Shift{Loops: loops, Side: side, Index: idx}, nil
}
