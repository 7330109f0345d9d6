// core/peptide/side.go
package peptide

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadShift is returned for an unknown frameshift side.
var ErrBadShift = errors.New("bad shift side")

// Side selects which operand of a comparison receives the inserted gap.
type Side int

const (
	NoShift Side = iota
	First
	Second
)

func (s Side) String() string {
	switch s {
	case NoShift:
		return "none"
	case First:
		return "first"
	case Second:
		return "second"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

func (s Side) valid() bool { return s == NoShift || s == First || s == Second }

// ParseSide accepts "", "none", "first" or "second" (any case).
func ParseSide(v string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "none":
		return NoShift, nil
	case "first":
		return First, nil
	case "second":
		return Second, nil
	}
	return NoShift, fmt.Errorf("%w %q (want first or second)", ErrBadShift, v)
}
