// core/aminoacid/compare.go
package aminoacid

import (
	"errors"
	"fmt"
	"math"

	"loopcmp-core/score"
)

// ErrInvalidInput is returned for letters outside the 20 canonical amino
// acids plus the gap letter.
var ErrInvalidInput = errors.New("invalid amino acid")

func identity(c byte) float64 {
	switch c {
	case 'G', 'P', 'C':
		return 3
	}
	return 2
}

// category returns the miscellaneous term for two upper-case letters.
func category(a, b byte) float64 {
	if a == b && a != Gap {
		return identity(a)
	}
	both := member[a] & member[b]
	if both == 0 {
		return 0
	}
	for i := range categories {
		if both&(1<<i) != 0 {
			return categories[i].Value
		}
	}
	return 0
}

// Score returns the unrounded similarity of two amino-acid letters.
func Score(a, b byte) (float64, error) {
	if !known[a] {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, a)
	}
	if !known[b] {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, b)
	}
	a, b = upper(a), upper(b)

	h := MaxHydro - math.Abs(hydro[a]-hydro[b])
	s := MaxSize - math.Abs(size[a]-size[b])
	return category(a, b)*CategoryWeight + h*HydroWeight + s*SizeWeight, nil
}

// Compare is Score rounded to two decimals.
func Compare(a, b byte) (float64, error) {
	v, err := Score(a, b)
	if err != nil {
		return 0, err
	}
	return score.Round2(v), nil
}
