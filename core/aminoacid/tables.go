// core/aminoacid/tables.go
package aminoacid

/* ---------------------------- scoring tables ---------------------------- */

// Gap is the synthetic letter standing in for an inserted residue.
const Gap = 'X'

// Alphabet lists the canonical letters in matrix presentation order.
const Alphabet = "ACDEFGHIKLMNQPRSTVWY"

// Scale and weight of each score term. A term is (max - |a-b|) * weight for
// hydrophobicity and size, value * weight for the category term.
const (
	MaxHydro    = 6.0 // hydrophobicity scale width
	HydroWeight = 1.0

	MaxSize    = 3.0 // size scale width
	SizeWeight = 1.2

	CategoryWeight = 1.8 // weight of the identity or shared-category value
)

// Category is one miscellaneous-property group. Groups overlap, so the
// order of categories decides which value a pair receives.
type Category struct {
	Name    string
	Members string
	Value   float64
}

var categories = []Category{
	{Name: "positive", Members: "RHK", Value: 1},
	{Name: "negative", Members: "DE", Value: 1},
	{Name: "asx", Members: "ND", Value: 1.5},
	{Name: "glx", Members: "QE", Value: 1.5},
	{Name: "beta-branched", Members: "TVLI", Value: 1},
	{Name: "aromatic pair", Members: "YF", Value: 1.5},
	{Name: "aromatic", Members: "HYWF", Value: 1},
}

var (
	known [256]bool
	hydro [256]float64
	size  [256]float64
	// bit i set => letter belongs to categories[i]
	member [256]uint8
)

func init() {
	fill := func(dst *[256]float64, groups map[string]float64) {
		for letters, v := range groups {
			for i := 0; i < len(letters); i++ {
				c := letters[i]
				dst[c] = v
				dst[c+'a'-'A'] = v
				known[c] = true
				known[c+'a'-'A'] = true
			}
		}
	}
	fill(&hydro, map[string]float64{
		"FW": 0, "ILMY": 0.75, "V": 1.5, "AP": 2.25,
		"XG": 3, "STC": 4, "NQH": 5, "DERK": 6,
	})
	fill(&size, map[string]float64{
		"GASC": 0, "VTPDN": 1, "X": 1.5, "EQILMHFK": 2, "WYR": 3,
	})
	for i, cat := range categories {
		for j := 0; j < len(cat.Members); j++ {
			member[cat.Members[j]] |= 1 << i
		}
	}
}

// Categories returns the category groups in scan order.
func Categories() []Category { return append([]Category(nil), categories...) }

// Known reports whether c is one of the 20 canonical letters or the gap
// letter, in either case.
func Known(c byte) bool { return known[c] }

// Hydrophobicity returns the hydrophobicity scale value of c.
func Hydrophobicity(c byte) float64 { return hydro[c] }

// Size returns the side-chain size scale value of c.
func Size(c byte) float64 { return size[c] }

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
