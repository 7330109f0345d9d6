// core/motif/catalogue.go
package motif

import "regexp"

// Labels emitted by Scan.
const (
	BoxNCap       = "Box N-cap"
	BigBoxNCap    = "Big Box N-cap"
	SaltBridge4   = "i→i+4 Salt bridge"
	SaltBridge3   = "i→i+3 Salt bridge"
	AlphaLCCap    = "AlphaL C-cap"
	SchellmanCCap = "Schellman C-cap"
	BetaBranched  = "Multiple beta-branched residues"

	WithHydrophobic = " with hydrophobic interactions"
	WithProline     = " with a proline"
	Narrow          = "Narrow"
	Broad           = "Broad"
)

func re(expr string) *regexp.Regexp { return regexp.MustCompile("(?i)" + expr) }

// variant appends Suffix to a label when Pattern also matches.
type variant struct {
	Pattern *regexp.Regexp
	Suffix  string
}

// rule is one catalogue entry: a peptide matching any of Patterns gets one
// label from Label.
type rule struct {
	Name     string
	Patterns []*regexp.Regexp
	Label    func(p string) string
}

func (r rule) matches(p string) bool {
	for _, re := range r.Patterns {
		if re.MatchString(p) {
			return true
		}
	}
	return false
}

func withVariants(base string, vs []variant) func(string) string {
	return func(p string) string {
		out := base
		for _, v := range vs {
			if v.Pattern.MatchString(p) {
				out += v.Suffix
			}
		}
		return out
	}
}

func fixed(label string) func(string) string { return func(string) string { return label } }

// The C-terminal hydrophobic position of the N-cap variants leaves out L.
var (
	boxVariants = []variant{
		{Pattern: re(`[MLIFV][STN]..[EQ][MFIV]`), Suffix: WithHydrophobic},
		{Pattern: re(`[STN]P.[EQ]`), Suffix: WithProline},
	}
	bigBoxVariants = []variant{
		{Pattern: re(`[MLIFV][STN]...[EQ][MFIV]`), Suffix: WithHydrophobic},
		{Pattern: re(`[STN]P..[EQ]`), Suffix: WithProline},
	}
	narrowSchellman = re(`[LAM]..[HKL]G[IVK]`)
	betaBranched    = re(`[TVI]`)
)

func schellman(p string) string {
	if narrowSchellman.MatchString(p) {
		return Narrow + " " + SchellmanCCap
	}
	return Broad + " " + SchellmanCCap
}

var catalogue = []rule{
	{Name: BoxNCap, Patterns: []*regexp.Regexp{re(`[STN]..[EQ]`)}, Label: withVariants(BoxNCap, boxVariants)},
	{Name: BigBoxNCap, Patterns: []*regexp.Regexp{re(`[STN]...[EQ]`)}, Label: withVariants(BigBoxNCap, bigBoxVariants)},
	{Name: SaltBridge4, Patterns: []*regexp.Regexp{re(`[RK]...E`), re(`E...[RK]`)}, Label: fixed(SaltBridge4)},
	{Name: SaltBridge3, Patterns: []*regexp.Regexp{re(`[RK]..E`), re(`E..R`)}, Label: fixed(SaltBridge3)},
	{Name: AlphaLCCap, Patterns: []*regexp.Regexp{re(`[IVKMLYFWA]...G[GSTNEDQ][IVKMLYFWA]`)}, Label: fixed(AlphaLCCap)},
	{Name: SchellmanCCap, Patterns: []*regexp.Regexp{re(`[IVKMLYFWA]...G[IVKMLYFWA]`)}, Label: schellman},
}

// Catalogue lists the base motif names in scan order.
func Catalogue() []string {
	out := make([]string, 0, len(catalogue)+1)
	for _, r := range catalogue {
		out = append(out, r.Name)
	}
	return append(out, BetaBranched)
}
