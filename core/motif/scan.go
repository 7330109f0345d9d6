// core/motif/scan.go
package motif

// MinBetaBranched is the T/V/I count from which BetaBranched is reported.
const MinBetaBranched = 2

// Scan returns the motifs found in p, in catalogue order.
func Scan(p string) []string {
	var found []string
	for _, r := range catalogue {
		if r.matches(p) {
			found = append(found, r.Label(p))
		}
	}
	if len(betaBranched.FindAllStringIndex(p, -1)) >= MinBetaBranched {
		found = append(found, BetaBranched)
	}
	return found
}
