// core/score/round.go
package score

import (
	"math"

	"github.com/shopspring/decimal"
)

// Places is the number of decimals every exported score carries.
const Places = 2

// Round2 rounds x to two decimals, half away from zero.
//
// Rounding works on the shortest decimal form that identifies x, so a sum
// that drifted to 1.7499999999999998 comes back as 1.75 rather than 1.74.
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	v, _ := decimal.NewFromFloat(x).Round(Places).Float64()
	return v
}
