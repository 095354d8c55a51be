// internal/gen/sample.go
package gen

import "math/rand"

// pickWeighted selects the first label whose cumulative weight reaches r.
// When the weights undershoot 1.0 (or r lands in rounding slack at the top),
// the last label wins.
func pickWeighted(r float64, choices []Weighted) string {
	upto := 0.0
	for _, c := range choices {
		if upto+c.Weight >= r {
			return c.Label
		}
		upto += c.Weight
	}
	return choices[len(choices)-1].Label
}

// weightedChoice draws one label from the table using rng.
func weightedChoice(rng *rand.Rand, choices []Weighted) string {
	return pickWeighted(rng.Float64(), choices)
}
