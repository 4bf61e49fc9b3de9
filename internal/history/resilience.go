package history

import "github.com/shopspring/decimal"

var (
	crashEntryFraction = decimal.RequireFromString("0.70")
	recoveryFraction   = decimal.RequireFromString("0.85")
)

// Resilience counts drawdown/recovery cycles in a daily close series with a
// single stateful pass. A cycle starts when the close falls more than 30%
// below the running peak and scores once the close either makes a new
// all-time high or climbs back to 85% of the peak. A partial (85%) recovery
// resets the peak to the recovery price, so a later dip and recovery inside
// one long stagnation stretch can score again. Non-positive closes are
// skipped.
func (s Series) Resilience() int {
	score := 0
	inCrash := false
	peak := decimal.Zero
	allTimeHigh := decimal.Zero

	for _, p := range s {
		price := p.Close
		if price.LessThanOrEqual(decimal.Zero) {
			continue
		}

		if !inCrash {
			if price.GreaterThan(peak) {
				peak = price
			}
			if price.GreaterThan(allTimeHigh) {
				allTimeHigh = price
			}
			if price.LessThan(peak.Mul(crashEntryFraction)) {
				inCrash = true
			}
			continue
		}

		switch {
		case price.GreaterThan(allTimeHigh):
			score++
			inCrash = false
			peak = price
			allTimeHigh = price
		case price.GreaterThanOrEqual(peak.Mul(recoveryFraction)):
			score++
			inCrash = false
			// partial recovery: the peak restarts at the recovery
			// price, not the old high
			peak = price
		}
	}

	return score
}
