package history

import (
	"sort"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// DefaultEmaPeriod is the lookback of the weekly trend indicator.
const DefaultEmaPeriod = 30

type Point struct {
	Date  time.Time
	Close decimal.Decimal
}

// Series is a daily close series for one instrument. Callers are expected
// to pass it in ascending date order; Sort restores the invariant after
// ad hoc appends.
type Series []Point

func (s Series) Sort() {
	sort.Slice(s, func(i, j int) bool { return s[i].Date.Before(s[j].Date) })
}

// Extremes returns the all-time high and low of the series. ok is false
// for an empty series.
func (s Series) Extremes() (high, low decimal.Decimal, ok bool) {
	if len(s) == 0 {
		return decimal.Zero, decimal.Zero, false
	}
	data := make(stats.Float64Data, len(s))
	for i, p := range s {
		data[i] = p.Close.InexactFloat64()
	}
	maxVal, err := stats.Max(data)
	if err != nil {
		return decimal.Zero, decimal.Zero, false
	}
	minVal, err := stats.Min(data)
	if err != nil {
		return decimal.Zero, decimal.Zero, false
	}
	return decimal.NewFromFloat(maxVal), decimal.NewFromFloat(minVal), true
}

// ResampleWeekly collapses the series to one point per ISO (year, week),
// keeping the last observed close of each week.
func (s Series) ResampleWeekly() Series {
	type weekKey struct {
		year int
		week int
	}
	last := map[weekKey]Point{}
	order := []weekKey{}
	for _, p := range s {
		y, w := p.Date.ISOWeek()
		k := weekKey{y, w}
		if _, seen := last[k]; !seen {
			order = append(order, k)
		}
		last[k] = p
	}
	out := make(Series, 0, len(order))
	for _, k := range order {
		out = append(out, last[k])
	}
	out.Sort()
	return out
}

// Ema computes an exponential moving average over the series with the given
// period. It returns nil when fewer than period points exist. The seed is
// the simple mean of the first period closes; subsequent points are folded
// in with k = 2/(period+1).
func (s Series) Ema(period int) *decimal.Decimal {
	if period <= 0 || len(s) < period {
		return nil
	}
	seed := make(stats.Float64Data, period)
	for i := 0; i < period; i++ {
		seed[i] = s[i].Close.InexactFloat64()
	}
	mean, err := stats.Mean(seed)
	if err != nil {
		return nil
	}

	k := 2.0 / float64(period+1)
	ema := mean
	for _, p := range s[period:] {
		ema = p.Close.InexactFloat64()*k + ema*(1.0-k)
	}
	out := decimal.NewFromFloat(ema)
	return &out
}
