package insights

import "github.com/shopspring/decimal"

// Projection is a saved amount extrapolated to a time horizon. The math is a
// plain multiplication: no compounding, no time-value-of-money discounting.
type Projection struct {
	Months      int
	FutureValue decimal.Decimal
}

// Project extrapolates savedAmount across the configured horizons, shortest
// first.
func (a *Analyzer) Project(savedAmount decimal.Decimal) []Projection {
	projections := make([]Projection, 0, len(a.cfg.Horizons))
	for _, months := range a.cfg.Horizons {
		projections = append(projections, Projection{
			Months:      months,
			FutureValue: savedAmount.Mul(decimal.NewFromInt(int64(months))),
		})
	}
	return projections
}

// MapToReward returns the description of the highest reward tier whose
// threshold is at or below futureValue. Ties at a boundary map to that tier.
// The zero-threshold catch-all guarantees a non-empty result for any
// non-negative value.
func (a *Analyzer) MapToReward(futureValue decimal.Decimal) string {
	for _, tier := range a.tiers {
		if futureValue.GreaterThanOrEqual(tier.Threshold) {
			return tier.Description
		}
	}
	return a.tiers[len(a.tiers)-1].Description
}
