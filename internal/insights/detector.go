package insights

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GratificationEvent is a trend that passed the detection filter: a
// discretionary category whose spend dropped by at least the configured
// dollar or percentage threshold. SavedAmount is always positive.
type GratificationEvent struct {
	Trend       CategoryTrend
	SavedAmount decimal.Decimal
	Narrative   string
}

// Detect filters trends down to delayed-gratification events.
//
// A trend qualifies when its classification is Discretionary, its direction
// is Decrease, and the reduction clears either the absolute-dollar or the
// percentage threshold (both are >= comparisons). Empty input or no
// qualifying trend yields an empty result, never an error.
func (a *Analyzer) Detect(trends []CategoryTrend) []GratificationEvent {
	var events []GratificationEvent
	for _, trend := range trends {
		if trend.Classification != Discretionary || trend.Direction != Decrease {
			continue
		}
		if trend.AbsoluteChange.Abs().LessThan(a.cfg.MinReductionAmount) &&
			trend.PercentageChange.Abs().LessThan(a.cfg.MinReductionPercent) {
			continue
		}

		// AbsoluteChange is negative under Decrease, so the saved
		// amount is its negation.
		saved := trend.AbsoluteChange.Neg()
		events = append(events, GratificationEvent{
			Trend:       trend,
			SavedAmount: saved,
			Narrative:   narrative(trend, saved),
		})
	}
	return events
}

func narrative(trend CategoryTrend, saved decimal.Decimal) string {
	title := cases.Title(language.English).String(trend.Category)
	return fmt.Sprintf(
		"You chose not to spend $%s on %s this month.\nThis reflects a %s%% reduction compared to last month.",
		saved.StringFixed(2), title, trend.PercentageChange.Abs().Round(0))
}
