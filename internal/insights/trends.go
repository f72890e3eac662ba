package insights

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/ledger-insights/internal/domain"
)

// CategoryTrend compares one category's spend across its two most recent
// months with expense activity. PercentageChange keeps the signed value;
// presentation layers take the absolute value for display.
type CategoryTrend struct {
	Category         string
	PreviousMonth    domain.YearMonth
	CurrentMonth     domain.YearMonth
	PreviousSpend    decimal.Decimal
	CurrentSpend     decimal.Decimal
	AbsoluteChange   decimal.Decimal // CurrentSpend - PreviousSpend, signed
	PercentageChange decimal.Decimal // zero when PreviousSpend is zero
	Direction        TrendDirection
	Classification   Classification
}

// ExtractTrends computes month-over-month spending trends per category.
//
// Only expense transactions count, and spend is reported as a positive
// magnitude. A category needs at least two months with expense activity to
// produce a trend, and only its last two such months are compared; with gaps
// in the history those need not be adjacent calendar months, nor the two most
// recent months overall. If the whole dataset spans fewer than two distinct
// months, no trends are produced at all.
//
// The result is sorted by category name for reproducible runs, but callers
// must not rely on the ordering.
func (a *Analyzer) ExtractTrends(transactions []domain.Transaction) []CategoryTrend {
	spendByCategory := make(map[string]map[domain.YearMonth]decimal.Decimal)
	distinctMonths := make(map[domain.YearMonth]struct{})

	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		month := domain.MonthOf(tx.Date)
		distinctMonths[month] = struct{}{}

		byMonth, ok := spendByCategory[tx.Category]
		if !ok {
			byMonth = make(map[domain.YearMonth]decimal.Decimal)
			spendByCategory[tx.Category] = byMonth
		}
		byMonth[month] = byMonth[month].Add(tx.Amount.Abs())
	}

	// Global gate: trend analysis needs two distinct months across the
	// whole dataset, regardless of per-category history.
	if len(distinctMonths) < 2 {
		return nil
	}

	categories := make([]string, 0, len(spendByCategory))
	for category := range spendByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var trends []CategoryTrend
	for _, category := range categories {
		byMonth := spendByCategory[category]
		if len(byMonth) < 2 {
			continue
		}

		months := make([]domain.YearMonth, 0, len(byMonth))
		for month := range byMonth {
			months = append(months, month)
		}
		sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

		previous := months[len(months)-2]
		current := months[len(months)-1]
		trends = append(trends, a.buildTrend(category, previous, current, byMonth[previous], byMonth[current]))
	}
	return trends
}

func (a *Analyzer) buildTrend(category string, previous, current domain.YearMonth, previousSpend, currentSpend decimal.Decimal) CategoryTrend {
	absoluteChange := currentSpend.Sub(previousSpend)

	// Guard the division: a zero previous spend reports a zero percentage.
	percentageChange := decimal.Zero
	if previousSpend.Sign() > 0 {
		percentageChange = absoluteChange.Div(previousSpend).Mul(hundred)
	}

	var direction TrendDirection
	switch absoluteChange.Sign() {
	case 1:
		direction = Increase
	case -1:
		direction = Decrease
	default:
		direction = Stable
	}

	return CategoryTrend{
		Category:         category,
		PreviousMonth:    previous,
		CurrentMonth:     current,
		PreviousSpend:    previousSpend,
		CurrentSpend:     currentSpend,
		AbsoluteChange:   absoluteChange,
		PercentageChange: percentageChange,
		Direction:        direction,
		Classification:   a.Classify(category),
	}
}
