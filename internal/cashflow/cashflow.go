// Package cashflow derives descriptive statistics from a transaction ledger:
// monthly income/expense/net totals, cumulative savings, emergency-fund
// runway, and savings-goal planning. All functions are pure and operate on
// in-memory data.
package cashflow

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/ledger-insights/internal/domain"
)

// MonthlySummary aggregates one calendar month of ledger activity. Expenses
// are reported as a positive magnitude.
type MonthlySummary struct {
	Month    domain.YearMonth
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// Summarize groups transactions by calendar month and totals income,
// expenses and net cash flow. The result is sorted chronologically.
func Summarize(transactions []domain.Transaction) []MonthlySummary {
	byMonth := make(map[domain.YearMonth]*MonthlySummary)
	for _, tx := range transactions {
		month := domain.MonthOf(tx.Date)
		summary, ok := byMonth[month]
		if !ok {
			summary = &MonthlySummary{Month: month}
			byMonth[month] = summary
		}
		if tx.IsExpense() {
			summary.Expenses = summary.Expenses.Add(tx.Amount.Abs())
		} else {
			summary.Income = summary.Income.Add(tx.Amount)
		}
		summary.Net = summary.Net.Add(tx.Amount)
	}

	summaries := make([]MonthlySummary, 0, len(byMonth))
	for _, summary := range byMonth {
		summaries = append(summaries, *summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Month.Before(summaries[j].Month)
	})
	return summaries
}

// TotalSavings is the cumulative net cash flow over the whole ledger,
// floored at zero: a ledger that ends in deficit has no savings to draw on.
func TotalSavings(transactions []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		total = total.Add(tx.Amount)
	}
	if total.Sign() < 0 {
		return decimal.Zero
	}
	return total
}

// Runway reports how many months the given savings cover at the average
// monthly expense level. With no expense history the runway is infinite.
func Runway(summaries []MonthlySummary, savings decimal.Decimal) float64 {
	average := averageExpenses(summaries)
	if average.IsZero() {
		return math.Inf(1)
	}
	months, _ := savings.Div(average).Float64()
	return months
}

func averageExpenses(summaries []MonthlySummary) decimal.Decimal {
	if len(summaries) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, summary := range summaries {
		total = total.Add(summary.Expenses)
	}
	return total.Div(decimal.NewFromInt(int64(len(summaries))))
}

func averageIncome(summaries []MonthlySummary) decimal.Decimal {
	if len(summaries) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, summary := range summaries {
		total = total.Add(summary.Income)
	}
	return total.Div(decimal.NewFromInt(int64(len(summaries))))
}

func averageNet(summaries []MonthlySummary) decimal.Decimal {
	if len(summaries) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, summary := range summaries {
		total = total.Add(summary.Net)
	}
	return total.Div(decimal.NewFromInt(int64(len(summaries))))
}

// ProjectWithSavings projects future months at historical average income and
// expenses, with monthlySavings folded in as an additional expense. The
// projection starts the month after `from`. An empty history projects
// nothing.
func ProjectWithSavings(summaries []MonthlySummary, from domain.YearMonth, monthsAhead int, monthlySavings decimal.Decimal) []MonthlySummary {
	if len(summaries) == 0 || monthsAhead <= 0 {
		return nil
	}

	income := averageIncome(summaries)
	expenses := averageExpenses(summaries).Add(monthlySavings)
	net := income.Sub(expenses)

	projected := make([]MonthlySummary, 0, monthsAhead)
	month := from
	for i := 0; i < monthsAhead; i++ {
		month = month.Next()
		projected = append(projected, MonthlySummary{
			Month:    month,
			Income:   income,
			Expenses: expenses,
			Net:      net,
		})
	}
	return projected
}
