package cashflow

import (
	"errors"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/dvloznov/ledger-insights/internal/domain"
)

// ErrTargetInPast is returned when a savings goal's target date is not in
// the future.
var ErrTargetInPast = errors.New("cashflow: target date is in the past")

// averageDaysPerMonth converts a day span to an approximate month count.
const averageDaysPerMonth = 30.44

// GoalPlan describes what it takes to hit a savings goal by a target date.
type GoalPlan struct {
	RequiredMonthly decimal.Decimal
	MonthsToTarget  float64
	Achievable      bool // required monthly amount fits the average net cash flow
	Projected       []MonthlySummary
}

// PlanGoal computes the monthly savings required to reach goal by target,
// checks achievability against the historical average net cash flow, and
// attaches a projection with the required savings treated as an expense.
func PlanGoal(goal decimal.Decimal, target, today civil.Date, summaries []MonthlySummary) (GoalPlan, error) {
	days := target.DaysSince(today)
	if days <= 0 {
		return GoalPlan{}, ErrTargetInPast
	}

	monthsToTarget := float64(days) / averageDaysPerMonth
	required := goal.Div(decimal.NewFromFloat(monthsToTarget))

	return GoalPlan{
		RequiredMonthly: required,
		MonthsToTarget:  monthsToTarget,
		Achievable:      required.LessThanOrEqual(averageNet(summaries)),
		Projected:       ProjectWithSavings(summaries, domain.MonthOf(today), int(monthsToTarget), required),
	}, nil
}
