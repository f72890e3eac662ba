package cashflow

import (
	"errors"
	"math"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/dvloznov/ledger-insights/internal/domain"
)

func tx(date string, category string, amount float64) domain.Transaction {
	d, err := civil.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return domain.Transaction{
		Date:     d,
		Category: category,
		Amount:   decimal.NewFromFloat(amount),
		Currency: "USD",
	}
}

func sampleLedger() []domain.Transaction {
	return []domain.Transaction{
		tx("2025-06-01", "salary", 2000),
		tx("2025-06-03", "rent", -900),
		tx("2025-06-10", "dining", -100),
		tx("2025-07-01", "salary", 2000),
		tx("2025-07-03", "rent", -900),
		tx("2025-07-12", "dining", -60),
	}
}

func TestSummarize(t *testing.T) {
	summaries := Summarize(sampleLedger())
	if len(summaries) != 2 {
		t.Fatalf("expected 2 monthly summaries, got %d", len(summaries))
	}

	june := summaries[0]
	if june.Month.String() != "2025-06" {
		t.Errorf("first month = %s, want 2025-06 (chronological order)", june.Month)
	}
	if !june.Income.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("June income = %s, want 2000", june.Income)
	}
	if !june.Expenses.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("June expenses = %s, want 1000", june.Expenses)
	}
	if !june.Net.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("June net = %s, want 1000", june.Net)
	}

	july := summaries[1]
	if !july.Net.Equal(decimal.NewFromInt(1040)) {
		t.Errorf("July net = %s, want 1040", july.Net)
	}
}

func TestSummarize_Empty(t *testing.T) {
	if got := Summarize(nil); len(got) != 0 {
		t.Errorf("Summarize(nil) = %v, want empty", got)
	}
}

func TestTotalSavings(t *testing.T) {
	if got := TotalSavings(sampleLedger()); !got.Equal(decimal.NewFromInt(2040)) {
		t.Errorf("TotalSavings = %s, want 2040", got)
	}
}

func TestTotalSavings_FlooredAtZero(t *testing.T) {
	ledger := []domain.Transaction{
		tx("2025-06-01", "salary", 100),
		tx("2025-06-05", "rent", -900),
	}
	if got := TotalSavings(ledger); !got.IsZero() {
		t.Errorf("TotalSavings = %s, want 0 for a ledger in deficit", got)
	}
}

func TestRunway(t *testing.T) {
	summaries := Summarize(sampleLedger())

	// Average monthly expenses are (1000+960)/2 = 980.
	got := Runway(summaries, decimal.NewFromInt(1960))
	if math.Abs(got-2.0) > 1e-9 {
		t.Errorf("Runway = %v, want 2.0", got)
	}
}

func TestRunway_NoExpenses(t *testing.T) {
	summaries := Summarize([]domain.Transaction{
		tx("2025-06-01", "salary", 2000),
	})
	if got := Runway(summaries, decimal.NewFromInt(500)); !math.IsInf(got, 1) {
		t.Errorf("Runway = %v, want +Inf with no expense history", got)
	}
}

func TestProjectWithSavings(t *testing.T) {
	summaries := Summarize(sampleLedger())
	from := domain.YearMonth{Year: 2025, Month: 7}

	projected := ProjectWithSavings(summaries, from, 3, decimal.NewFromInt(100))
	if len(projected) != 3 {
		t.Fatalf("expected 3 projected months, got %d", len(projected))
	}
	if projected[0].Month.String() != "2025-08" {
		t.Errorf("projection starts at %s, want 2025-08", projected[0].Month)
	}
	if projected[2].Month.String() != "2025-10" {
		t.Errorf("projection ends at %s, want 2025-10", projected[2].Month)
	}

	// Averages: income 2000, expenses 980 + 100 savings.
	if !projected[0].Expenses.Equal(decimal.NewFromInt(1080)) {
		t.Errorf("projected expenses = %s, want 1080", projected[0].Expenses)
	}
	if !projected[0].Net.Equal(decimal.NewFromInt(920)) {
		t.Errorf("projected net = %s, want 920", projected[0].Net)
	}
}

func TestProjectWithSavings_EmptyHistory(t *testing.T) {
	from := domain.YearMonth{Year: 2025, Month: 7}
	if got := ProjectWithSavings(nil, from, 6, decimal.NewFromInt(100)); got != nil {
		t.Errorf("expected nil projection for empty history, got %v", got)
	}
}

func TestPlanGoal(t *testing.T) {
	summaries := Summarize(sampleLedger())
	today := civil.Date{Year: 2025, Month: 7, Day: 15}
	target := civil.Date{Year: 2026, Month: 7, Day: 15}

	plan, err := PlanGoal(decimal.NewFromInt(6000), target, today, summaries)
	if err != nil {
		t.Fatalf("PlanGoal failed: %v", err)
	}

	// 365 days is about 12 months, so roughly $500/month. The average net
	// cash flow is 1020, so the goal is achievable.
	if plan.MonthsToTarget < 11.5 || plan.MonthsToTarget > 12.5 {
		t.Errorf("MonthsToTarget = %v, want ~12", plan.MonthsToTarget)
	}
	if !plan.Achievable {
		t.Errorf("goal should be achievable: required %s vs average net 1020", plan.RequiredMonthly)
	}
	if len(plan.Projected) != int(plan.MonthsToTarget) {
		t.Errorf("projected %d months, want %d", len(plan.Projected), int(plan.MonthsToTarget))
	}
}

func TestPlanGoal_Unachievable(t *testing.T) {
	summaries := Summarize(sampleLedger())
	today := civil.Date{Year: 2025, Month: 7, Day: 15}
	target := civil.Date{Year: 2025, Month: 10, Day: 15}

	plan, err := PlanGoal(decimal.NewFromInt(100000), target, today, summaries)
	if err != nil {
		t.Fatalf("PlanGoal failed: %v", err)
	}
	if plan.Achievable {
		t.Errorf("goal should not be achievable: required %s", plan.RequiredMonthly)
	}
}

func TestPlanGoal_TargetInPast(t *testing.T) {
	today := civil.Date{Year: 2025, Month: 7, Day: 15}
	target := civil.Date{Year: 2025, Month: 7, Day: 15}

	_, err := PlanGoal(decimal.NewFromInt(1000), target, today, nil)
	if !errors.Is(err, ErrTargetInPast) {
		t.Errorf("err = %v, want ErrTargetInPast", err)
	}
}
