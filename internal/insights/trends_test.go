package insights

import (
	"testing"
	"time"

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

func findTrend(t *testing.T, trends []CategoryTrend, category string) CategoryTrend {
	t.Helper()
	for _, trend := range trends {
		if trend.Category == category {
			return trend
		}
	}
	t.Fatalf("no trend for category %q in %v", category, trends)
	return CategoryTrend{}
}

func TestExtractTrends_SingleMonthGlobally(t *testing.T) {
	a := New(DefaultConfig())
	transactions := []domain.Transaction{
		tx("2025-07-01", "dining", -50),
		tx("2025-07-15", "rent", -900),
		tx("2025-07-20", "salary", 2000),
	}

	if got := a.ExtractTrends(transactions); len(got) != 0 {
		t.Errorf("expected no trends for single-month dataset, got %v", got)
	}
}

func TestExtractTrends_CategoryWithOneMonthOmitted(t *testing.T) {
	a := New(DefaultConfig())
	transactions := []domain.Transaction{
		tx("2025-06-03", "dining", -100),
		tx("2025-07-03", "dining", -80),
		tx("2025-07-10", "books", -30), // one month only
	}

	trends := a.ExtractTrends(transactions)
	if len(trends) != 1 {
		t.Fatalf("expected 1 trend, got %d: %v", len(trends), trends)
	}
	if trends[0].Category != "dining" {
		t.Errorf("expected dining trend, got %q", trends[0].Category)
	}
}

func TestExtractTrends_IncomeIgnored(t *testing.T) {
	a := New(DefaultConfig())
	transactions := []domain.Transaction{
		tx("2025-06-01", "salary", 2000),
		tx("2025-07-01", "salary", 2000),
	}

	if got := a.ExtractTrends(transactions); len(got) != 0 {
		t.Errorf("income-only ledger should produce no trends, got %v", got)
	}
}

func TestExtractTrends_ComputesChange(t *testing.T) {
	a := New(DefaultConfig())
	transactions := []domain.Transaction{
		tx("2025-06-02", "eating out", -100),
		tx("2025-06-20", "eating out", -50),
		tx("2025-07-04", "eating out", -40),
	}

	trends := a.ExtractTrends(transactions)
	trend := findTrend(t, trends, "eating out")

	if got := trend.PreviousSpend; !got.Equal(decimal.NewFromInt(150)) {
		t.Errorf("PreviousSpend = %s, want 150", got)
	}
	if got := trend.CurrentSpend; !got.Equal(decimal.NewFromInt(40)) {
		t.Errorf("CurrentSpend = %s, want 40", got)
	}
	if got := trend.AbsoluteChange; !got.Equal(decimal.NewFromInt(-110)) {
		t.Errorf("AbsoluteChange = %s, want -110", got)
	}
	// -110 / 150 * 100 = -73.33...
	if got := trend.PercentageChange.Round(1); !got.Equal(decimal.NewFromFloat(-73.3)) {
		t.Errorf("PercentageChange = %s, want ~-73.3", trend.PercentageChange)
	}
	if trend.Direction != Decrease {
		t.Errorf("Direction = %q, want decrease", trend.Direction)
	}
	if trend.Classification != Discretionary {
		t.Errorf("Classification = %q, want discretionary", trend.Classification)
	}
	if trend.PreviousMonth.String() != "2025-06" || trend.CurrentMonth.String() != "2025-07" {
		t.Errorf("months = %s/%s, want 2025-06/2025-07", trend.PreviousMonth, trend.CurrentMonth)
	}
}

// A category with a gap compares its own last two active months, which need
// not be adjacent or the most recent calendar months overall.
func TestExtractTrends_GapMonthsUseLastTwoWithData(t *testing.T) {
	a := New(DefaultConfig())
	transactions := []domain.Transaction{
		tx("2025-01-05", "hobbies", -50),
		tx("2025-03-05", "hobbies", -30),
		tx("2025-04-05", "rent", -900),
		tx("2025-03-10", "rent", -900),
	}

	trends := a.ExtractTrends(transactions)
	trend := findTrend(t, trends, "hobbies")

	if trend.PreviousMonth.String() != "2025-01" || trend.CurrentMonth.String() != "2025-03" {
		t.Errorf("months = %s/%s, want 2025-01/2025-03", trend.PreviousMonth, trend.CurrentMonth)
	}
	if !trend.AbsoluteChange.Equal(decimal.NewFromInt(-20)) {
		t.Errorf("AbsoluteChange = %s, want -20", trend.AbsoluteChange)
	}
}

func TestExtractTrends_StableDirection(t *testing.T) {
	a := New(DefaultConfig())
	transactions := []domain.Transaction{
		tx("2025-06-01", "groceries", -200),
		tx("2025-07-01", "groceries", -200),
	}

	trend := findTrend(t, a.ExtractTrends(transactions), "groceries")
	if trend.Direction != Stable {
		t.Errorf("Direction = %q, want stable", trend.Direction)
	}
	if !trend.AbsoluteChange.IsZero() || !trend.PercentageChange.IsZero() {
		t.Errorf("changes = %s/%s, want 0/0", trend.AbsoluteChange, trend.PercentageChange)
	}
}

func TestBuildTrend_ZeroPreviousSpend(t *testing.T) {
	a := New(DefaultConfig())
	june := domain.YearMonth{Year: 2025, Month: time.June}
	july := domain.YearMonth{Year: 2025, Month: time.July}

	trend := a.buildTrend("dining", june, july, decimal.Zero, decimal.NewFromInt(40))
	if !trend.PercentageChange.IsZero() {
		t.Errorf("PercentageChange = %s, want 0 when previous spend is 0", trend.PercentageChange)
	}
	if trend.Direction != Increase {
		t.Errorf("Direction = %q, want increase", trend.Direction)
	}
}
