package insights

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/ledger-insights/internal/domain"
)

// Insights is the composed result of the full pipeline, ready for rendering.
// Blocks holds one formatted text block per detected event; Summary is the
// aggregate message, or a fallback for the two degenerate cases.
type Insights struct {
	Trends  []CategoryTrend
	Events  []GratificationEvent
	Blocks  []string
	Summary string
}

const (
	insufficientHistoryMessage = "Not enough historical data to detect spending patterns. Check back next month!"
	noReductionMessage         = "No significant spending reductions detected this month. Keep building your habits!"
)

// Compose runs trend extraction and detection over the ledger, then formats
// a narrative block per event and an aggregate summary. It is a pure function
// of its input: calling it twice on the same ledger yields identical results.
func (a *Analyzer) Compose(transactions []domain.Transaction) Insights {
	trends := a.ExtractTrends(transactions)
	if len(trends) == 0 {
		return Insights{Summary: insufficientHistoryMessage}
	}

	events := a.Detect(trends)
	if len(events) == 0 {
		return Insights{Trends: trends, Summary: noReductionMessage}
	}

	blocks := make([]string, 0, len(events))
	totalSaved := decimal.Zero
	for _, event := range events {
		blocks = append(blocks, a.formatBlock(event))
		totalSaved = totalSaved.Add(event.SavedAmount)
	}

	return Insights{
		Trends:  trends,
		Events:  events,
		Blocks:  blocks,
		Summary: formatSummary(totalSaved, totalExpenses(transactions)),
	}
}

// ruleWidth is the width of the "=" rule lines in rendered blocks.
const ruleWidth = 60

func (a *Analyzer) formatBlock(event GratificationEvent) string {
	rule := strings.Repeat("=", ruleWidth)
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n", rule)
	fmt.Fprintf(&b, "DELAYED GRATIFICATION INSIGHT: %s\n", strings.ToUpper(event.Trend.Category))
	fmt.Fprintf(&b, "%s\n\n", rule)
	fmt.Fprintf(&b, "%s\n\n", event.Narrative)

	projections := a.Project(event.SavedAmount)
	b.WriteString("If this behavior continues:\n")
	for _, projection := range projections {
		fmt.Fprintf(&b, "  %s: ~$%s\n", horizonLabel(projection.Months), formatAmount(projection.FutureValue))
	}

	if len(projections) > 0 {
		// The shortest horizon gives the most immediately reachable reward.
		topReward := a.MapToReward(projections[0].FutureValue)
		fmt.Fprintf(&b, "\nThis could fund:\n  %s\n", topReward)
	}
	return b.String()
}

func formatSummary(totalSaved, totalExpenses decimal.Decimal) string {
	rule := strings.Repeat("=", ruleWidth)
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n", rule)
	b.WriteString("MONTHLY DELAYED GRATIFICATION SUMMARY\n")
	fmt.Fprintf(&b, "%s\n\n", rule)
	fmt.Fprintf(&b, "✨ This month, you intentionally avoided $%s in discretionary spending.\n", formatAmount(totalSaved))

	if totalExpenses.Sign() > 0 {
		impact := totalSaved.Div(totalExpenses).Mul(hundred)
		fmt.Fprintf(&b, "💪 That's a %s%% reduction in your spending.\n", impact.StringFixed(1))
	}

	b.WriteString("\n🎯 You traded short-term pleasure for long-term flexibility.\n")
	b.WriteString("💡 Keep it up! Consistency builds wealth.\n")
	return b.String()
}

func horizonLabel(months int) string {
	switch months {
	case 6:
		return "In 6 months"
	case 24:
		return "In 2 years"
	case 60:
		return "In 5 years"
	default:
		return fmt.Sprintf("In %d months", months)
	}
}

func totalExpenses(transactions []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.IsExpense() {
			total = total.Add(tx.Amount.Abs())
		}
	}
	return total
}

// formatAmount renders a decimal with two fraction digits and thousands
// separators, e.g. 2640 -> "2,640.00".
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}
	return sign + grouped.String() + "." + fracPart
}
