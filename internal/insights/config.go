package insights

import (
	"github.com/shopspring/decimal"
)

// Classification is the spending class assigned to a category label.
type Classification string

const (
	Discretionary Classification = "discretionary"
	Essential     Classification = "essential"
	Unknown       Classification = "unknown"
)

// TrendDirection describes the sign of a month-over-month spend change.
type TrendDirection string

const (
	Increase TrendDirection = "increase"
	Decrease TrendDirection = "decrease"
	Stable   TrendDirection = "stable"
)

// Vocabulary holds the two category word sets used for classification.
// Entries are matched case-insensitively.
type Vocabulary struct {
	Discretionary []string
	Essential     []string
}

// RewardTier maps a projected dollar value to a relatable outcome. Tiers are
// evaluated in descending threshold order; the table must end in a
// zero-threshold catch-all so every value maps to something.
type RewardTier struct {
	Threshold   decimal.Decimal
	Description string
}

// Config carries every tunable the pipeline depends on. Analyzers take a
// Config at construction and never mutate it, so alternate vocabularies or
// thresholds can be tested without touching package state.
type Config struct {
	Vocabulary Vocabulary

	// A reduction qualifies when it clears either threshold.
	MinReductionAmount  decimal.Decimal // currency units
	MinReductionPercent decimal.Decimal // percent

	RewardTiers []RewardTier
	Horizons    []int // projection horizons in months, shortest first
}

// DefaultConfig returns the stock vocabulary, thresholds, reward tiers and
// horizons. Callers that want different tuning should start from this and
// replace fields rather than build a Config from scratch.
func DefaultConfig() Config {
	return Config{
		Vocabulary: Vocabulary{
			Discretionary: []string{
				"eating out", "entertainment", "shopping", "coffee", "movies", "dining",
				"restaurants", "subscriptions", "gaming", "hobbies", "travel", "vacation",
				"streaming", "online shopping", "clothes", "fashion", "alcohol", "drinks",
				"social", "hangout", "leisure", "recreation", "games", "books", "music",
			},
			Essential: []string{
				"rent", "utilities", "groceries", "food", "transportation", "gas",
				"insurance", "phone", "internet", "salary", "income", "wages",
				"scholarship", "allowance", "part-time job", "work", "healthcare",
				"medication", "fitness", "gym", "tuition", "education", "school",
			},
		},
		MinReductionAmount:  decimal.NewFromInt(20),
		MinReductionPercent: decimal.NewFromInt(10),
		RewardTiers: []RewardTier{
			{decimal.NewFromInt(3000), "🎯 3 months of rent or a new Mac Pro!"},
			{decimal.NewFromInt(1500), "✈️ A July flight to LAX"},
			{decimal.NewFromInt(800), "🥋 One year sports fees"},
			{decimal.NewFromInt(500), "📚 Course materials & textbooks for semester"},
			{decimal.NewFromInt(300), "🎧 Apple Airpods Pro"},
			{decimal.NewFromInt(150), "🍱 Weekly meals out for a month"},
			{decimal.NewFromInt(75), "👚 Wardrobe upgrade"},
			{decimal.Zero, "💪 Every $1 counts toward your future"},
		},
		Horizons: []int{6, 24, 60},
	}
}
