// Package insights detects and rewards delayed-gratification behavior in a
// transaction ledger. The pipeline runs in three stages: month-over-month
// category trends, detection of qualifying discretionary reductions, and
// future-value projection mapped to reward tiers. Every stage is a pure
// function of its input; nothing persists between calls.
package insights

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Analyzer runs the delayed-gratification pipeline with a fixed Config.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	cfg Config

	// normalized vocabulary, built once at construction
	discretionaryExact map[string]struct{}
	essentialExact     map[string]struct{}
	discretionary      []string
	essential          []string

	tiers []RewardTier // descending by threshold
}

// New constructs an Analyzer. The vocabulary is normalized (lowercased,
// trimmed) and the reward table is sorted descending so lookups are a single
// forward scan.
func New(cfg Config) *Analyzer {
	a := &Analyzer{
		cfg:                cfg,
		discretionaryExact: make(map[string]struct{}, len(cfg.Vocabulary.Discretionary)),
		essentialExact:     make(map[string]struct{}, len(cfg.Vocabulary.Essential)),
	}
	for _, entry := range cfg.Vocabulary.Discretionary {
		normalized := normalize(entry)
		a.discretionaryExact[normalized] = struct{}{}
		a.discretionary = append(a.discretionary, normalized)
	}
	for _, entry := range cfg.Vocabulary.Essential {
		normalized := normalize(entry)
		a.essentialExact[normalized] = struct{}{}
		a.essential = append(a.essential, normalized)
	}

	a.tiers = append(a.tiers, cfg.RewardTiers...)
	sort.SliceStable(a.tiers, func(i, j int) bool {
		return a.tiers[i].Threshold.GreaterThan(a.tiers[j].Threshold)
	})
	return a
}

// Config returns the configuration the Analyzer was built with.
func (a *Analyzer) Config() Config {
	return a.cfg
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

var hundred = decimal.NewFromInt(100)
