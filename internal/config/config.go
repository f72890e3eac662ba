// Package config loads optional YAML tuning for the insights pipeline.
// Every field overlays DefaultConfig, so a tuning file only needs to name
// what it changes.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/dvloznov/ledger-insights/internal/insights"
)

// file mirrors the YAML document shape. Zero values mean "keep the default".
type file struct {
	Thresholds struct {
		MinReductionAmount  float64 `yaml:"min_reduction_amount"`
		MinReductionPercent float64 `yaml:"min_reduction_percent"`
	} `yaml:"thresholds"`
	Vocabulary struct {
		Discretionary []string `yaml:"discretionary"`
		Essential     []string `yaml:"essential"`
	} `yaml:"vocabulary"`
	RewardTiers []struct {
		Threshold   float64 `yaml:"threshold"`
		Description string  `yaml:"description"`
	} `yaml:"reward_tiers"`
	Horizons []int `yaml:"horizons"`
}

// Load returns the insight configuration, overlaying the YAML file at path
// onto the defaults. An empty path means "no tuning file" and yields the
// defaults as-is. Unknown YAML fields are rejected.
func Load(path string) (insights.Config, error) {
	cfg := insights.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return insights.Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var f file
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return insights.Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if f.Thresholds.MinReductionAmount > 0 {
		cfg.MinReductionAmount = decimal.NewFromFloat(f.Thresholds.MinReductionAmount)
	}
	if f.Thresholds.MinReductionPercent > 0 {
		cfg.MinReductionPercent = decimal.NewFromFloat(f.Thresholds.MinReductionPercent)
	}
	if len(f.Vocabulary.Discretionary) > 0 {
		cfg.Vocabulary.Discretionary = f.Vocabulary.Discretionary
	}
	if len(f.Vocabulary.Essential) > 0 {
		cfg.Vocabulary.Essential = f.Vocabulary.Essential
	}
	if len(f.Horizons) > 0 {
		cfg.Horizons = f.Horizons
	}
	if len(f.RewardTiers) > 0 {
		tiers := make([]insights.RewardTier, 0, len(f.RewardTiers))
		hasCatchAll := false
		for _, tier := range f.RewardTiers {
			if tier.Threshold == 0 {
				hasCatchAll = true
			}
			tiers = append(tiers, insights.RewardTier{
				Threshold:   decimal.NewFromFloat(tier.Threshold),
				Description: tier.Description,
			})
		}
		if !hasCatchAll {
			return insights.Config{}, fmt.Errorf("config: %s: reward_tiers must include a zero-threshold catch-all", path)
		}
		cfg.RewardTiers = tiers
	}

	return cfg, nil
}
