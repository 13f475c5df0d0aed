package config

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultPriceTable maps amounts in paise to granted seconds and a package label.
const DefaultPriceTable = "10000:1800:Starter,30000:7200:Pro,50000:7200:Premium"

// PriceTier is the time grant bought by one exact payment amount.
type PriceTier struct {
	Label   string
	Seconds int64
}

// PriceTable maps a paid amount (minor currency units) to a time grant.
// Unrecognized amounts fall back to the default tier.
type PriceTable struct {
	tiers    map[int64]PriceTier
	fallback PriceTier
}

// NewPriceTable builds a table from explicit tiers.
func NewPriceTable(tiers map[int64]PriceTier, fallback PriceTier) *PriceTable {
	copied := make(map[int64]PriceTier, len(tiers))
	for amount, tier := range tiers {
		copied[amount] = tier
	}
	return &PriceTable{tiers: copied, fallback: fallback}
}

// ParsePriceTable parses "amount:seconds[:label]" entries separated by commas.
func ParsePriceTable(spec string, defaultSeconds int64, defaultLabel string) (*PriceTable, error) {
	if defaultSeconds <= 0 {
		return nil, fmt.Errorf("default price seconds must be positive, got %d", defaultSeconds)
	}

	tiers := make(map[int64]PriceTier)
	for _, raw := range strings.Split(spec, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		parts := strings.SplitN(raw, ":", 3)
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid price entry %q: want amount:seconds[:label]", raw)
		}

		amount, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil || amount <= 0 {
			return nil, fmt.Errorf("invalid price amount in %q", raw)
		}
		seconds, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid price seconds in %q", raw)
		}
		if _, dup := tiers[amount]; dup {
			return nil, fmt.Errorf("duplicate price amount %d", amount)
		}

		label := fmt.Sprintf("%d Minutes", seconds/60)
		if len(parts) == 3 && strings.TrimSpace(parts[2]) != "" {
			label = strings.TrimSpace(parts[2])
		}
		tiers[amount] = PriceTier{Label: label, Seconds: seconds}
	}

	return NewPriceTable(tiers, PriceTier{Label: defaultLabel, Seconds: defaultSeconds}), nil
}

// Lookup returns the tier for amount and whether it was an exact match.
func (p *PriceTable) Lookup(amount int64) (PriceTier, bool) {
	if tier, ok := p.tiers[amount]; ok {
		return tier, true
	}
	return p.fallback, false
}
