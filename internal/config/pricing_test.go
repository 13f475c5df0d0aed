package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceTable_DefaultTiers(t *testing.T) {
	table, err := ParsePriceTable(DefaultPriceTable, 7200, "Custom")
	require.NoError(t, err)

	tests := []struct {
		name        string
		amount      int64
		wantSeconds int64
		wantExact   bool
	}{
		{"rupees 100", 10000, 1800, true},
		{"rupees 300", 30000, 7200, true},
		{"rupees 500", 50000, 7200, true},
		{"rupees 999 falls back", 99900, 7200, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, exact := table.Lookup(tt.amount)
			assert.Equal(t, tt.wantSeconds, tier.Seconds)
			assert.Equal(t, tt.wantExact, exact)
		})
	}

	fallback, _ := table.Lookup(1)
	assert.Equal(t, "Custom", fallback.Label)
}

func TestParsePriceTable_GeneratedLabel(t *testing.T) {
	table, err := ParsePriceTable(" 2500:900 , ", 60, "x")
	require.NoError(t, err)

	tier, ok := table.Lookup(2500)
	assert.True(t, ok)
	assert.Equal(t, "15 Minutes", tier.Label)
}

func TestParsePriceTable_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec string
		def  int64
	}{
		{"missing seconds", "100", 60},
		{"bad amount", "x:60", 60},
		{"zero seconds", "100:0", 60},
		{"duplicate amount", "100:60,100:120", 60},
		{"non positive default", "100:60", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePriceTable(tt.spec, tt.def, "x")
			assert.Error(t, err)
		})
	}
}

func TestNewPriceTable_CopiesTiers(t *testing.T) {
	tiers := map[int64]PriceTier{100: {Label: "a", Seconds: 60}}
	table := NewPriceTable(tiers, PriceTier{Label: "d", Seconds: 1})
	tiers[100] = PriceTier{Label: "mutated", Seconds: 999}

	tier, _ := table.Lookup(100)
	assert.Equal(t, "a", tier.Label)
}
