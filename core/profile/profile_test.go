package profile

import (
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focusgen/core/focus"
)

func TestParseProfile(t *testing.T) {
	tests := []struct {
		in      string
		want    Profile
		wantErr bool
	}{
		{"Greenfield", Greenfield, false},
		{"greenfield", Greenfield, false},
		{"Large Business", LargeBusiness, false},
		{"large-business", LargeBusiness, false},
		{"LARGE_BUSINESS", LargeBusiness, false},
		{"enterprise", Enterprise, false},
		{"startup", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseProfile(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDistribution(t *testing.T) {
	tests := []struct {
		in   string
		want Distribution
	}{
		{"Evenly Distributed", EvenlyDistributed},
		{"evenly-distributed", EvenlyDistributed},
		{"even", EvenlyDistributed},
		{"ML-Focused", MLFocused},
		{"ml", MLFocused},
		{"data_intensive", DataIntensive},
		{"Media-Intensive", MediaIntensive},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDistribution(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseDistribution("gpu-heavy")
	assert.Error(t, err)
}

// TestCategoryWeightsSumToOne checks every table covers the same six
// categories with weights summing to 1
func TestCategoryWeightsSumToOne(t *testing.T) {
	for _, d := range Distributions() {
		t.Run(string(d), func(t *testing.T) {
			weights := d.CategoryWeights()
			require.Len(t, weights, 6)

			var sum float64
			var cats []string
			for _, w := range weights {
				sum += w.Weight
				cats = append(cats, w.Category)
			}
			assert.InDelta(t, 1.0, sum, 1e-9)
			assert.ElementsMatch(t, []string{
				focus.CategoryCompute, focus.CategoryStorage, focus.CategoryDatabases,
				focus.CategoryNetworking, focus.CategoryAIML, focus.CategoryOther,
			}, cats)
		})
	}
}

func TestTotalCostWithinRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for _, p := range Profiles() {
		for _, d := range Distributions() {
			r := p.CostRange()
			lo, hi := r.Min, r.Max
			if m, ok := d.CostMultiplier(); ok {
				lo *= m.Min
				hi *= m.Max
			}
			for i := 0; i < 50; i++ {
				total := TotalCost(p, d, rng)
				assert.True(t, total.GreaterThanOrEqual(decimal.NewFromFloat(lo).Round(2)), "%s/%s: %s < %f", p, d, total, lo)
				assert.True(t, total.LessThanOrEqual(decimal.NewFromFloat(hi).Round(2)), "%s/%s: %s > %f", p, d, total, hi)
			}
		}
	}
}

func TestReweighting(t *testing.T) {
	_, ok := EvenlyDistributed.Reweighting()
	assert.False(t, ok)

	ml, ok := MLFocused.Reweighting()
	require.True(t, ok)
	assert.True(t, ml.Boosts(focus.CategoryAIML))
	assert.False(t, ml.Boosts(focus.CategoryStorage))
	assert.Equal(t, focus.CategoryCompute, ml.FillCategory)

	data, ok := DataIntensive.Reweighting()
	require.True(t, ok)
	assert.True(t, data.Boosts(focus.CategoryDatabases))
	assert.Equal(t, 1.0, data.FillProbability)
}
