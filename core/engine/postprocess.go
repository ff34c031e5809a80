package engine

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"focusgen/core/focus"
	"focusgen/core/profile"
	"focusgen/core/table"
)

// boostedColumns are scaled by a distribution's reweighting, one factor
// per column per table
var boostedColumns = []string{focus.BilledCost, focus.EffectiveCost}

// nullCommitmentDependents clears every commitment discount column on rows
// without a CommitmentDiscountId. Returns the number of values cleared.
func nullCommitmentDependents(tbl *table.Table) int {
	if !tbl.HasColumn(focus.CommitmentDiscountId) {
		return 0
	}

	cleared := 0
	for _, r := range tbl.Rows {
		if !r.IsNull(focus.CommitmentDiscountId) {
			continue
		}
		for _, col := range focus.CommitmentDiscountColumns {
			if tbl.HasColumn(col) && !r.IsNull(col) {
				r.Replace(col, nil)
				cleared++
			}
		}
	}
	return cleared
}

// reweightStats summarizes one reweighting pass
type reweightStats struct {
	Boosted int
	Filled  int
	Factors map[string]decimal.Decimal
}

// reweight applies the distribution's whole-table pass: boosted categories
// get their cost columns scaled and rows of the fill category with no
// ResourceType get one from the distribution vocabulary
func reweight(tbl *table.Table, d profile.Distribution, rng *rand.Rand) reweightStats {
	stats := reweightStats{Factors: make(map[string]decimal.Decimal)}
	rw, ok := d.Reweighting()
	if !ok || !tbl.HasColumn(focus.ServiceCategory) {
		return stats
	}

	for _, col := range boostedColumns {
		if tbl.HasColumn(col) {
			stats.Factors[col] = decimal.NewFromFloat(rw.BoostFactor.Draw(rng))
		}
	}

	fill := tbl.HasColumn(focus.ResourceType)
	for _, r := range tbl.Rows {
		category := r.String(focus.ServiceCategory)

		if rw.Boosts(category) {
			for col, factor := range stats.Factors {
				if v, ok := r.Decimal(col); ok {
					r.Replace(col, v.Mul(factor))
				}
			}
			stats.Boosted++
		}

		if fill && category == rw.FillCategory && r.IsNull(focus.ResourceType) {
			r.Replace(focus.ResourceType, fillValue(rw, rng))
			stats.Filled++
		}
	}
	return stats
}

func fillValue(rw profile.Reweighting, rng *rand.Rand) string {
	if rw.FillProbability >= 1 || rng.Float64() < rw.FillProbability {
		return rw.FillVocabulary[rng.IntN(len(rw.FillVocabulary))]
	}
	return rw.FillDefault
}

// roundCosts rounds the boosted cost columns to cents
func roundCosts(tbl *table.Table) {
	for _, col := range boostedColumns {
		if !tbl.HasColumn(col) {
			continue
		}
		for _, r := range tbl.Rows {
			if v, ok := r.Decimal(col); ok {
				r.Replace(col, v.Round(2))
			}
		}
	}
}
