// Package profile - Spend profiles and workload distributions
// A profile fixes the dataset's total cost magnitude; a distribution skews
// the service-category mix and drives the whole-table reweighting pass.
package profile

import (
	"math/rand/v2"
	"strings"

	"github.com/shopspring/decimal"

	"focusgen/core/focus"
	"focusgen/internal/errors"
)

// Profile is a spend tier
type Profile string

const (
	Greenfield    Profile = "Greenfield"
	LargeBusiness Profile = "Large Business"
	Enterprise    Profile = "Enterprise"
)

// Profiles returns all profiles in ascending spend order
func Profiles() []Profile {
	return []Profile{Greenfield, LargeBusiness, Enterprise}
}

// CostRange is a half-open [Min, Max) uniform draw range
type CostRange struct {
	Min float64
	Max float64
}

// Draw returns a uniform value in the range
func (r CostRange) Draw(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Midpoint returns the centre of the range
func (r CostRange) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

var costRanges = map[Profile]CostRange{
	Greenfield:    {Min: 10_000, Max: 50_000},
	LargeBusiness: {Min: 100_000, Max: 250_000},
	Enterprise:    {Min: 500_000, Max: 2_000_000},
}

// CostRange returns the total dataset cost range for the profile
func (p Profile) CostRange() CostRange {
	return costRanges[p]
}

// Distribution is a workload distribution
type Distribution string

const (
	EvenlyDistributed Distribution = "Evenly Distributed"
	MLFocused         Distribution = "ML-Focused"
	DataIntensive     Distribution = "Data-Intensive"
	MediaIntensive    Distribution = "Media-Intensive"
)

// Distributions returns all distributions
func Distributions() []Distribution {
	return []Distribution{EvenlyDistributed, MLFocused, DataIntensive, MediaIntensive}
}

// Weight is one entry of a categorical distribution
type Weight struct {
	Category string
	Weight   float64
}

var categoryWeights = map[Distribution][]Weight{
	EvenlyDistributed: {
		{focus.CategoryCompute, 0.30},
		{focus.CategoryStorage, 0.20},
		{focus.CategoryDatabases, 0.20},
		{focus.CategoryNetworking, 0.10},
		{focus.CategoryAIML, 0.10},
		{focus.CategoryOther, 0.10},
	},
	MLFocused: {
		{focus.CategoryCompute, 0.25},
		{focus.CategoryStorage, 0.15},
		{focus.CategoryDatabases, 0.15},
		{focus.CategoryNetworking, 0.05},
		{focus.CategoryAIML, 0.35},
		{focus.CategoryOther, 0.05},
	},
	DataIntensive: {
		{focus.CategoryCompute, 0.20},
		{focus.CategoryStorage, 0.35},
		{focus.CategoryDatabases, 0.30},
		{focus.CategoryNetworking, 0.05},
		{focus.CategoryAIML, 0.05},
		{focus.CategoryOther, 0.05},
	},
	MediaIntensive: {
		{focus.CategoryCompute, 0.15},
		{focus.CategoryStorage, 0.40},
		{focus.CategoryDatabases, 0.10},
		{focus.CategoryNetworking, 0.25},
		{focus.CategoryAIML, 0.05},
		{focus.CategoryOther, 0.05},
	},
}

// CategoryWeights returns the ServiceCategory weights. Unknown
// distributions get the even table.
func (d Distribution) CategoryWeights() []Weight {
	if w, ok := categoryWeights[d]; ok {
		return w
	}
	return categoryWeights[EvenlyDistributed]
}

var costMultipliers = map[Distribution]CostRange{
	MLFocused:      {Min: 1.10, Max: 1.30},
	DataIntensive:  {Min: 1.05, Max: 1.20},
	MediaIntensive: {Min: 1.10, Max: 1.25},
}

// CostMultiplier returns the total-cost multiplier range. The even
// distribution has none.
func (d Distribution) CostMultiplier() (CostRange, bool) {
	r, ok := costMultipliers[d]
	return r, ok
}

// TotalCost draws the dataset total for a profile and distribution,
// rounded to cents
func TotalCost(p Profile, d Distribution, rng *rand.Rand) decimal.Decimal {
	total := p.CostRange().Draw(rng)
	if m, ok := d.CostMultiplier(); ok {
		total *= m.Draw(rng)
	}
	return decimal.NewFromFloat(total).Round(2)
}

// ParseProfile accepts a profile name in any case, with spaces, dashes or
// underscores between words
func ParseProfile(s string) (Profile, error) {
	key := normalize(s)
	for _, p := range Profiles() {
		if normalize(string(p)) == key {
			return p, nil
		}
	}
	return "", errors.Newf(errors.TypeInput, "unknown spend profile %q", s)
}

// ParseDistribution accepts a distribution name in the same forms as
// ParseProfile. "even" and "ml" style short names are accepted too.
func ParseDistribution(s string) (Distribution, error) {
	key := normalize(s)
	for _, d := range Distributions() {
		if normalize(string(d)) == key {
			return d, nil
		}
	}
	switch key {
	case "even", "evenly":
		return EvenlyDistributed, nil
	case "ml":
		return MLFocused, nil
	case "data":
		return DataIntensive, nil
	case "media":
		return MediaIntensive, nil
	}
	return "", errors.Newf(errors.TypeInput, "unknown workload distribution %q", s)
}

func normalize(s string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return r.Replace(strings.ToLower(strings.TrimSpace(s)))
}
