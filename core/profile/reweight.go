package profile

import "focusgen/core/focus"

// Reweighting describes the whole-table pass a distribution applies after
// row generation
type Reweighting struct {
	// Boosted rows have one of these service categories
	BoostCategories []string

	// BoostFactor is drawn once per cost column per table
	BoostFactor CostRange

	// FillCategory rows with a null ResourceType get one from FillVocabulary
	// with probability FillProbability, else FillDefault
	FillCategory    string
	FillVocabulary  []string
	FillProbability float64
	FillDefault     string
}

// Boosts reports whether rows of the category are boosted
func (r Reweighting) Boosts(category string) bool {
	for _, c := range r.BoostCategories {
		if c == category {
			return true
		}
	}
	return false
}

var reweightings = map[Distribution]Reweighting{
	MLFocused: {
		BoostCategories: []string{focus.CategoryAIML},
		BoostFactor:     CostRange{Min: 1.2, Max: 1.5},
		FillCategory:    focus.CategoryCompute,
		FillVocabulary:  []string{"GPU Instance", "GPU Accelerator", "ML Instance"},
		FillProbability: 0.4,
		FillDefault:     "Standard Instance",
	},
	DataIntensive: {
		BoostCategories: []string{focus.CategoryStorage, focus.CategoryDatabases},
		BoostFactor:     CostRange{Min: 1.1, Max: 1.4},
		FillCategory:    focus.CategoryStorage,
		FillVocabulary:  []string{"Block Storage", "Object Storage", "File Storage", "Archive Storage"},
		FillProbability: 1,
	},
	MediaIntensive: {
		BoostCategories: []string{focus.CategoryStorage, focus.CategoryNetworking},
		BoostFactor:     CostRange{Min: 1.1, Max: 1.3},
		FillCategory:    focus.CategoryCompute,
		FillVocabulary:  []string{"Media Transcoder", "Video Processing", "Content Delivery"},
		FillProbability: 0.3,
		FillDefault:     "Standard Instance",
	},
}

// Reweighting returns the distribution's table pass. The even
// distribution has none.
func (d Distribution) Reweighting() (Reweighting, bool) {
	r, ok := reweightings[d]
	return r, ok
}
