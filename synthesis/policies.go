package synthesis

// SynthesisPolicy determines success rates, quality, prerequisites, and
// outcomes for a synthesis attempt. It mirrors the single Rust trait
// policies.rs defines; Go has no trait-default methods, so the one
// default policies.rs declares (calculate_ingredient_quality) is a free
// function below instead.
type SynthesisPolicy interface {
	// CalculateSuccessRate returns the attempt's success rate in [0,1].
	CalculateSuccessRate(cfg Config, recipe Recipe, synthesizer SynthesizerStats, ingredients []IngredientInput) float64

	// DetermineQuality returns the output quality given a success roll.
	DetermineQuality(cfg Config, recipe Recipe, synthesizer SynthesizerStats, ingredients []IngredientInput, roll float64) QualityLevel

	// CheckPrerequisites reports any unmet prerequisites.
	CheckPrerequisites(prerequisites []Prerequisite, unlocked UnlockedPrerequisites) (missing []Prerequisite, satisfied bool)

	// DetermineOutcome resolves the full outcome from a pre-calculated
	// success rate and a roll.
	DetermineOutcome(cfg Config, input Input, successRate float64, roll float64) Outcome

	// CalculateFailureConsumption returns the fraction of materials
	// consumed when an attempt fails.
	CalculateFailureConsumption(cfg Config, recipe Recipe, successRate float64) float64

	// DetermineInheritance selects traits for a fusion-style output.
	DetermineInheritance(sources []InheritanceSource, slots int, affinity float64, roll float64) []InheritedTrait
}

// AverageIngredientQuality computes the mean quality across ingredients,
// the one default method policies.rs attaches to SynthesisPolicy.
func AverageIngredientQuality(ingredients []IngredientInput) QualityLevel {
	if len(ingredients) == 0 {
		return QualityCommon
	}
	var total uint32
	for _, ing := range ingredients {
		total += uint32(ing.Quality.Value())
	}
	return QualityFromValue(uint8(total / uint32(len(ingredients))))
}
