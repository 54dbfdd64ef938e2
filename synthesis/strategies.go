package synthesis

// CraftingPolicy is a general-purpose strategy suitable for blacksmithing,
// cooking, alchemy, and similar item-crafting systems: skill and luck
// push success rate up, difficulty pushes it down, and quality scales
// with the recipe's base quality, ingredient quality, the synthesizer's
// quality bonus, and the success roll.
type CraftingPolicy struct{}

// CalculateSuccessRate combines the base rate, skill, luck, any
// category specialization, and the recipe's difficulty penalty.
func (CraftingPolicy) CalculateSuccessRate(cfg Config, recipe Recipe, synthesizer SynthesizerStats, ingredients []IngredientInput) float64 {
	rate := cfg.BaseSuccessRate
	rate += synthesizer.SkillLevel * cfg.SkillWeight
	rate += synthesizer.Luck * cfg.LuckWeight
	if bonus, ok := synthesizer.Specializations[recipe.Category]; ok {
		rate += bonus
	}
	rate -= (recipe.Difficulty - 1.0) * 0.1
	return clamp01(rate)
}

// DetermineQuality blends the recipe's base quality, ingredient quality,
// the synthesizer's quality bonus, and the roll.
func (CraftingPolicy) DetermineQuality(cfg Config, recipe Recipe, synthesizer SynthesizerStats, ingredients []IngredientInput, roll float64) QualityLevel {
	base := float64(recipe.BaseQuality.Value())
	ingredientAvg := float64(AverageIngredientQuality(ingredients).Value())
	score := base*0.5 + ingredientAvg*0.3 + synthesizer.QualityBonus*10.0 + roll*float64(QualityLegendary)*0.2
	rounded := int(score + 0.5)
	if rounded < 0 {
		rounded = 0
	}
	return QualityFromValue(uint8(rounded))
}

// CheckPrerequisites reports every prerequisite not present in unlocked.
func (CraftingPolicy) CheckPrerequisites(prerequisites []Prerequisite, unlocked UnlockedPrerequisites) ([]Prerequisite, bool) {
	var missing []Prerequisite
	for _, p := range prerequisites {
		if !unlocked.Has(p) {
			missing = append(missing, p)
		}
	}
	return missing, len(missing) == 0
}

// DetermineOutcome resolves Success/CriticalSuccess/PartialSuccess/
// Unexpected/Failure from the success rate and roll. Transmutation is
// not produced by this strategy (it has no catalyst or transmutation
// table to consult).
func (CraftingPolicy) DetermineOutcome(cfg Config, input Input, successRate float64, roll float64) Outcome {
	quality := CraftingPolicy{}.DetermineQuality(cfg, input.Recipe, input.Synthesizer, input.Ingredients, roll)

	if roll >= successRate {
		return Outcome{
			Type:             OutcomeFailure,
			ConsumedFraction: CraftingPolicy{}.CalculateFailureConsumption(cfg, input.Recipe, successRate),
		}
	}

	// Unexpected outcomes are drawn from the same roll's fractional
	// position within the success band, so higher rolls (closer to the
	// failure boundary) are relatively more likely to misfire.
	if successRate > 0 && (successRate-roll)/successRate < cfg.UnexpectedChance {
		return Outcome{Type: OutcomeUnexpected, Quality: quality}
	}
	if roll < successRate*cfg.CriticalThreshold {
		return Outcome{Type: OutcomeCriticalSuccess, Quality: quality}
	}
	if roll < successRate*cfg.PartialThreshold {
		return Outcome{Type: OutcomePartialSuccess, Quality: quality}
	}
	return Outcome{Type: OutcomeSuccess, Quality: quality}
}

// CalculateFailureConsumption scales the configured consumption rate
// down as the success rate rises, so near-misses waste fewer materials.
func (CraftingPolicy) CalculateFailureConsumption(cfg Config, recipe Recipe, successRate float64) float64 {
	return cfg.FailureConsumptionRate * (1.0 - successRate*0.5)
}

// DetermineInheritance picks up to slots traits, walking sources in
// order and using roll to decide, per candidate, whether affinity
// carries it through.
func (CraftingPolicy) DetermineInheritance(sources []InheritanceSource, slots int, affinity float64, roll float64) []InheritedTrait {
	var inherited []InheritedTrait
	threshold := 1.0 - affinity
	for i, src := range sources {
		for _, trait := range src.Traits {
			if len(inherited) >= slots {
				return inherited
			}
			// Vary the effective roll per candidate so every trait
			// isn't accepted or rejected in lockstep off one draw.
			candidateRoll := fracPart(roll + float64(i)*0.37 + float64(len(inherited))*0.13)
			if candidateRoll >= threshold {
				inherited = append(inherited, InheritedTrait{TraitID: trait, SourceEntityID: src.EntityID})
			}
		}
	}
	return inherited
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func fracPart(v float64) float64 {
	return v - float64(int(v))
}
