package synthesis

import "github.com/kentwait/issun-mechanics/mechanic"

// Mechanic is the generic synthesis composer, parameterized by the one
// policy axis policies.rs defines.
type Mechanic[P SynthesisPolicy] struct{}

// Step checks prerequisites, resolves the attempt's outcome, updates
// State.History, and emits events for every stage that produces one.
func (m Mechanic[P]) Step(config Config, state *State, input Input, emitter mechanic.EventEmitter[Event]) {
	var policy P

	if missing, ok := policy.CheckPrerequisites(input.Recipe.Prerequisites, input.Unlocked); !ok {
		emitter.Emit(PrerequisitesNotMet{Missing: missing})
		return
	}

	successRate := policy.CalculateSuccessRate(config, input.Recipe, input.Synthesizer, input.Ingredients)
	outcome := policy.DetermineOutcome(config, input, successRate, input.RNG)

	state.LastOutcome = &outcome
	state.History = append(state.History, HistoryEntry{
		Tick:        input.CurrentTick,
		RecipeID:    input.Recipe.ID,
		OutcomeType: outcome.Type,
	})

	emitter.Emit(SynthesisCompleted{Outcome: outcome.Type, Quality: outcome.Quality})

	if outcome.Type == OutcomeFailure {
		emitter.Emit(MaterialsConsumed{Fraction: outcome.ConsumedFraction})
	}

	if input.Recipe.Category == CategoryFusion && len(input.Sources) > 0 && input.Slots > 0 {
		inherited := policy.DetermineInheritance(input.Sources, input.Slots, input.Affinity, input.RNG)
		if len(inherited) > 0 {
			emitter.Emit(TraitsInherited{Traits: inherited})
		}
	}
}
