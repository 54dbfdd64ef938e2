package evolution

import "github.com/kentwait/issun-mechanics/mechanic"

// Mechanic is the generic evolution composer: a zero-size struct
// parameterized by one type per policy axis, resolved by instantiating
// its zero value, following the same convention as
// contagion.Mechanic/reputation.Mechanic/combat.Mechanic.
type Mechanic[Di DirectionPolicy, En EnvironmentalPolicy, Ra RateCalculationPolicy] struct{}

// Step computes direction and environmental multipliers, derives a
// rate, and applies it scaled by TimeDelta, clamping the result to the
// entity's [Min, Max] range.
func (m Mechanic[Di, En, Ra]) Step(config Config, state *State, input Input, emitter mechanic.EventEmitter[Event]) {
	var direction Di
	var environmental En
	var rate Ra

	directionMult := direction.DirectionMultiplier(*state, state.elapsed)
	environmentalMult := environmental.EnvironmentalMultiplier(input.Environment)

	computedRate := rate.CalculateRate(config.BaseRate, state.Value, state.Min, state.Max, directionMult, environmentalMult)

	old := state.Value
	next := state.Value + computedRate*input.TimeDelta
	state.elapsed += input.TimeDelta

	clamped, wasClamped := state.clamp(next)
	state.Value = clamped

	if clamped != old {
		emitter.Emit(ValueChanged{OldValue: old, NewValue: clamped, Rate: computedRate})
	}
	if wasClamped {
		emitter.Emit(ReachedLimit{AtMax: clamped == state.Max, Value: clamped})
	}
}
