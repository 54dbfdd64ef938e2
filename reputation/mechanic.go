package reputation

import "github.com/kentwait/issun-mechanics/mechanic"

// Mechanic is the generic reputation composer: a zero-size struct
// parameterized by one type per policy axis, resolved by instantiating
// its zero value. Follows the same convention as contagion.Mechanic.
type Mechanic[Ch ChangePolicy, De DecayPolicy, Cl ClampPolicy] struct{}

// Step applies Change then Decay then Clamp to the current value,
// emitting Clamped when the clamp policy pulled the value back,
// ValueChanged when the value differs from before, and
// ReachedMinimum/ReachedMaximum when the final value lands on or is
// pulled back to a bound.
func (m Mechanic[Ch, De, Cl]) Step(config Config, state *State, input Input, emitter mechanic.EventEmitter[Event]) {
	var change Ch
	var decay De
	var clamp Cl

	old := state.Value

	next := change.Apply(old, input.Delta)
	next = decay.Decay(next, config.DecayRate, input.ElapsedTime)

	clamped, wasClamped := clamp.Clamp(next, config)
	if wasClamped {
		emitter.Emit(Clamped{AttemptedValue: next, ClampedValue: clamped})
	}

	state.Value = clamped

	if clamped != old {
		emitter.Emit(ValueChanged{OldValue: old, NewValue: clamped})
	}

	reached := wasClamped || clamped != old
	if reached && clamped == config.Min {
		emitter.Emit(ReachedMinimum{MinValue: config.Min})
	}
	if reached && clamped == config.Max {
		emitter.Emit(ReachedMaximum{MaxValue: config.Max})
	}
}
