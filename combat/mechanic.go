package combat

import "github.com/kentwait/issun-mechanics/mechanic"

// Mechanic is the generic combat composer (CombatMechanic<D,F,E,Cr> in
// the original): a zero-size struct parameterized by one type per policy
// axis, resolved by instantiating its zero value. CriticalPolicy is
// included as a fourth axis (the original lists it as optional, composed
// separately); NoCritical is the zero-friction default for callers that
// don't need it.
type Mechanic[D DamageCalculationPolicy, F DefensePolicy, El ElementalPolicy, Cr CriticalPolicy] struct{}

// Step resolves one attack: base damage -> defense -> elemental
// modifier -> critical, then applies the result to the defender's HP.
func (m Mechanic[D, F, El, Cr]) Step(config Config, state *State, input Input, emitter mechanic.EventEmitter[Event]) {
	var damageCalc D
	var defense F
	var elemental El
	var critical Cr

	base := damageCalc.CalculateBaseDamage(input.AttackerPower, config)
	afterDefense := defense.ApplyDefense(base, input.DefenderDefense, config)
	afterElemental := elemental.ApplyElementalModifier(afterDefense, input.AttackerElement, input.DefenderElement, input.AttackerHasElement, input.DefenderHasElement)
	final, wasCritical := critical.ApplyCritical(afterElemental, config, input.CriticalRoll)

	if final < config.MinDamage {
		final = config.MinDamage
	}

	state.CurrentHP -= final
	emitter.Emit(DamageDealt{Amount: final, IsCritical: wasCritical, RemainingHP: state.CurrentHP})

	if state.CurrentHP <= 0 {
		emitter.Emit(DefenderDefeated{})
	}
}
