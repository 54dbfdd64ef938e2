package combat

// DamageCalculationPolicy turns attack power into base damage, before
// defense is applied.
type DamageCalculationPolicy interface {
	CalculateBaseDamage(attackPower int, cfg Config) int
}

// DefensePolicy reduces base damage using the defender's defense stat,
// subject to cfg.MinDamage.
type DefensePolicy interface {
	ApplyDefense(baseDamage, defense int, cfg Config) int
}

// ElementalPolicy modifies damage based on attacker/defender elemental
// matchup.
type ElementalPolicy interface {
	ApplyElementalModifier(damage int, attacker, defender Element, attackerSet, defenderSet bool) int
}

// CriticalPolicy determines whether an attack crits and applies the
// resulting multiplier.
type CriticalPolicy interface {
	ApplyCritical(damage int, cfg Config, roll float64) (final int, wasCritical bool)
}
