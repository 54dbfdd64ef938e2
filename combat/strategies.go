package combat

// LinearDamageCalculation passes attack power through unchanged.
type LinearDamageCalculation struct{}

func (LinearDamageCalculation) CalculateBaseDamage(attackPower int, cfg Config) int {
	return attackPower
}

// ScalingDamageCalculation grows damage faster than attack power,
// modeling late-game power spikes: base + power^2/Scale.
type ScalingDamageCalculation struct{ Scale int }

func (s ScalingDamageCalculation) scale() int {
	if s.Scale == 0 {
		return 50
	}
	return s.Scale
}

func (s ScalingDamageCalculation) CalculateBaseDamage(attackPower int, cfg Config) int {
	return attackPower + (attackPower*attackPower)/s.scale()
}

// SubtractiveDefense subtracts defense directly from base damage,
// floored at cfg.MinDamage.
type SubtractiveDefense struct{}

func (SubtractiveDefense) ApplyDefense(baseDamage, defense int, cfg Config) int {
	d := baseDamage - defense
	if d < cfg.MinDamage {
		return cfg.MinDamage
	}
	return d
}

// PercentageReduction reduces damage by a percentage: final = base *
// (100 - defense%) / 100, clamped to [0,100]% and floored at
// cfg.MinDamage. Grounded verbatim on
// strategies/defense/percentage.rs's PercentageReduction.
type PercentageReduction struct{}

func (PercentageReduction) ApplyDefense(baseDamage, defense int, cfg Config) int {
	defensePercent := defense
	if defensePercent < 0 {
		defensePercent = 0
	}
	if defensePercent > 100 {
		defensePercent = 100
	}
	reduction := (baseDamage * defensePercent) / 100
	d := baseDamage - reduction
	if d < cfg.MinDamage {
		return cfg.MinDamage
	}
	return d
}

// NoElemental applies no elemental modifier.
type NoElemental struct{}

func (NoElemental) ApplyElementalModifier(damage int, attacker, defender Element, attackerSet, defenderSet bool) int {
	return damage
}

// ElementalAffinity implements a three-way wheel: Fire > Ice > Water >
// Fire. A super-effective matchup doubles damage, the reverse matchup
// halves it, everything else (including non-elemental attacks) is
// unmodified.
type ElementalAffinity struct{}

func beats(a, b Element) bool {
	switch a {
	case ElementFire:
		return b == ElementIce
	case ElementIce:
		return b == ElementWater
	case ElementWater:
		return b == ElementFire
	default:
		return false
	}
}

func (ElementalAffinity) ApplyElementalModifier(damage int, attacker, defender Element, attackerSet, defenderSet bool) int {
	if !attackerSet || !defenderSet {
		return damage
	}
	if beats(attacker, defender) {
		return damage * 2
	}
	if beats(defender, attacker) {
		return damage / 2
	}
	return damage
}

// NoCritical never rolls a critical hit.
type NoCritical struct{}

func (NoCritical) ApplyCritical(damage int, cfg Config, roll float64) (int, bool) {
	return damage, false
}

// ChanceCritical rolls against Chance (default 0.1) and applies
// Multiplier (default 2.0) on success.
type ChanceCritical struct {
	Chance     float64
	Multiplier float64
}

func (c ChanceCritical) chance() float64 {
	if c.Chance == 0 {
		return 0.1
	}
	return c.Chance
}

func (c ChanceCritical) multiplier() float64 {
	if c.Multiplier == 0 {
		return 2.0
	}
	return c.Multiplier
}

func (c ChanceCritical) ApplyCritical(damage int, cfg Config, roll float64) (int, bool) {
	if roll < c.chance() {
		return int(float64(damage) * c.multiplier()), true
	}
	return damage, false
}
