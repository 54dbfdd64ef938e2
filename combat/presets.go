package combat

// Presets name the combinations mod.rs's doc comment walks through.

// ClassicRPG is linear damage, flat subtractive defense, no elemental
// system — the simplest combat loop.
type ClassicRPG = Mechanic[LinearDamageCalculation, SubtractiveDefense, NoElemental, NoCritical]

// ElementalCombat adds a Pokemon-style Fire/Ice/Water wheel on top of
// the classic formula.
type ElementalCombat = Mechanic[LinearDamageCalculation, SubtractiveDefense, ElementalAffinity, NoCritical]

// ModernARPG scales damage quadratically with attack power, reduces it by
// percentage armor, keeps the elemental wheel, and rolls for crits.
type ModernARPG = Mechanic[ScalingDamageCalculation, PercentageReduction, ElementalAffinity, ChanceCritical]

// TacticalSRPG is the classic formula again, named separately because
// the original distinguishes it as a strategy-game preset that could
// later gain a weapon-triangle ElementalPolicy.
type TacticalSRPG = Mechanic[LinearDamageCalculation, SubtractiveDefense, NoElemental, NoCritical]
