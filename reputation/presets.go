package reputation

// Presets name the policy combinations original_source's presets.rs
// wires up. Unlike contagion's presets this package has no import-cycle
// concern (strategies and the composer both live directly in
// `reputation`), so these aliases sit alongside the rest of the package
// instead of a sibling presets subpackage.

// BasicReputation is favorability-style: additive, no decay, hard capped
// at Config's min/max.
type BasicReputation = Mechanic[LinearChange, NoDecay, HardClamp]

// DurabilitySystem is item-wear-style: additive damage/repair deltas,
// decays linearly (wear accumulates over time), floored at zero.
type DurabilitySystem = Mechanic[LinearChange, LinearDecay, ZeroClamp]

// SkillProgression is XP-style: diminishing-returns gains, no decay,
// hard capped.
type SkillProgression = Mechanic[LogarithmicChange, NoDecay, HardClamp]

// ResourceQuantity is stock-style: additive, no decay, floored at zero
// with no ceiling.
type ResourceQuantity = Mechanic[LinearChange, NoDecay, ZeroClamp]
