package perception

// PerceptionMechanic and SimplePerceptionMechanic mirror mod.rs's two
// exported names; this port has only one strategy, so both alias the
// same instantiation.

// PerceptionMechanic is the default instantiation, matching mod.rs's
// quick-start example (`type FogOfWar = PerceptionMechanic;`).
type PerceptionMechanic = Mechanic[FogOfWarPolicy]

// SimplePerceptionMechanic is an alias for callers that want the
// simpler name mod.rs also exports.
type SimplePerceptionMechanic = Mechanic[FogOfWarPolicy]

// FogOfWar names the FogOfWarPolicy instantiation directly, for parity
// with the quick-start example in mod.rs.
type FogOfWar = Mechanic[FogOfWarPolicy]
