package synthesis

// SimpleSynthesisMechanic and SynthesisMechanic mirror mod.rs's two
// exported aliases: the original distinguishes a bare default from one
// with execution-hint metadata, but this port has no extra metadata to
// attach, so both name the same instantiation.

// SynthesisMechanic is the default synthesis instantiation, matching
// mod.rs's quick-start example (`type Crafting = SynthesisMechanic;`).
type SynthesisMechanic = Mechanic[CraftingPolicy]

// SimpleSynthesisMechanic is an alias for callers that want the same
// default policy under the simpler name mod.rs also exports.
type SimpleSynthesisMechanic = Mechanic[CraftingPolicy]

// Crafting names the CraftingPolicy instantiation directly, for parity
// with the quick-start example in mod.rs.
type Crafting = Mechanic[CraftingPolicy]
