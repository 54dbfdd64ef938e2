package delegation

// DelegationMechanic and SimpleDelegationMechanic mirror mod.rs's two
// exported names; this port has only one strategy, so both alias the
// same instantiation.

// SimpleDelegationMechanic is the default instantiation named in
// mod.rs's quick-start example.
type SimpleDelegationMechanic = Mechanic[SimpleDelegationPolicy]

// DelegationMechanic is an alias for callers that want the generic
// name without specifying a policy.
type DelegationMechanic = Mechanic[SimpleDelegationPolicy]
