package inventory

// CapacityPolicy evaluates whether an add/remove can proceed under
// whatever capacity notion (slots, weight, none) it models.
type CapacityPolicy interface {
	CanAdd(state *State, stack ItemStack, weightPerItem Weight, cfg Config) (RejectionReason, bool)
	CanRemove(state *State, stack ItemStack) (RejectionReason, bool)
}

// StackingPolicy decides whether an add is permitted by stacking rules
// (e.g. a per-stack maximum) and, if so, how it mutates State.Stacks.
type StackingPolicy interface {
	CanStack(state *State, stack ItemStack, cfg Config) (RejectionReason, bool)
	AddToInventory(state *State, stack ItemStack, weightPerItem Weight)
	RemoveFromInventory(state *State, stack ItemStack)
}

// CostPolicy computes the holding cost accrued over an elapsed period.
type CostPolicy interface {
	CalculateCost(state *State, cfg Config, elapsedTime uint32) float64
}
