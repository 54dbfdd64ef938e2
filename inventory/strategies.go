package inventory

// FixedSlotCapacity limits the number of distinct stacks to
// cfg.MaxSlots, counting a same-item add against an existing slot
// rather than a new one.
type FixedSlotCapacity struct{}

func (FixedSlotCapacity) CanAdd(state *State, stack ItemStack, weightPerItem Weight, cfg Config) (RejectionReason, bool) {
	if cfg.MaxSlots == nil {
		return 0, true
	}
	if _, exists := state.FindStack(stack.ItemID); exists {
		return 0, true
	}
	if uint32(len(state.Stacks)) >= *cfg.MaxSlots {
		return InsufficientCapacity, false
	}
	return 0, true
}

func (FixedSlotCapacity) CanRemove(state *State, stack ItemStack) (RejectionReason, bool) {
	return defaultCanRemove(state, stack)
}

// WeightBasedCapacity limits total carried weight to cfg.MaxWeight.
type WeightBasedCapacity struct{}

func (WeightBasedCapacity) CanAdd(state *State, stack ItemStack, weightPerItem Weight, cfg Config) (RejectionReason, bool) {
	if cfg.MaxWeight == nil {
		return 0, true
	}
	projected := state.TotalWeight(weightPerItem) + Weight(stack.Quantity)*weightPerItem
	if projected > *cfg.MaxWeight {
		return InsufficientCapacity, false
	}
	return 0, true
}

func (WeightBasedCapacity) CanRemove(state *State, stack ItemStack) (RejectionReason, bool) {
	return defaultCanRemove(state, stack)
}

// UnlimitedCapacity never rejects for capacity.
type UnlimitedCapacity struct{}

func (UnlimitedCapacity) CanAdd(state *State, stack ItemStack, weightPerItem Weight, cfg Config) (RejectionReason, bool) {
	return 0, true
}

func (UnlimitedCapacity) CanRemove(state *State, stack ItemStack) (RejectionReason, bool) {
	return defaultCanRemove(state, stack)
}

// defaultCanRemove implements the shared remove check every
// CapacityPolicy in the original inherits from a trait default.
func defaultCanRemove(state *State, stack ItemStack) (RejectionReason, bool) {
	existing, ok := state.FindStack(stack.ItemID)
	if !ok {
		return ItemNotFound, false
	}
	if existing.Quantity < stack.Quantity {
		return InsufficientQuantity, false
	}
	return 0, true
}

// AlwaysStack merges same-item quantities into a single stack.
type AlwaysStack struct{}

func (AlwaysStack) CanStack(state *State, stack ItemStack, cfg Config) (RejectionReason, bool) {
	return 0, true
}

func (AlwaysStack) AddToInventory(state *State, stack ItemStack, weightPerItem Weight) {
	for i := range state.Stacks {
		if state.Stacks[i].ItemID == stack.ItemID {
			state.Stacks[i].Quantity += stack.Quantity
			return
		}
	}
	state.Stacks = append(state.Stacks, stack)
}

func (AlwaysStack) RemoveFromInventory(state *State, stack ItemStack) {
	removeQuantity(state, stack)
}

// NeverStack gives every add its own stack entry, even for a repeated
// item id.
type NeverStack struct{}

func (NeverStack) CanStack(state *State, stack ItemStack, cfg Config) (RejectionReason, bool) {
	return 0, true
}

func (NeverStack) AddToInventory(state *State, stack ItemStack, weightPerItem Weight) {
	state.Stacks = append(state.Stacks, stack)
}

func (NeverStack) RemoveFromInventory(state *State, stack ItemStack) {
	removeQuantity(state, stack)
}

// LimitedStack merges into an existing stack like AlwaysStack but
// rejects an add that would push any single stack over
// cfg.MaxStackSize.
type LimitedStack struct{}

func (LimitedStack) CanStack(state *State, stack ItemStack, cfg Config) (RejectionReason, bool) {
	if cfg.MaxStackSize == nil {
		return 0, true
	}
	existing, _ := state.FindStack(stack.ItemID)
	if existing.Quantity+stack.Quantity > *cfg.MaxStackSize {
		return StackLimitExceeded, false
	}
	return 0, true
}

func (LimitedStack) AddToInventory(state *State, stack ItemStack, weightPerItem Weight) {
	AlwaysStack{}.AddToInventory(state, stack, weightPerItem)
}

func (LimitedStack) RemoveFromInventory(state *State, stack ItemStack) {
	removeQuantity(state, stack)
}

func removeQuantity(state *State, stack ItemStack) {
	for i := range state.Stacks {
		if state.Stacks[i].ItemID != stack.ItemID {
			continue
		}
		state.Stacks[i].Quantity -= stack.Quantity
		if state.Stacks[i].Quantity == 0 {
			state.Stacks = append(state.Stacks[:i], state.Stacks[i+1:]...)
		}
		return
	}
}

// NoCost charges nothing for holding inventory.
type NoCost struct{}

func (NoCost) CalculateCost(state *State, cfg Config, elapsedTime uint32) float64 { return 0 }

// SlotBasedCost charges per occupied slot per elapsed time unit.
type SlotBasedCost struct{}

func (SlotBasedCost) CalculateCost(state *State, cfg Config, elapsedTime uint32) float64 {
	return float64(len(state.Stacks)) * cfg.HoldingCostPerSlot * float64(elapsedTime)
}

// WeightBasedCost charges HoldingCostPerWeight per unit per elapsed time
// unit. It has no access to per-item weight, so it always bills against
// total quantity, counting each item as one unit of weight.
type WeightBasedCost struct{}

func (WeightBasedCost) CalculateCost(state *State, cfg Config, elapsedTime uint32) float64 {
	return float64(state.TotalQuantity()) * cfg.HoldingCostPerWeight * float64(elapsedTime)
}
