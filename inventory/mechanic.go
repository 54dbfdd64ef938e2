package inventory

import "github.com/kentwait/issun-mechanics/mechanic"

// Mechanic is the generic inventory composer: a zero-size struct
// parameterized by one type per policy axis, resolved by instantiating
// its zero value, following the same convention as the other mechanics
// in this module.
type Mechanic[Ca CapacityPolicy, St StackingPolicy, Co CostPolicy] struct{}

// Step applies one Add or Remove operation, gated by capacity then
// stacking rules, and separately accrues holding cost for the elapsed
// period.
func (m Mechanic[Ca, St, Co]) Step(config Config, state *State, input Input, emitter mechanic.EventEmitter[Event]) {
	var capacity Ca
	var stacking St
	var cost Co

	switch op := input.Operation.(type) {
	case AddOperation:
		if reason, ok := capacity.CanAdd(state, op.Stack, op.WeightPerItem, config); !ok {
			emitter.Emit(OperationRejected{Reason: reason})
			break
		}
		if reason, ok := stacking.CanStack(state, op.Stack, config); !ok {
			emitter.Emit(OperationRejected{Reason: reason})
			break
		}
		stacking.AddToInventory(state, op.Stack, op.WeightPerItem)
		emitter.Emit(ItemAdded{Stack: op.Stack})
	case RemoveOperation:
		if reason, ok := capacity.CanRemove(state, op.Stack); !ok {
			emitter.Emit(OperationRejected{Reason: reason})
			break
		}
		stacking.RemoveFromInventory(state, op.Stack)
		emitter.Emit(ItemRemoved{Stack: op.Stack})
	}

	if input.ElapsedTime > 0 {
		if accrued := cost.CalculateCost(state, config, input.ElapsedTime); accrued > 0 {
			emitter.Emit(HoldingCostAccrued{Cost: accrued})
		}
	}
}
