package exchange

import "github.com/kentwait/issun-mechanics/mechanic"

// Mechanic is the generic exchange composer: a zero-size struct
// parameterized by a valuation and an execution policy, resolved by
// instantiating its zero value, following the same convention as the
// other mechanics in this module.
type Mechanic[V ValuationPolicy, Ex ExecutionPolicy] struct{}

// Step proposes, evaluates, and (if accepted) executes one trade,
// updating the participant's trade count and reputation.
func (m Mechanic[V, Ex]) Step(config Config, state *State, input Input, emitter mechanic.EventEmitter[Event]) {
	var valuation V
	var execution Ex

	emitter.Emit(TradeProposed{Offered: input.OfferedValue, Requested: input.RequestedValue})

	reason, ok := execution.ShouldExecute(input.OfferedValue, input.RequestedValue, input.Urgency, state.Reputation, state.IsLocked, config)
	if !ok {
		emitter.Emit(TradeRejected{Reason: reason})
		delta := execution.CalculateReputationChange(input.OfferedValue, input.RequestedValue, false)
		m.applyReputationChange(state, delta, emitter)
		return
	}

	fairValue := valuation.CalculateFairValue(input.OfferedValue, input.RequestedValue, input.MarketLiquidity, state.Reputation, config)
	if fairValue <= 0 {
		emitter.Emit(TradeRejected{Reason: UnfairTrade})
		delta := execution.CalculateReputationChange(input.OfferedValue, input.RequestedValue, false)
		m.applyReputationChange(state, delta, emitter)
		return
	}

	fee := fairValue * config.TransactionFeeRate
	state.TotalTrades++
	emitter.Emit(TradeAccepted{FairValue: fairValue, Fee: fee})

	delta := execution.CalculateReputationChange(input.OfferedValue, input.RequestedValue, true)
	m.applyReputationChange(state, delta, emitter)
}

func (Mechanic[V, Ex]) applyReputationChange(state *State, delta float64, emitter mechanic.EventEmitter[Event]) {
	if delta == 0 {
		return
	}
	next := state.Reputation + delta
	if next < 0 {
		next = 0
	}
	if next > 1 {
		next = 1
	}
	state.Reputation = next
	emitter.Emit(ReputationChanged{Delta: delta, NewValue: next})
}
