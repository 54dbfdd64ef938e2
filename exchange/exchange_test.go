package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kentwait/issun-mechanics/mechanic"
)

func TestMarketAdjustedValuationMatchesReferenceTable(t *testing.T) {
	cfg := DefaultConfig()
	var v MarketAdjustedValuation

	assert.InDelta(t, 100.0, v.CalculateFairValue(100, 100, 0.0, 0.0, cfg), 1e-9)
	assert.InDelta(t, 110.0, v.CalculateFairValue(100, 100, 1.0, 0.0, cfg), 1e-9)
	assert.InDelta(t, 105.0, v.CalculateFairValue(100, 100, 0.0, 1.0, cfg), 0.01)
	assert.InDelta(t, 115.0, v.CalculateFairValue(100, 100, 1.0, 1.0, cfg), 1e-9)
	assert.InDelta(t, 103.5, v.CalculateFairValue(100, 90, 1.0, 1.0, cfg), 1e-9)

	unfair := Config{FairnessThreshold: 0.8}
	assert.InDelta(t, 0.0, v.CalculateFairValue(100, 300, 1.0, 1.0, unfair), 1e-9)
}

func TestUrgentExecutionRelaxesFairnessThreshold(t *testing.T) {
	cfg := Config{FairnessThreshold: 0.5}
	var ex UrgentExecution

	reason, ok := ex.ShouldExecute(40, 100, 0.0, 0.8, false, cfg)
	assert.False(t, ok)
	assert.Equal(t, UnfairTrade, reason)

	_, ok = ex.ShouldExecute(40, 100, 0.8, 0.8, false, cfg)
	assert.True(t, ok)
}

func TestUrgentExecutionBlocksLowReputationOnVeryUnfairTrade(t *testing.T) {
	cfg := Config{FairnessThreshold: 0.5}
	var ex UrgentExecution

	reason, ok := ex.ShouldExecute(15, 100, 1.0, 0.2, false, cfg)
	assert.False(t, ok)
	assert.Equal(t, LowReputation, reason)
}

func TestUrgentExecutionReputationChangeMatchesReferenceTable(t *testing.T) {
	var ex UrgentExecution
	assert.InDelta(t, -0.01, ex.CalculateReputationChange(60, 100, true), 1e-9)
	assert.InDelta(t, 0.02, ex.CalculateReputationChange(100, 100, true), 1e-9)
}

func TestFairMarketAcceptsTradeWithinBand(t *testing.T) {
	cfg := Config{TransactionFeeRate: 0.02, MinimumValueThreshold: 10, FairnessThreshold: 0.8}
	state := DefaultState()
	emitter := &mechanic.SliceEmitter[Event]{}

	var m FairMarket
	m.Step(cfg, state, Input{OfferedValue: 100, RequestedValue: 105, MarketLiquidity: 0.5, Urgency: 0}, emitter)

	var accepted *TradeAccepted
	for _, e := range emitter.Events {
		if a, ok := e.(TradeAccepted); ok {
			accepted = &a
		}
	}
	if assert.NotNil(t, accepted) {
		assert.InDelta(t, 100.0, accepted.FairValue, 1e-9)
		assert.InDelta(t, 2.0, accepted.Fee, 1e-9)
	}
	assert.Equal(t, uint32(1), state.TotalTrades)
}
