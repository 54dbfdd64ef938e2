package delegation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kentwait/issun-mechanics/mechanic"
)

func commanderOrder() Directive {
	return Directive{
		ID:         "order_001",
		Kind:       DirectiveCommand,
		Target:     "outpost",
		Action:     "defend",
		Urgency:    0.8,
		Importance: 0.9,
		IssuedAt:   100,
	}
}

func commander() DelegatorStats {
	return DelegatorStats{EntityID: "commander", Authority: 0.9, Charisma: 0.7, HierarchyRank: 0, Reputation: 0.8}
}

func loyalSoldier() DelegateStats {
	return DelegateStats{
		EntityID: "soldier", Loyalty: 0.8, Morale: 0.7, Relationship: 0.6,
		HierarchyRank: 2, Personality: TraitLoyal, Workload: 0.3, SkillLevel: 0.75,
	}
}

func TestLoyalSoldierAcceptsCommand(t *testing.T) {
	cfg := DefaultConfig()
	state := NewState()
	emitter := &mechanic.SliceEmitter[Event]{}

	var m SimpleDelegationMechanic
	m.Step(cfg, state, Input{Directive: commanderOrder(), Delegator: commander(), Delegate: loyalSoldier(), CurrentTick: 100}, emitter)

	assert.Equal(t, ResponseAccept, state.Response)
}

func TestRebelliousDelegateIsLessCompliant(t *testing.T) {
	cfg := DefaultConfig()
	loyalState := NewState()
	rebelState := NewState()

	var m SimpleDelegationMechanic
	m.Step(cfg, loyalState, Input{Directive: commanderOrder(), Delegator: commander(), Delegate: loyalSoldier(), CurrentTick: 100}, &mechanic.SliceEmitter[Event]{})

	rebel := loyalSoldier()
	rebel.Personality = TraitRebellious
	rebel.Loyalty = 0.1
	m.Step(cfg, rebelState, Input{Directive: commanderOrder(), Delegator: commander(), Delegate: rebel, CurrentTick: 100}, &mechanic.SliceEmitter[Event]{})

	assert.Less(t, rebelState.Compliance, loyalState.Compliance)
}

func TestLowAuthorityWeakDelegatorIsDefied(t *testing.T) {
	cfg := DefaultConfig()
	state := NewState()
	emitter := &mechanic.SliceEmitter[Event]{}

	weakDelegator := DelegatorStats{EntityID: "clerk", Authority: 0.05, HierarchyRank: 5}
	rebel := DelegateStats{EntityID: "soldier", Loyalty: 0.0, Personality: TraitRebellious, HierarchyRank: 0}

	var m SimpleDelegationMechanic
	m.Step(cfg, state, Input{Directive: commanderOrder(), Delegator: weakDelegator, Delegate: rebel, CurrentTick: 1}, emitter)

	assert.Equal(t, ResponseDefy, state.Response)
}

func TestComplianceChangedEmittedOnlyWhenValueMoves(t *testing.T) {
	cfg := DefaultConfig()
	state := NewState()
	input := Input{Directive: commanderOrder(), Delegator: commander(), Delegate: loyalSoldier(), CurrentTick: 100}

	var m SimpleDelegationMechanic
	first := &mechanic.SliceEmitter[Event]{}
	m.Step(cfg, state, input, first)

	second := &mechanic.SliceEmitter[Event]{}
	m.Step(cfg, state, input, second)

	var changed bool
	for _, e := range second.Events {
		if _, ok := e.(ComplianceChanged); ok {
			changed = true
		}
	}
	assert.False(t, changed)
}
