package reputation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kentwait/issun-mechanics/mechanic"
)

func TestBasicReputationClampsAtMaximum(t *testing.T) {
	cfg := DefaultConfig()
	state := NewState(95)
	emitter := &mechanic.SliceEmitter[Event]{}

	var m BasicReputation
	m.Step(cfg, state, Input{Delta: 20, ElapsedTime: 1}, emitter)

	assert.Equal(t, 100.0, state.Value)
	assertContains(t, emitter.Events, ReachedMaximum{MaxValue: 100})
	assertContains(t, emitter.Events, Clamped{AttemptedValue: 115, ClampedValue: 100})
}

func TestDurabilitySystemDecaysAndFloorsAtZero(t *testing.T) {
	cfg := Config{Min: 0, Max: 100, DecayRate: 5}
	state := NewState(3)
	emitter := &mechanic.SliceEmitter[Event]{}

	var m DurabilitySystem
	m.Step(cfg, state, Input{Delta: 0, ElapsedTime: 2}, emitter)

	assert.Equal(t, 0.0, state.Value)
	assertContains(t, emitter.Events, ReachedMinimum{MinValue: 0})
}

func TestResourceQuantityNeverGoesNegative(t *testing.T) {
	cfg := Config{Min: 0, Max: 0, DecayRate: 1}
	state := NewState(10)
	emitter := &mechanic.SliceEmitter[Event]{}

	var m ResourceQuantity
	m.Step(cfg, state, Input{Delta: -25, ElapsedTime: 1}, emitter)

	assert.Equal(t, 0.0, state.Value)
}

func TestSkillProgressionDampensGainsAtHighValues(t *testing.T) {
	var change LogarithmicChange
	low := change.Apply(0, 10)
	high := change.Apply(500, 10)
	assert.Greater(t, low, high)
}

func TestValueChangedNotEmittedWhenValueUnchanged(t *testing.T) {
	cfg := DefaultConfig()
	state := NewState(50)
	emitter := &mechanic.SliceEmitter[Event]{}

	var m BasicReputation
	m.Step(cfg, state, Input{Delta: 0, ElapsedTime: 0}, emitter)

	for _, e := range emitter.Events {
		if _, ok := e.(ValueChanged); ok {
			t.Fatalf("did not expect ValueChanged for a no-op step")
		}
	}
}

func assertContains(t *testing.T, events []Event, want Event) {
	t.Helper()
	for _, e := range events {
		if e == want {
			return
		}
	}
	t.Fatalf("expected events %#v to contain %#v", events, want)
}
