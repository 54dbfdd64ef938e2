package evolution

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kentwait/issun-mechanics/mechanic"
)

func TestDiminishingRateMatchesReferenceTable(t *testing.T) {
	var r DiminishingRate
	assert.InDelta(t, 2.0, r.CalculateRate(2.0, 0.0, 0.0, 100.0, 1.0, 1.0), 1e-9)
	assert.InDelta(t, 1.0, r.CalculateRate(2.0, 50.0, 0.0, 100.0, 1.0, 1.0), 1e-9)
	assert.InDelta(t, 0.2, r.CalculateRate(2.0, 90.0, 0.0, 100.0, 1.0, 1.0), 1e-9)
	assert.InDelta(t, 0.0, r.CalculateRate(2.0, 100.0, 0.0, 100.0, 1.0, 1.0), 1e-9)
	assert.InDelta(t, -2.0, r.CalculateRate(2.0, 100.0, 0.0, 100.0, -1.0, 1.0), 1e-9)
}

func TestThresholdRateStepsDownInBands(t *testing.T) {
	var r ThresholdRate
	assert.InDelta(t, 2.0, r.CalculateRate(2.0, 20.0, 0.0, 100.0, 1.0, 1.0), 1e-9)
	assert.InDelta(t, 1.0, r.CalculateRate(2.0, 50.0, 0.0, 100.0, 1.0, 1.0), 1e-9)
	assert.InDelta(t, 0.5, r.CalculateRate(2.0, 90.0, 0.0, 100.0, 1.0, 1.0), 1e-9)
}

func TestComprehensiveEnvironmentOptimalConditionsYieldUnitMultiplier(t *testing.T) {
	var e ComprehensiveEnvironment
	m := e.EnvironmentalMultiplier(Environment{Temperature: 25.0, Humidity: 0.5, Pressure: 1.0})
	assert.InDelta(t, 1.0, m, 1e-9)
}

func TestComprehensiveEnvironmentHighHumidityBoosts(t *testing.T) {
	var e ComprehensiveEnvironment
	m := e.EnvironmentalMultiplier(Environment{Temperature: 25.0, Humidity: 1.0, Pressure: 1.0})
	assert.InDelta(t, 1.5, m, 0.01)
}

func TestFoodDecayReducesValueUnderHumidity(t *testing.T) {
	cfg := DefaultConfig()
	state := NewState(100.0, 0.0, 100.0, SubjectFood)
	emitter := &mechanic.SliceEmitter[Event]{}

	var m FoodDecay
	m.Step(cfg, state, Input{TimeDelta: 1.0, Environment: NewEnvironment(25.0, 0.9)}, emitter)

	assert.Less(t, state.Value, 100.0)
}

func TestOrganicGrowthStaysWithinBounds(t *testing.T) {
	cfg := Config{BaseRate: 2.0, TimeDelta: 1.0}
	state := NewState(10.0, 0.0, 100.0, SubjectPlant)
	emitter := &mechanic.SliceEmitter[Event]{}

	var m OrganicGrowth
	m.Step(cfg, state, Input{TimeDelta: 1.0, Environment: NewEnvironment(25.0, 0.5)}, emitter)

	assert.Greater(t, state.Value, 10.0)
	assert.Less(t, state.Value, 100.0)
}
