package evolution

// DirectionPolicy returns the signed multiplier (+1 growth, -1 decay,
// or a value varying over time for cyclic/oscillating policies) applied
// before the rate calculation.
type DirectionPolicy interface {
	DirectionMultiplier(state State, elapsed float64) float64
}

// EnvironmentalPolicy turns ambient conditions into a multiplier on the
// base rate.
type EnvironmentalPolicy interface {
	EnvironmentalMultiplier(env Environment) float64
}

// RateCalculationPolicy combines base rate, current position, and the
// direction/environmental multipliers into a signed rate of change.
type RateCalculationPolicy interface {
	CalculateRate(baseRate, currentValue, min, max, directionMultiplier, environmentalMultiplier float64) float64
}
