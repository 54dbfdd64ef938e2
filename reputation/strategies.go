package reputation

import "math"

// LinearChange applies a delta directly: new = current + delta.
type LinearChange struct{}

func (LinearChange) Apply(current, delta float64) float64 { return current + delta }

// LogarithmicChange dampens a delta's effect as the current value grows,
// modeling "harder to level up at high levels": the further current is
// from zero, the smaller delta's effect.
type LogarithmicChange struct{}

func (LogarithmicChange) Apply(current, delta float64) float64 {
	damp := 1.0 / (1.0 + math.Abs(current)/50.0)
	return current + delta*damp
}

// ThresholdChange applies delta at full strength below a soft ceiling and
// at a tenth of strength above it, modeling rank-style progression that's
// easy early and hard late.
type ThresholdChange struct{ Ceiling float64 }

func (t ThresholdChange) ceiling() float64 {
	if t.Ceiling == 0 {
		return 50
	}
	return t.Ceiling
}

func (t ThresholdChange) Apply(current, delta float64) float64 {
	if current < t.ceiling() {
		return current + delta
	}
	return current + delta*0.1
}

// NoDecay never reduces the value.
type NoDecay struct{}

func (NoDecay) Decay(current float64, rate float64, elapsed uint32) float64 { return current }

// LinearDecay subtracts rate*elapsed from the value, floored at zero
// magnitude move (it decays towards, not past, zero).
type LinearDecay struct{}

func (LinearDecay) Decay(current float64, rate float64, elapsed uint32) float64 {
	step := rate * float64(elapsed)
	if current > 0 {
		next := current - step
		if next < 0 {
			return 0
		}
		return next
	}
	if current < 0 {
		next := current + step
		if next > 0 {
			return 0
		}
		return next
	}
	return current
}

// ExponentialDecay multiplies the value by rate once per elapsed time
// unit, following ReputationConfig's own description of decay_rate as a
// per-tick multiplier ("0.95 = 5% decay per turn").
type ExponentialDecay struct{}

func (ExponentialDecay) Decay(current float64, rate float64, elapsed uint32) float64 {
	return current * math.Pow(rate, float64(elapsed))
}

// HardClamp bounds the value to [Config.Min, Config.Max].
type HardClamp struct{}

func (HardClamp) Clamp(value float64, cfg Config) (float64, bool) {
	if value < cfg.Min {
		return cfg.Min, true
	}
	if value > cfg.Max {
		return cfg.Max, true
	}
	return value, false
}

// ZeroClamp bounds the value to a floor of zero only, for quantities that
// can't go negative but have no natural ceiling.
type ZeroClamp struct{}

func (ZeroClamp) Clamp(value float64, cfg Config) (float64, bool) {
	if value < 0 {
		return 0, true
	}
	return value, false
}

// NoClamp never bounds the value.
type NoClamp struct{}

func (NoClamp) Clamp(value float64, cfg Config) (float64, bool) { return value, false }
