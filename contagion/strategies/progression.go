package strategies

// defaultIncubationThreshold mirrors issun-core's progression/strategies/
// linear.rs `const DEFAULT_THRESHOLD: u32 = 10`, used whenever a
// LinearProgression value's Threshold field is left at its Go zero value.
const defaultIncubationThreshold uint32 = 10

// LinearProgression implements contagion.ProgressionPolicy with the
// original's resistance-gated step rule: a node whose resistance meets or
// exceeds Threshold resists progression outright; otherwise severity
// advances by one per tick, uncapped. Grounded on
// original_source/crates/issun-core/src/mechanics/progression/strategies/linear.rs.
//
// Threshold's Go zero value (0) would make every resistance >= 0 resist
// progression, which is not a sensible default, so the zero value is
// special-cased to defaultIncubationThreshold -- the same convention
// issun-core's derive(Default) gives the const generic.
type LinearProgression struct {
	// Threshold is the resistance stat at or above which a node resists
	// further severity advance. Zero selects the default of 10.
	Threshold uint32
	// ActivateAt is the severity at which an Incubating record becomes
	// Active. Zero selects the default of 15.
	ActivateAt uint32
	// RecoverAfter bounds how many ticks an Active record may persist
	// before recovering regardless of severity. Zero disables the bound.
	RecoverAfter uint64
	// IncubateFor bounds how many ticks an Incubating record may persist
	// before forcibly activating regardless of severity. Zero disables
	// the bound.
	IncubateFor uint64
}

func (p LinearProgression) threshold() uint32 {
	if p.Threshold == 0 {
		return defaultIncubationThreshold
	}
	return p.Threshold
}

func (p LinearProgression) UpdateSeverity(current uint32, resistance uint32) uint32 {
	if resistance >= p.threshold() {
		return current
	}
	return current + 1
}

func (p LinearProgression) IncubationThreshold() uint32 {
	if p.ActivateAt == 0 {
		return 15
	}
	return p.ActivateAt
}

func (p LinearProgression) IncubationMaxDuration() uint64 { return p.IncubateFor }

func (p LinearProgression) ActiveMaxDuration() uint64 { return p.RecoverAfter }

// ThresholdProgression implements contagion.ProgressionPolicy with a
// decaying step function instead of a climbing one: whenever resistance
// fails to block it, severity drops by Decay per tick, reaching 0
// (recovery, once Active) after a bounded number of ticks. Severity never
// rises under this policy; Peak is not applied by UpdateSeverity. Grounded on the same linear.rs file's sibling
// `SteppedProgression`, which issun-core uses for diseases with a sharp
// onset rather than a gradual one.
type ThresholdProgression struct {
	Threshold uint32
	Peak      uint32
	Decay     uint32
}

func (p ThresholdProgression) threshold() uint32 {
	if p.Threshold == 0 {
		return defaultIncubationThreshold
	}
	return p.Threshold
}

func (p ThresholdProgression) peak() uint32 {
	if p.Peak == 0 {
		return 100
	}
	return p.Peak
}

func (p ThresholdProgression) decay() uint32 {
	if p.Decay == 0 {
		return 10
	}
	return p.Decay
}

// UpdateSeverity decays monotonically towards recovery: a node a step
// ahead of Decay simply drops to zero rather than going negative. Peak
// only describes the severity a node is assumed to carry once Active
// (a concrete propagation policy is what actually produces it via
// CalculateInitialSeverity); UpdateSeverity itself never climbs, which
// keeps it from oscillating around Peak once decay has started.
func (p ThresholdProgression) UpdateSeverity(current uint32, resistance uint32) uint32 {
	if resistance >= p.threshold() {
		return current
	}
	d := p.decay()
	if current <= d {
		return 0
	}
	return current - d
}

// IncubationThreshold is deliberately low: this policy models diseases
// whose onset is sharp rather than gradual, so any severity still nonzero
// after the next tick's decay moves Incubating -> Active on that tick.
func (p ThresholdProgression) IncubationThreshold() uint32 { return 1 }

func (p ThresholdProgression) IncubationMaxDuration() uint64 { return 0 }

func (p ThresholdProgression) ActiveMaxDuration() uint64 { return 0 }
