package strategies

// LinearPropagation implements contagion.PropagationPolicy with the exact
// constants of original_source's
// crates/issun-core/src/mechanics/propagation/strategies/linear.rs:
// pressure is the edge weight scaled by the source's severity fraction,
// an infection triggers once accumulated pressure strictly exceeds 0.15,
// and a newly triggered infection starts at min(pressure*50, 20).
type LinearPropagation struct{}

func (LinearPropagation) CalculatePressure(sourceSeverity float64, edgeWeight float64) float64 {
	return edgeWeight * (sourceSeverity / 100.0)
}

func (LinearPropagation) ShouldTriggerInfection(totalPressure float64) bool {
	return totalPressure > 0.15
}

func (LinearPropagation) CalculateInitialSeverity(totalPressure float64) uint32 {
	v := totalPressure * 50.0
	if v > 20 {
		v = 20
	}
	if v < 0 {
		v = 0
	}
	return uint32(v)
}

// SteepPropagation implements contagion.PropagationPolicy for contagions
// that should trigger far more readily and start near full severity --
// issun-core's linear.rs sibling `AggressivePropagation`, used by the
// spec's rumor-style presets where a single exposure is usually enough.
type SteepPropagation struct {
	// Trigger is the pressure threshold above which infection triggers.
	// Zero selects the default of 0.05.
	Trigger float64
}

func (s SteepPropagation) trigger() float64 {
	if s.Trigger <= 0 {
		return 0.05
	}
	return s.Trigger
}

func (SteepPropagation) CalculatePressure(sourceSeverity float64, edgeWeight float64) float64 {
	return edgeWeight * (sourceSeverity / 100.0)
}

func (s SteepPropagation) ShouldTriggerInfection(totalPressure float64) bool {
	return totalPressure > s.trigger()
}

func (SteepPropagation) CalculateInitialSeverity(totalPressure float64) uint32 {
	v := totalPressure * 80.0
	if v > 60 {
		v = 60
	}
	if v < 0 {
		v = 0
	}
	return uint32(v)
}
