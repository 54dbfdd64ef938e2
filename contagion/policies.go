package contagion

// SpreadPolicy scales a raw pressure contribution by ambient density
// (spec §4.2). Methods are pure; implementations take no state beyond
// their arguments. Grounded on transmission_model.go's interface-as-
// policy-slot style (TransmissionModel.TransmissionProb), generalized to
// the spec's signature.
type SpreadPolicy interface {
	// CalculateRate returns the effective transmission rate for this tick,
	// in [0, 1].
	CalculateRate(baseRate, density float64) float64
}

// ProgressionPolicy governs how an infected node's severity evolves, and
// the thresholds that drive the Incubating->Active->Recovered transitions
// of the per-(contagion, node) state machine (spec §4.5).
type ProgressionPolicy interface {
	// UpdateSeverity returns the next severity given the current severity
	// and the node's resistance stat.
	UpdateSeverity(current uint32, resistance uint32) uint32
	// IncubationThreshold is the severity at or above which an Incubating
	// record transitions to Active.
	IncubationThreshold() uint32
	// IncubationMaxDuration is the number of ticks after which an
	// Incubating record transitions to Active regardless of severity, when
	// non-zero.
	IncubationMaxDuration() uint64
	// ActiveMaxDuration is the number of ticks after which an Active
	// record transitions to Recovered regardless of severity, when
	// non-zero.
	ActiveMaxDuration() uint64
}

// PropagationPolicy is the edge-to-node transfer law: given a source
// node's severity and an edge's weight, how much pressure does the edge
// contribute, at what accumulated pressure does a susceptible node get
// triggered, and what severity does a newly-triggered infection start at
// (spec §4.2/§4.4 step 2-3). Grounded numerically on
// issun-core's propagation/strategies/linear.rs.
type PropagationPolicy interface {
	CalculatePressure(sourceSeverity float64, edgeWeight float64) float64
	ShouldTriggerInfection(totalPressure float64) bool
	CalculateInitialSeverity(totalPressure float64) uint32
}

// MutationPolicy optionally alters a contagion's content given a noise
// parameter (spec §4.2, optional policy). Mutate returns the (possibly
// unchanged) content and whether it actually changed, so the mechanic can
// decide whether to emit a Mutated event.
type MutationPolicy interface {
	Mutate(content Content, noise float64) (next Content, changed bool)
}
