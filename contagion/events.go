package contagion

// EventOrder is the rank of an event kind in the per-tick tie-break rule
// (spec §4.4: "contagion insertion order, then node insertion order, then
// event kind: Pressure < InfectionStarted < ProgressionAdvanced < Mutated
// < Decay < Extinct"). Step does not sort events by it: Step emits events
// phase by phase as it processes each contagion, which already yields the
// kind order above within one contagion; PolicyReturnedInvalid is emitted
// during pressure accumulation, ahead of that contagion's
// InfectionStarted events, despite its rank. This package does not
// emit a separate "Pressure" event (pressure is an internal accumulator,
// not an observable transition) or a per-tick "Decay" event (decay only
// becomes observable via ExtinctBelowThreshold); the remaining kinds keep
// the spec's relative order.
type EventOrder int

const (
	orderInfectionStarted EventOrder = iota
	orderProgressionAdvanced
	orderMutated
	orderExtinctBelowThreshold
	orderExtinct
	orderRejected
	orderPolicyInvalid
)

// Event is the sum type of every observable transition the contagion
// mechanic can announce (spec §3.1).
type Event interface {
	Order() EventOrder
	isContagionEvent()
}

// InfectionStarted announces that nodeID transitioned from Susceptible to
// Incubating under contagionID, with the given initial severity (spec
// §4.4 step 3).
type InfectionStarted struct {
	ContagionID string
	NodeID      string
	Severity    uint32
	Tick        uint64
}

func (InfectionStarted) Order() EventOrder { return orderInfectionStarted }
func (InfectionStarted) isContagionEvent() {}

// ProgressionAdvanced announces a per-(contagion, node) state machine
// transition or a severity change within a state (spec §4.4 step 4, §4.5).
type ProgressionAdvanced struct {
	ContagionID string
	NodeID      string
	From        InfectionState
	To          InfectionState
	Severity    uint32
	Tick        uint64
}

func (ProgressionAdvanced) Order() EventOrder { return orderProgressionAdvanced }
func (ProgressionAdvanced) isContagionEvent() {}

// Mutated announces that a contagion's content changed (spec §4.4 step 5).
type Mutated struct {
	ContagionID string
	Old, New    Content
	Tick        uint64
}

func (Mutated) Order() EventOrder { return orderMutated }
func (Mutated) isContagionEvent() {}

// ExtinctBelowThreshold announces a contagion removed because its
// credibility fell below config.MinCredibility (spec §4.4 step 6).
type ExtinctBelowThreshold struct {
	ContagionID string
	Credibility float64
	Tick        uint64
}

func (ExtinctBelowThreshold) Order() EventOrder { return orderExtinctBelowThreshold }
func (ExtinctBelowThreshold) isContagionEvent() {}

// Extinct announces a contagion removed because it reached its lifetime
// with no active infection (spec §4.4 step 7).
type Extinct struct {
	ContagionID string
	Tick        uint64
}

func (Extinct) Order() EventOrder { return orderExtinct }
func (Extinct) isContagionEvent() {}

// RejectionReason is the sealed-interface sum type for why an Input was
// rejected without mutating state (spec §4.6/§7).
type RejectionReason interface {
	isRejectionReason()
}

// UnknownReference is the RejectionReason for an Input that names a node,
// edge, or contagion id the mechanic does not recognize.
type UnknownReference struct {
	Kind string // "node", "edge", or "contagion"
	ID   string
}

func (UnknownReference) isRejectionReason() {}

// Rejected announces that an Input was refused without any state mutation
// (spec §4.6/§7).
type Rejected struct {
	Reason RejectionReason
	Tick   uint64
}

func (Rejected) Order() EventOrder { return orderRejected }
func (Rejected) isContagionEvent() {}

// PolicyReturnedInvalid is the design-level diagnostic emitted when a
// policy returns NaN or ±Inf, or when SpreadPolicy.CalculateRate returns a
// negative rate; the mechanic replaces the value with 0 and continues
// (spec §4.6/§7).
type PolicyReturnedInvalid struct {
	Policy string
	Method string
	Tick   uint64
}

func (PolicyReturnedInvalid) Order() EventOrder { return orderPolicyInvalid }
func (PolicyReturnedInvalid) isContagionEvent() {}
