// Package delegation models how an entity responds to a directive from
// another: not binary obey/disobey, but a spectrum of compliance,
// interpretation, and priority that resolves into one of five response
// types.
//
// Only mod.rs was retrieved for this mechanic (no policies.rs,
// strategies.rs, or types.rs), so the type surface below is reconstructed
// from mod.rs's doc-comment walkthrough and SPEC_FULL.md's own summary
// ("single-policy mechanic, DirectivePolicy deciding compliance given a
// directive strength and an agent's autonomy").
package delegation

// EntityID identifies a delegator or delegate.
type EntityID string

// DirectiveKind distinguishes the force behind a directive.
type DirectiveKind int

const (
	DirectiveCommand DirectiveKind = iota
	DirectiveOrder
	DirectiveRequest
	DirectiveSuggestion
)

// DirectiveID names a single directive instance.
type DirectiveID string

// Directive is one instruction issued from a delegator to a delegate.
type Directive struct {
	ID         DirectiveID
	Kind       DirectiveKind
	Target     string
	Action     string
	Urgency    float64
	Importance float64
	IssuedAt   uint64
}

// DelegatorStats describes the entity issuing the directive.
type DelegatorStats struct {
	EntityID      EntityID
	Authority     float64
	Charisma      float64
	HierarchyRank int
	Reputation    float64
}

// DelegateTrait is a personality archetype influencing compliance.
type DelegateTrait int

const (
	TraitNeutral DelegateTrait = iota
	TraitLoyal
	TraitRebellious
	TraitPragmatic
	TraitAmbitious
)

// DelegateStats describes the entity receiving the directive.
type DelegateStats struct {
	EntityID      EntityID
	Loyalty       float64
	Morale        float64
	Relationship  float64
	HierarchyRank int
	Personality   DelegateTrait
	Workload      float64
	SkillLevel    float64
}

// ResponseType is the delegate's resolved reaction to a directive.
type ResponseType int

const (
	ResponseAccept ResponseType = iota
	ResponseAcceptWithReservation
	ResponseDefer
	ResponseIgnore
	ResponseDefy
)

// Config tunes how directive strength and delegate autonomy combine
// into compliance.
type Config struct {
	BaseCompliance     float64
	AuthorityWeight    float64
	RelationshipWeight float64
	HierarchyWeight    float64
	DefianceThreshold  float64
	IgnoreThreshold    float64
}

// DefaultConfig returns reasonable defaults.
func DefaultConfig() Config {
	return Config{
		BaseCompliance:     0.5,
		AuthorityWeight:    0.3,
		RelationshipWeight: 0.2,
		HierarchyWeight:    0.1,
		DefianceThreshold:  -0.5,
		IgnoreThreshold:    -0.1,
	}
}

// State is the delegate's resolved reaction to the most recent
// directive it processed.
type State struct {
	Response       ResponseType
	Compliance     float64
	Interpretation float64
	Priority       float64
}

// NewState returns a State defaulted to Accept at neutral compliance.
func NewState() *State {
	return &State{Response: ResponseAccept, Compliance: 0, Interpretation: 0, Priority: 0}
}

// Input is everything one delegation step needs.
type Input struct {
	Directive   Directive
	Delegator   DelegatorStats
	Delegate    DelegateStats
	CurrentTick uint64
}

// ComplianceChangeReason explains why State.Compliance moved.
type ComplianceChangeReason int

const (
	ReasonDirectiveIssued ComplianceChangeReason = iota
	ReasonAuthorityAsserted
	ReasonRelationshipStrained
)

// Event is the sealed set of events a delegation step can emit.
type Event interface{ isDelegationEvent() }

// DirectiveIssued is emitted at the start of every step.
type DirectiveIssued struct{ DirectiveID DirectiveID }

func (DirectiveIssued) isDelegationEvent() {}

// ResponseDetermined is emitted once the response type resolves.
type ResponseDetermined struct {
	Response   ResponseType
	Compliance float64
}

func (ResponseDetermined) isDelegationEvent() {}

// ComplianceChanged is emitted when compliance differs from its prior
// State value.
type ComplianceChanged struct {
	Reason   ComplianceChangeReason
	OldValue float64
	NewValue float64
}

func (ComplianceChanged) isDelegationEvent() {}
