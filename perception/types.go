// Package perception models the gap between ground truth and what an
// observer believes: accuracy, confidence, and noise applied to a true
// value, rather than perfect information.
//
// Only mod.rs was retrieved for this mechanic (no policies.rs,
// strategies.rs, or types.rs), so GroundTruth — a Rust enum over
// quantity/position/boolean facts in the original — is simplified to a
// single float64, matching SPEC_FULL.md's summary ("adding configurable
// Gaussian-ish noise to a true value, returning a perceived value +
// confidence").
package perception

// FactID names the piece of information being observed.
type FactID string

// ObserverTrait is a trait that can sharpen or dull an observer's
// capability.
type ObserverTrait int

const (
	ObserverTraitNone ObserverTrait = iota
	ObserverTraitKeen
	ObserverTraitTrained
	ObserverTraitDistracted
)

// ObserverStats describes the entity attempting to perceive a fact.
type ObserverStats struct {
	EntityID   string
	Capability float64
	Range      float64
	TechBonus  float64
	Traits     []ObserverTrait
}

// TargetTrait is a trait that can aid or hinder concealment.
type TargetTrait int

const (
	TargetTraitNone TargetTrait = iota
	TargetTraitStealthy
	TargetTraitObvious
)

// TargetStats describes the entity or fact source being observed.
type TargetStats struct {
	EntityID           string
	Concealment        float64
	StealthBonus       float64
	EnvironmentalBonus float64
	Traits             []TargetTrait
}

// GroundTruth is the true value an observer is attempting to perceive.
type GroundTruth = float64

// Config tunes accuracy, detection range, and confidence decay.
type Config struct {
	BaseAccuracy        float64
	CapabilityWeight    float64
	ConcealmentWeight   float64
	DistanceFalloff     float64
	ConfidenceDecayRate float64
	NoiseScale          float64
}

// DefaultConfig returns reasonable defaults.
func DefaultConfig() Config {
	return Config{
		BaseAccuracy:        0.5,
		CapabilityWeight:    0.4,
		ConcealmentWeight:   0.4,
		DistanceFalloff:     0.002,
		ConfidenceDecayRate: 0.02,
		NoiseScale:          0.3,
	}
}

// DetectionFailureReason explains why an observation produced no
// perception.
type DetectionFailureReason int

const (
	FailureOutOfRange DetectionFailureReason = iota
	FailureConcealed
)

// State holds the observer's most recent belief about a fact.
type State struct {
	Perception  *GroundTruth
	Accuracy    float64
	Confidence  float64
	LastUpdated uint64
}

// NewState returns an empty, unobserved State.
func NewState() *State { return &State{} }

// Input is everything one perception step needs.
type Input struct {
	GroundTruth GroundTruth
	FactID      FactID
	Observer    ObserverStats
	Target      TargetStats
	Distance    float64
	// RNG is a single draw in [0,1) used to sample noise around the
	// true value, mirroring mod.rs's single-field PerceptionInput.rng.
	RNG         float64
	ElapsedTime uint32
	CurrentTick uint64
}

// Event is the sealed set of events a perception step can emit.
type Event interface{ isPerceptionEvent() }

// ObservationAttempted is emitted at the start of every step.
type ObservationAttempted struct{ FactID FactID }

func (ObservationAttempted) isPerceptionEvent() {}

// DetectionFailed is emitted when the observer could not perceive the
// fact at all (out of range or fully concealed).
type DetectionFailed struct{ Reason DetectionFailureReason }

func (DetectionFailed) isPerceptionEvent() {}

// PerceptionUpdated is emitted whenever a new perceived value is
// recorded.
type PerceptionUpdated struct {
	Value      GroundTruth
	Accuracy   float64
	Confidence float64
}

func (PerceptionUpdated) isPerceptionEvent() {}

// ConfidenceDecayed is emitted when elapsed time erodes confidence in a
// previously recorded perception.
type ConfidenceDecayed struct{ NewValue float64 }

func (ConfidenceDecayed) isPerceptionEvent() {}
