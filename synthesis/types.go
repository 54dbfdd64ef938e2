// Package synthesis models crafting, research, fusion, and other
// transformation systems: inputs go in, an outcome comes out, following
// the policy-based design used throughout this module.
//
// This is a contract-summary port: the retrieved original only carried
// mod.rs and policies.rs (no strategies.rs or types.rs), so the full
// Rust type surface (Recipe builders, OutcomeTable, byproducts,
// transmutation entries, catalyst bookkeeping) is not reproduced here.
// What survives is the shape policies.rs actually specifies: success
// rate, quality, prerequisites, outcome, and trait inheritance.
package synthesis

// QualityLevel is an ordered quality tier, from worst to best.
type QualityLevel int

const (
	QualityCommon QualityLevel = iota
	QualityUncommon
	QualityRare
	QualityEpic
	QualityLegendary
)

// Value returns the tier's ordinal, used for averaging.
func (q QualityLevel) Value() uint8 { return uint8(q) }

// QualityFromValue clamps v into a valid QualityLevel.
func QualityFromValue(v uint8) QualityLevel {
	if v > uint8(QualityLegendary) {
		return QualityLegendary
	}
	return QualityLevel(v)
}

// RecipeCategory groups recipes for specialization bonuses.
type RecipeCategory int

const (
	CategoryGeneral RecipeCategory = iota
	CategoryAlchemy
	CategorySmithing
	CategoryResearch
	CategoryFusion
	CategoryEnchanting
)

// Ingredient names a required input and the quantity a recipe consumes.
type Ingredient struct {
	ID       string
	Quantity uint32
}

// IngredientInput is an ingredient as actually supplied, carrying its
// quality so DetermineQuality can factor it in.
type IngredientInput struct {
	ID       string
	Quantity uint32
	Quality  QualityLevel
}

// PrerequisiteKind distinguishes what a Prerequisite gates on.
type PrerequisiteKind int

const (
	PrerequisiteTech PrerequisiteKind = iota
	PrerequisiteItem
	PrerequisiteSkill
)

// Prerequisite is a single condition a recipe requires before it can be
// attempted.
type Prerequisite struct {
	Kind PrerequisiteKind
	ID   string
}

// UnlockedPrerequisites is the synthesizer's current unlocked state.
type UnlockedPrerequisites struct {
	Techs  map[string]struct{}
	Items  map[string]struct{}
	Skills map[string]struct{}
}

// NewUnlockedPrerequisites returns an UnlockedPrerequisites with all sets
// initialized empty.
func NewUnlockedPrerequisites() UnlockedPrerequisites {
	return UnlockedPrerequisites{
		Techs:  make(map[string]struct{}),
		Items:  make(map[string]struct{}),
		Skills: make(map[string]struct{}),
	}
}

// Has reports whether the given prerequisite is unlocked.
func (u UnlockedPrerequisites) Has(p Prerequisite) bool {
	var set map[string]struct{}
	switch p.Kind {
	case PrerequisiteTech:
		set = u.Techs
	case PrerequisiteItem:
		set = u.Items
	case PrerequisiteSkill:
		set = u.Skills
	}
	_, ok := set[p.ID]
	return ok
}

// SynthesisOutput is a single produced item and its quantity.
type SynthesisOutput struct {
	ItemID   string
	Quantity uint32
}

// Recipe describes a single synthesizable transformation.
type Recipe struct {
	ID            string
	Name          string
	Category      RecipeCategory
	Difficulty    float64
	Ingredients   []Ingredient
	Prerequisites []Prerequisite
	Outputs       []SynthesisOutput
	BaseQuality   QualityLevel
}

// SynthesizerStats describes the entity attempting synthesis.
type SynthesizerStats struct {
	EntityID        string
	SkillLevel      float64
	Luck            float64
	QualityBonus    float64
	Specializations map[RecipeCategory]float64
}

// SynthesisContext carries ambient conditions (elapsed time, catalysts
// present) that strategies may use to adjust unexpected-outcome chance.
type SynthesisContext struct {
	ElapsedTime uint32
	Catalysts   []string
}

// InheritanceSource is one entity contributing traits during fusion.
type InheritanceSource struct {
	EntityID string
	Traits   []string
}

// InheritedTrait is a trait selected for the fused output.
type InheritedTrait struct {
	TraitID        string
	SourceEntityID string
}

// Config tunes the success-rate, quality, and outcome formulas.
type Config struct {
	BaseSuccessRate        float64
	SkillWeight            float64
	LuckWeight             float64
	CriticalThreshold      float64
	PartialThreshold       float64
	UnexpectedChance       float64
	FailureConsumptionRate float64
}

// DefaultConfig returns reasonable defaults for a crafting-style system.
func DefaultConfig() Config {
	return Config{
		BaseSuccessRate:        0.5,
		SkillWeight:            0.4,
		LuckWeight:             0.1,
		CriticalThreshold:      0.1,
		PartialThreshold:       0.2,
		UnexpectedChance:       0.05,
		FailureConsumptionRate: 0.5,
	}
}

// OutcomeType is the kind of result a synthesis attempt produced.
type OutcomeType int

const (
	OutcomeSuccess OutcomeType = iota
	OutcomeCriticalSuccess
	OutcomePartialSuccess
	OutcomeUnexpected
	OutcomeTransmutation
	OutcomeFailure
)

// IsSuccess reports whether the outcome produced usable output.
func (o OutcomeType) IsSuccess() bool {
	switch o {
	case OutcomeSuccess, OutcomeCriticalSuccess, OutcomePartialSuccess, OutcomeTransmutation:
		return true
	default:
		return false
	}
}

// Outcome is the full result of one synthesis attempt.
type Outcome struct {
	Type             OutcomeType
	Quality          QualityLevel
	ConsumedFraction float64
}

// HistoryEntry records one past attempt for State.History.
type HistoryEntry struct {
	Tick        uint64
	RecipeID    string
	OutcomeType OutcomeType
}

// State is the synthesizer's persistent state across attempts.
type State struct {
	LastOutcome *Outcome
	History     []HistoryEntry
}

// NewState returns an empty State.
func NewState() *State { return &State{} }

// Input is everything one synthesis attempt needs.
type Input struct {
	Recipe      Recipe
	Ingredients []IngredientInput
	Synthesizer SynthesizerStats
	Context     SynthesisContext
	Unlocked    UnlockedPrerequisites
	// RNG is a single draw in [0,1) reused for the outcome roll, the
	// quality roll, and the inheritance roll, mirroring mod.rs's
	// single-field SynthesisInput.rng in its worked example.
	RNG         float64
	Slots       int
	Affinity    float64
	Sources     []InheritanceSource
	CurrentTick uint64
}

// Event is the sealed set of events a synthesis step can emit.
type Event interface{ isSynthesisEvent() }

// PrerequisitesNotMet is emitted when required prerequisites are
// missing; no attempt is made and no materials are consumed.
type PrerequisitesNotMet struct{ Missing []Prerequisite }

func (PrerequisitesNotMet) isSynthesisEvent() {}

// SynthesisCompleted is emitted whenever an attempt resolves, success or
// failure.
type SynthesisCompleted struct {
	Outcome OutcomeType
	Quality QualityLevel
}

func (SynthesisCompleted) isSynthesisEvent() {}

// MaterialsConsumed is emitted alongside a failure to report the
// fraction of materials lost.
type MaterialsConsumed struct{ Fraction float64 }

func (MaterialsConsumed) isSynthesisEvent() {}

// TraitsInherited is emitted when a fusion-style attempt selects traits
// from its sources.
type TraitsInherited struct{ Traits []InheritedTrait }

func (TraitsInherited) isSynthesisEvent() {}
