// Package rights models legal claims and ownership, deliberately
// separate from physical possession (the inventory mechanic): "I hold
// the sword" is inventory, "I own the sword" is rights. A claim can
// exist without possession (stored goods) and possession can exist
// without a claim (theft).
//
// Grounded on original_source's
// crates/issun-core/src/mechanics/rights/{mod,policies,presets}.rs.
package rights

// AssetID identifies any claimable thing; intentionally opaque (an
// inventory item, a territory parcel, an abstract title).
type AssetID = uint64

// ClaimStrength is a fraction of ownership in [0,1], or exactly 1.0 for
// systems that only recognize whole claims; LayeredRights accepts any
// positive value.
type ClaimStrength = float64

// Config is the static, per-mechanic-instance configuration.
type Config struct {
	AllowPartialClaims  bool
	RequireRecognition  bool
	TransferTaxRate     float64
	LegitimacyDecayRate float64
}

// DefaultConfig mirrors RightsConfig::default(): AllowPartialClaims off,
// no recognition requirement, no tax, no decay. No strategy in this
// package reads AllowPartialClaims; whether fractional strengths are
// accepted is decided by the RightsSystemPolicy alone.
func DefaultConfig() Config {
	return Config{}
}

// Claim is one entity's stake in one asset.
type Claim struct {
	AssetID    AssetID
	Strength   ClaimStrength
	Expiration *uint64 // tick at which the claim lapses, nil = no expiration
}

// State is one entity's mutable rights standing.
type State struct {
	Claims     map[AssetID]Claim
	Legitimacy float64
}

// NewState returns an entity with no claims and full legitimacy.
func NewState() *State {
	return &State{Claims: make(map[AssetID]Claim), Legitimacy: 1.0}
}

// Action is the sum type of rights operations an Input carries.
type Action interface {
	isRightsAction()
}

// AssertClaim requests a new or strengthened claim on an asset.
type AssertClaim struct {
	AssetID    AssetID
	Strength   ClaimStrength
	Expiration *uint64
}

func (AssertClaim) isRightsAction() {}

// TransferClaim requests moving a claim amount off this entity's books
// (the receiving side is the host's responsibility: this mechanic
// tracks one entity's claims, not a two-party ledger).
type TransferClaim struct {
	AssetID AssetID
	Amount  ClaimStrength
}

func (TransferClaim) isRightsAction() {}

// Recognize reports how many other entities currently recognize this
// entity's claims, feeding RecognitionPolicy.UpdateLegitimacy.
type Recognize struct {
	RecognitionCount int
}

func (Recognize) isRightsAction() {}

// Input is constructed fresh for each rights action.
type Input struct {
	Action      Action
	ElapsedTime uint32
	CurrentTick uint64
}

// RejectionReason is the closed set of reasons an action does not
// proceed.
type RejectionReason int

const (
	InvalidStrength RejectionReason = iota
	ClaimNotFound
	InsufficientStrength
	TransferNotAllowed
	RecognitionRequired
)

// Event is the sum type of observable rights transitions.
type Event interface {
	isRightsEvent()
}

// ClaimAsserted announces a successful AssertClaim.
type ClaimAsserted struct {
	AssetID  AssetID
	Strength ClaimStrength
}

func (ClaimAsserted) isRightsEvent() {}

// ClaimTransferred announces a successful TransferClaim, including the
// tax charged.
type ClaimTransferred struct {
	AssetID AssetID
	Amount  ClaimStrength
	Tax     float64
}

func (ClaimTransferred) isRightsEvent() {}

// ActionRejected announces a failed action.
type ActionRejected struct {
	Reason RejectionReason
}

func (ActionRejected) isRightsEvent() {}

// LegitimacyChanged announces a legitimacy update from recognition or
// decay.
type LegitimacyChanged struct {
	NewValue float64
}

func (LegitimacyChanged) isRightsEvent() {}

// ClaimExpired announces a claim removed because the current tick has
// reached its expiration tick.
type ClaimExpired struct {
	AssetID AssetID
}

func (ClaimExpired) isRightsEvent() {}
