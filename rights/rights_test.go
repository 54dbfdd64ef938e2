package rights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kentwait/issun-mechanics/mechanic"
)

func TestModernPropertyRightsRejectsPartialClaim(t *testing.T) {
	cfg := DefaultConfig()
	state := NewState()
	emitter := &mechanic.SliceEmitter[Event]{}

	var m ModernPropertyRights
	m.Step(cfg, state, Input{Action: AssertClaim{AssetID: 1, Strength: 0.5}}, emitter)

	assert.Equal(t, []Event{ActionRejected{Reason: InvalidStrength}}, emitter.Events)
}

func TestStockOwnershipAllowsFractionalClaim(t *testing.T) {
	cfg := Config{AllowPartialClaims: true}
	state := NewState()
	emitter := &mechanic.SliceEmitter[Event]{}

	var m StockOwnership
	m.Step(cfg, state, Input{Action: AssertClaim{AssetID: 1, Strength: 0.3}}, emitter)

	claim, ok := state.Claims[1]
	assert.True(t, ok)
	assert.InDelta(t, 0.3, claim.Strength, 1e-9)
}

func TestPersonalRightsNeverTransfers(t *testing.T) {
	cfg := DefaultConfig()
	state := NewState()
	state.Claims[1] = Claim{AssetID: 1, Strength: 1.0}
	emitter := &mechanic.SliceEmitter[Event]{}

	var m PersonalRights
	m.Step(cfg, state, Input{Action: TransferClaim{AssetID: 1, Amount: 1.0}}, emitter)

	var rejected bool
	for _, e := range emitter.Events {
		if r, ok := e.(ActionRejected); ok && r.Reason == TransferNotAllowed {
			rejected = true
		}
	}
	assert.True(t, rejected)
	assert.Contains(t, state.Claims, AssetID(1))
}

func TestConsensusRecognitionScalesWithCount(t *testing.T) {
	cfg := DefaultConfig()
	state := NewState()
	emitter := &mechanic.SliceEmitter[Event]{}

	var m DAOGovernance
	m.Step(cfg, state, Input{Action: Recognize{RecognitionCount: 5}}, emitter)

	assert.InDelta(t, 0.5, state.Legitimacy, 1e-9)
}

func TestClaimExpiresAtConfiguredTick(t *testing.T) {
	cfg := DefaultConfig()
	state := NewState()
	expiration := uint64(10)
	state.Claims[1] = Claim{AssetID: 1, Strength: 1.0, Expiration: &expiration}
	emitter := &mechanic.SliceEmitter[Event]{}

	var m ModernPropertyRights
	m.Step(cfg, state, Input{Action: Recognize{RecognitionCount: 0}, CurrentTick: 10}, emitter)

	assert.NotContains(t, state.Claims, AssetID(1))
	assert.Contains(t, emitter.Events, ClaimExpired{AssetID: 1})
}
