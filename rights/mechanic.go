package rights

import "github.com/kentwait/issun-mechanics/mechanic"

// Mechanic is the generic rights composer: a zero-size struct
// parameterized by one type per policy axis, resolved by instantiating
// its zero value, following the same convention as the other mechanics
// in this module.
type Mechanic[Sy RightsSystemPolicy, Tr TransferPolicy, Re RecognitionPolicy] struct{}

// Step dispatches on the action carried by Input, then applies
// legitimacy decay and sweeps expired claims.
func (m Mechanic[Sy, Tr, Re]) Step(config Config, state *State, input Input, emitter mechanic.EventEmitter[Event]) {
	var system Sy
	var transfer Tr
	var recognition Re

	switch action := input.Action.(type) {
	case AssertClaim:
		validated, reason, ok := system.ValidateClaim(action.Strength, config)
		if !ok {
			emitter.Emit(ActionRejected{Reason: reason})
			break
		}
		state.Claims[action.AssetID] = Claim{AssetID: action.AssetID, Strength: validated, Expiration: action.Expiration}
		emitter.Emit(ClaimAsserted{AssetID: action.AssetID, Strength: validated})

	case TransferClaim:
		if recognition.RequiresRecognition(config) && config.RequireRecognition && state.Legitimacy <= 0 {
			emitter.Emit(ActionRejected{Reason: RecognitionRequired})
			break
		}
		reason, ok := transfer.CanTransfer(state, action.AssetID, action.Amount, config)
		if !ok {
			emitter.Emit(ActionRejected{Reason: reason})
			break
		}
		tax := transfer.CalculateTax(action.Amount, config)
		ExecuteTransfer(state, action.AssetID, action.Amount)
		emitter.Emit(ClaimTransferred{AssetID: action.AssetID, Amount: action.Amount, Tax: tax})

	case Recognize:
		before := state.Legitimacy
		recognition.UpdateLegitimacy(state, action.RecognitionCount, config)
		if state.Legitimacy != before {
			emitter.Emit(LegitimacyChanged{NewValue: state.Legitimacy})
		}
	}

	before := state.Legitimacy
	ApplyLegitimacyDecay(state, input.ElapsedTime, config)
	if state.Legitimacy != before {
		emitter.Emit(LegitimacyChanged{NewValue: state.Legitimacy})
	}

	for assetID, claim := range state.Claims {
		if claim.Expiration != nil && input.CurrentTick >= *claim.Expiration {
			delete(state.Claims, assetID)
			emitter.Emit(ClaimExpired{AssetID: assetID})
		}
	}
}
