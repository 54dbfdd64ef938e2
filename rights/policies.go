package rights

// RightsSystemPolicy determines the fundamental nature of claims:
// whether they must be whole, may be fractional, or may overlap.
type RightsSystemPolicy interface {
	ValidateClaim(strength ClaimStrength, cfg Config) (ClaimStrength, RejectionReason, bool)
}

// EffectiveStrength scales a claim's raw strength by the claimant's
// legitimacy; every RightsSystemPolicy shares this formula (the
// original expresses it as a trait default method).
func EffectiveStrength(baseStrength ClaimStrength, legitimacy float64) ClaimStrength {
	return baseStrength * legitimacy
}

// TransferPolicy determines whether and how claims move between
// entities.
type TransferPolicy interface {
	CanTransfer(state *State, assetID AssetID, amount ClaimStrength, cfg Config) (RejectionReason, bool)
	CalculateTax(amount ClaimStrength, cfg Config) float64
}

// ExecuteTransfer removes amount from the claim on assetID, deleting
// the claim entirely once its strength reaches zero. Shared across
// every TransferPolicy (the original's trait default method).
func ExecuteTransfer(state *State, assetID AssetID, amount ClaimStrength) {
	claim, ok := state.Claims[assetID]
	if !ok {
		return
	}
	claim.Strength -= amount
	if claim.Strength <= 0 {
		delete(state.Claims, assetID)
		return
	}
	state.Claims[assetID] = claim
}

// RecognitionPolicy determines how claims are validated and legitimized
// by others.
type RecognitionPolicy interface {
	RequiresRecognition(cfg Config) bool
	UpdateLegitimacy(state *State, recognitionCount int, cfg Config)
}

// ApplyLegitimacyDecay reduces legitimacy by cfg.LegitimacyDecayRate per
// elapsed tick, floored at zero. Shared across every RecognitionPolicy
// (the original's trait default method).
func ApplyLegitimacyDecay(state *State, elapsedTime uint32, cfg Config) {
	if cfg.LegitimacyDecayRate <= 0 || elapsedTime == 0 {
		return
	}
	decay := cfg.LegitimacyDecayRate * float64(elapsedTime)
	next := state.Legitimacy - decay
	if next < 0 {
		next = 0
	}
	state.Legitimacy = next
}
