package delegation

import "github.com/kentwait/issun-mechanics/mechanic"

// Mechanic is the generic delegation composer, parameterized by the
// single DirectivePolicy axis.
type Mechanic[P DirectivePolicy] struct{}

// Step computes compliance, interpretation, and priority for the given
// directive, resolves the response type, and updates State.
func (m Mechanic[P]) Step(config Config, state *State, input Input, emitter mechanic.EventEmitter[Event]) {
	var policy P

	emitter.Emit(DirectiveIssued{DirectiveID: input.Directive.ID})

	oldCompliance := state.Compliance
	compliance := policy.CalculateCompliance(config, input.Directive, input.Delegator, input.Delegate)
	interpretation := policy.CalculateInterpretation(config, input.Directive, input.Delegate)
	priority := policy.CalculatePriority(input.Directive, input.Delegate)
	response := policy.DetermineResponse(config, compliance, interpretation, priority)

	state.Compliance = compliance
	state.Interpretation = interpretation
	state.Priority = priority
	state.Response = response

	if compliance != oldCompliance {
		emitter.Emit(ComplianceChanged{Reason: ReasonDirectiveIssued, OldValue: oldCompliance, NewValue: compliance})
	}
	emitter.Emit(ResponseDetermined{Response: response, Compliance: compliance})
}
