package delegation

// DirectivePolicy determines compliance, interpretation, priority, and
// the resolved response type for a directive, given the delegator's
// authority and the delegate's autonomy and disposition.
type DirectivePolicy interface {
	// CalculateCompliance returns how faithfully the delegate will
	// follow the directive, in [-1.0, 1.0].
	CalculateCompliance(cfg Config, directive Directive, delegator DelegatorStats, delegate DelegateStats) float64

	// CalculateInterpretation returns how much creative freedom the
	// delegate takes in executing the directive, in [0.0, 1.0].
	CalculateInterpretation(cfg Config, directive Directive, delegate DelegateStats) float64

	// CalculatePriority returns how important the delegate considers
	// the directive relative to its own workload, in [0.0, 1.0].
	CalculatePriority(directive Directive, delegate DelegateStats) float64

	// DetermineResponse resolves the final response type from the three
	// computed quantities.
	DetermineResponse(cfg Config, compliance, interpretation, priority float64) ResponseType
}
