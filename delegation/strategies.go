package delegation

// SimpleDelegationPolicy is the default strategy named in mod.rs's
// quick-start example: directive strength (the delegator's authority,
// amplified by urgency and importance), the delegate's relationship with
// the delegator, and how far below the delegator it sits in the hierarchy
// raise compliance, while the delegate's autonomy (low loyalty and its
// personality trait) lowers it.
type SimpleDelegationPolicy struct{}

// directiveStrength blends authority with how urgent and important the
// directive is.
func directiveStrength(directive Directive, delegator DelegatorStats) float64 {
	return delegator.Authority * (0.5 + 0.25*directive.Urgency + 0.25*directive.Importance)
}

// autonomy captures how much latitude the delegate's own disposition
// and standing give it to deviate from a directive.
func autonomy(delegate DelegateStats) float64 {
	base := (1.0 - delegate.Loyalty) * 0.6
	switch delegate.Personality {
	case TraitRebellious:
		base += 0.3
	case TraitPragmatic:
		base += 0.1
	case TraitAmbitious:
		base += 0.15
	case TraitLoyal:
		base -= 0.2
	}
	return clampSigned(base)
}

// CalculateCompliance combines directive strength against the
// delegate's autonomy and its relationship and hierarchy standing with
// the delegator.
func (SimpleDelegationPolicy) CalculateCompliance(cfg Config, directive Directive, delegator DelegatorStats, delegate DelegateStats) float64 {
	strength := directiveStrength(directive, delegator)
	hierarchyGap := float64(delegate.HierarchyRank - delegator.HierarchyRank)

	compliance := cfg.BaseCompliance
	compliance += strength * cfg.AuthorityWeight
	compliance += delegate.Relationship * cfg.RelationshipWeight
	compliance += hierarchyGap * cfg.HierarchyWeight
	compliance -= autonomy(delegate)
	compliance = compliance*2 - 1 // rescale [0,1]-ish sum into [-1,1]

	return clampSigned(compliance)
}

// CalculateInterpretation grows with skill and shrinks as urgency rises
// (less time to improvise).
func (SimpleDelegationPolicy) CalculateInterpretation(cfg Config, directive Directive, delegate DelegateStats) float64 {
	return clamp01(delegate.SkillLevel*0.7 + (1.0-directive.Urgency)*0.3)
}

// CalculatePriority weighs the directive's own importance against how
// busy the delegate already is.
func (SimpleDelegationPolicy) CalculatePriority(directive Directive, delegate DelegateStats) float64 {
	return clamp01(directive.Importance*(1.0-delegate.Workload*0.5) + directive.Urgency*0.2)
}

// DetermineResponse maps compliance onto the five response types,
// with priority nudging a borderline delegate toward deferral rather
// than outright ignoring.
func (SimpleDelegationPolicy) DetermineResponse(cfg Config, compliance, interpretation, priority float64) ResponseType {
	switch {
	case compliance <= cfg.DefianceThreshold:
		return ResponseDefy
	case compliance <= cfg.IgnoreThreshold:
		if priority > 0.5 {
			return ResponseDefer
		}
		return ResponseIgnore
	case interpretation > 0.6:
		return ResponseAcceptWithReservation
	default:
		return ResponseAccept
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampSigned(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
