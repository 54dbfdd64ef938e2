package strategies

// LinearSpread implements contagion.SpreadPolicy by scaling a base rate
// directly by ambient density and clamping the result to [0, 1]. Grounded
// on original_source's propagation/strategies/linear.rs LinearSpread,
// which computes `(base_rate * density).clamp(0.0, 1.0)`.
type LinearSpread struct{}

func (LinearSpread) CalculateRate(baseRate, density float64) float64 {
	v := baseRate * density
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// DiminishingSpread implements contagion.SpreadPolicy with density
// saturating towards 1 rather than scaling linearly, so crowded nodes
// don't let pressure grow unbounded with density: the rate is
// baseRate * density / (density + HalfSaturation), clamped to [0, 1],
// with negative density treated as 0.
type DiminishingSpread struct {
	// HalfSaturation is the density at which the rate reaches half of
	// baseRate. Zero uses the default of 0.5.
	HalfSaturation float64
}

func (d DiminishingSpread) CalculateRate(baseRate, density float64) float64 {
	half := d.HalfSaturation
	if half <= 0 {
		half = 0.5
	}
	if density < 0 {
		density = 0
	}
	factor := density / (density + half)
	v := baseRate * factor
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
