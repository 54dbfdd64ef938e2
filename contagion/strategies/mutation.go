package strategies

import "github.com/kentwait/issun-mechanics/contagion"

// NoMutation implements contagion.MutationPolicy by never changing
// content, for presets that don't model drift at all.
type NoMutation struct{}

func (NoMutation) Mutate(content contagion.Content, noise float64) (contagion.Content, bool) {
	return content, false
}

// DriftMutation implements contagion.MutationPolicy with a fixed,
// content-specific step per mutation event: disease severity escalates
// one step, product sentiment nudges towards the extreme it already
// leans, and market trend direction flips. Political and custom content
// have no defined drift and pass through unchanged. Grounded on
// kentwait-contagion's mutator.go (SubstitutionMutator), generalized from
// "swap one site in a sequence" to "advance one field of a sum-typed
// payload" since this package's Content has no sequence representation.
type DriftMutation struct{}

func (DriftMutation) Mutate(content contagion.Content, noise float64) (contagion.Content, bool) {
	switch v := content.(type) {
	case contagion.DiseaseContent:
		if v.Severity >= contagion.SeverityCritical {
			return v, false
		}
		v.Severity++
		return v, true
	case contagion.ProductReputationContent:
		step := noise * 0.1
		if v.Sentiment >= 0 {
			v.Sentiment += step
		} else {
			v.Sentiment -= step
		}
		if v.Sentiment > 1 {
			v.Sentiment = 1
		}
		if v.Sentiment < -1 {
			v.Sentiment = -1
		}
		return v, true
	case contagion.MarketTrendContent:
		switch v.Direction {
		case contagion.TrendBullish:
			v.Direction = contagion.TrendBearish
		case contagion.TrendBearish:
			v.Direction = contagion.TrendBullish
		default:
			v.Direction = contagion.TrendBullish
		}
		return v, true
	default:
		return content, false
	}
}
