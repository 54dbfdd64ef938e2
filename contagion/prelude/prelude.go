// Package prelude re-exports the contagion mechanic's common surface
// under a single import, for hosts that want the spec's worked example
// without naming the contagion, strategies, and presets packages
// individually (spec §C11 glossary entry on curated re-export surfaces).
package prelude

import (
	"github.com/kentwait/issun-mechanics/contagion"
	"github.com/kentwait/issun-mechanics/contagion/presets"
	"github.com/kentwait/issun-mechanics/contagion/strategies"
)

type (
	Config          = contagion.Config
	State           = contagion.State
	Input           = contagion.Input
	RNG             = contagion.RNG
	Event           = contagion.Event
	Content         = contagion.Content
	Contagion       = contagion.Contagion
	InfectionState  = contagion.InfectionState
	InfectionRecord = contagion.InfectionRecord

	DiseaseContent            = contagion.DiseaseContent
	ProductReputationContent  = contagion.ProductReputationContent
	PoliticalContent          = contagion.PoliticalContent
	MarketTrendContent        = contagion.MarketTrendContent
	CustomContent             = contagion.CustomContent

	InfectionStarted      = contagion.InfectionStarted
	ProgressionAdvanced   = contagion.ProgressionAdvanced
	Mutated               = contagion.Mutated
	ExtinctBelowThreshold = contagion.ExtinctBelowThreshold
	Extinct               = contagion.Extinct
	Rejected              = contagion.Rejected

	ClassicOutbreak = presets.ClassicOutbreak
	DriftingRumor   = presets.DriftingRumor
	SlowBurn        = presets.SlowBurn

	LinearSpread         = strategies.LinearSpread
	DiminishingSpread    = strategies.DiminishingSpread
	LinearProgression    = strategies.LinearProgression
	ThresholdProgression = strategies.ThresholdProgression
	LinearPropagation    = strategies.LinearPropagation
	SteepPropagation     = strategies.SteepPropagation
	NoMutation           = strategies.NoMutation
	DriftMutation        = strategies.DriftMutation
)

var (
	NewState     = contagion.NewState
	NewContagion = contagion.NewContagion
	DefaultConfig = contagion.DefaultConfig
)
