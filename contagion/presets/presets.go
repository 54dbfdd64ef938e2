// Package presets collects named, ready-to-use Mechanic instantiations
// (spec §C11/§7 "Presets are concrete named instantiations of the generic
// Mechanic with specific policy choices"). It lives apart from package
// contagion to avoid an import cycle: presets depend on both contagion
// and strategies, and strategies must not depend on presets.
package presets

import (
	"github.com/kentwait/issun-mechanics/contagion"
	"github.com/kentwait/issun-mechanics/contagion/strategies"
)

// ClassicOutbreak is the epidemiological preset: linear spread, linear
// resistance-gated progression, the reference propagation constants of
// spec §8's worked scenarios, and no mutation. The scenario tests run this
// instantiation, except the lifetime-exhaustion scenario, which swaps in
// ThresholdProgression so the origin node recovers.
type ClassicOutbreak = contagion.Mechanic[
	strategies.LinearSpread,
	strategies.LinearProgression,
	strategies.LinearPropagation,
	strategies.NoMutation,
]

// DriftingRumor is the social preset: diminishing-returns spread (dense
// neighborhoods don't guarantee belief), a steep, low-threshold
// propagation law (a single credible exposure usually convinces), and
// content drift as the rumor retells itself.
type DriftingRumor = contagion.Mechanic[
	strategies.DiminishingSpread,
	strategies.ThresholdProgression,
	strategies.SteepPropagation,
	strategies.DriftMutation,
]

// SlowBurn is the gradual-spread preset: linear spread and propagation
// but a stepped progression policy, for contagions that escalate sharply
// once established rather than climbing severity tick by tick.
type SlowBurn = contagion.Mechanic[
	strategies.LinearSpread,
	strategies.ThresholdProgression,
	strategies.LinearPropagation,
	strategies.NoMutation,
]
