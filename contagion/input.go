package contagion

import (
	"github.com/kentwait/issun-mechanics/graph"
)

// RNG is the minimal interface Input needs from a deterministic draw
// source (spec §3.4/§C9). *streamrng.Stream satisfies it; tests may
// supply a fixed-value stub to pin a scenario's outcome, as spec.md's
// worked scenarios (S1, S2, S6) do.
type RNG interface {
	Uniform(tick uint64, subjectID, edgeID string) float64
}

// Input is the per-step, host-constructed value carrying every extrinsic
// influence on a tick, so that Step is a pure function of (Config, State,
// Input) alone (spec §3.1/§3.4).
type Input struct {
	// Tick is the current simulated time, used for lifetime/duration
	// checks and as an RNG draw coordinate.
	Tick uint64
	// Graph is the read-only substrate the contagion propagates over.
	Graph *graph.Graph
	// Density, keyed by node id, is the ambient density SpreadPolicy
	// consults (missing entries are treated as 0).
	Density map[string]float64
	// Resistance, keyed by node id, is the per-node resistance stat
	// ProgressionPolicy consults (missing entries are treated as 0).
	Resistance map[string]uint32
	// MutationNoise, keyed by contagion id, scales the per-tick mutation
	// probability (missing entries are treated as 1.0, i.e. no dampening).
	MutationNoise map[string]float64
	// RNG is the seekable deterministic draw stream backing every
	// stochastic decision this tick (spec §3.4/§C9): trigger rolls and
	// mutation rolls are both derived from it, indexed by
	// (tick, contagion id, node/edge id).
	RNG RNG
}

func (in Input) densityAt(nodeID string) float64 {
	if in.Density == nil {
		return 0
	}
	return in.Density[nodeID]
}

func (in Input) resistanceAt(nodeID string) uint32 {
	if in.Resistance == nil {
		return 0
	}
	return in.Resistance[nodeID]
}

func (in Input) mutationNoiseFor(contagionID string) float64 {
	if in.MutationNoise == nil {
		return 1.0
	}
	if v, ok := in.MutationNoise[contagionID]; ok {
		return v
	}
	return 1.0
}
