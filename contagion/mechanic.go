package contagion

import (
	"fmt"
	"math"

	"github.com/kentwait/issun-mechanics/mechanic"
)

// Mechanic is the generic contagion composer (spec §4.3/§C6): a
// zero-size struct parameterized by one type per policy axis, each
// resolved by instantiating its zero value — Go's nearest equivalent to
// the original design's static, self-less policy dispatch. Any type
// satisfying the relevant policy interface may be used, including ones
// with non-zero configuration fields, as long as their zero value is a
// sensible default (see strategies.LinearProgression for the convention).
//
// Structurally this follows kentwait-contagion's epidemic_si.go tick loop
// (SISimulation.Run: Initialize -> Update per generation), generalized
// from one hard-coded SI rule set to four independently-swappable policy
// axes.
type Mechanic[Sp SpreadPolicy, Pg ProgressionPolicy, Pr PropagationPolicy, Mu MutationPolicy] struct{}

// Execution declares the contagion mechanic transactional: a single Step
// call reads the state of every active node of a contagion at once, so
// the host should hold a lock spanning the call (spec §4.7, §5).
func (Mechanic[Sp, Pg, Pr, Mu]) Execution() mechanic.Transactional { return mechanic.Transactional{} }

// Step executes one tick for every live contagion in state, in contagion
// insertion order, implementing the algorithm of spec §4.4.
func (m Mechanic[Sp, Pg, Pr, Mu]) Step(config Config, state *State, input Input, emitter mechanic.EventEmitter[Event]) {
	config = config.Clamp()

	if input.Graph == nil {
		emitter.Emit(Rejected{Reason: UnknownReference{Kind: "graph", ID: ""}, Tick: input.Tick})
		return
	}

	var spread Sp
	var progression Pg
	var propagation Pr
	var mutation Mu

	removals := make([]string, 0)

	for _, c := range state.Contagions() {
		if c.Credibility < config.MinCredibility {
			// Already below threshold from a previous tick; nothing left
			// to do but ensure it is swept (defensive; normally removed
			// the tick it crossed the threshold).
			removals = append(removals, c.ID)
			continue
		}

		pressure := m.accumulatePressure(config, state, c, input, spread, propagation, emitter)
		m.triggerInfections(config, state, c, input, propagation, pressure, emitter)
		m.progressActiveInfections(config, state, c, input, progression, emitter)
		m.maybeMutate(config, c, input, mutation, emitter)

		extinctBelow := m.decayCredibility(config, c, input, emitter)
		if extinctBelow {
			removals = append(removals, c.ID)
			continue
		}

		if m.checkLifetime(config, state, c, input, emitter) {
			removals = append(removals, c.ID)
		}
	}

	for _, id := range removals {
		state.Remove(id)
	}
}

// accumulatePressure implements spec §4.4 steps 1-2: gather outgoing
// edges from every active node (in insertion order) and accumulate
// state-weighted, density-scaled pressure per target node.
func (m Mechanic[Sp, Pg, Pr, Mu]) accumulatePressure(
	config Config,
	state *State,
	c *Contagion,
	input Input,
	spread Sp,
	propagation Pr,
	emitter mechanic.EventEmitter[Event],
) map[string]float64 {
	pressure := make(map[string]float64)

	for _, sourceID := range c.ActiveNodes() {
		for _, edge := range input.Graph.OutgoingEdges(sourceID) {
			if edge.IsSelfLoop() {
				continue
			}
			record, hasRecord := state.Record(c.ID, sourceID)

			stateFactor := config.PlainTransmissionRate
			severity := 0.0
			if hasRecord {
				severity = float64(record.Severity)
				switch record.State {
				case StateIncubating:
					stateFactor = config.IncubationTransmissionRate
				case StateActive:
					stateFactor = config.ActiveTransmissionRate
				case StateRecovered:
					stateFactor = config.RecoveredTransmissionRate
				default:
					stateFactor = config.PlainTransmissionRate
				}
			}

			raw, invalid := safeFloat(propagation.CalculatePressure(severity, edge.Weight))
			if invalid {
				emitter.Emit(PolicyReturnedInvalid{Policy: fmt.Sprintf("%T", propagation), Method: "CalculatePressure", Tick: input.Tick})
			}
			scaled, invalid := safeFloat(spread.CalculateRate(raw*stateFactor*config.GlobalPropagationRate, input.densityAt(edge.To)))
			if invalid {
				emitter.Emit(PolicyReturnedInvalid{Policy: fmt.Sprintf("%T", spread), Method: "CalculateRate", Tick: input.Tick})
			}
			if scaled < 0 {
				emitter.Emit(PolicyReturnedInvalid{Policy: fmt.Sprintf("%T", spread), Method: "CalculateRate", Tick: input.Tick})
				scaled = 0
			}
			pressure[edge.To] += scaled
		}
	}

	for node, p := range pressure {
		if p < 0 {
			pressure[node] = 0
		}
	}
	return pressure
}

// triggerInfections implements spec §4.4 step 3: for each node whose
// accumulated pressure clears the propagation policy's threshold, roll the
// deterministic RNG stream and, on success, transition it from
// Susceptible to Incubating.
func (m Mechanic[Sp, Pg, Pr, Mu]) triggerInfections(
	config Config,
	state *State,
	c *Contagion,
	input Input,
	propagation Pr,
	pressure map[string]float64,
	emitter mechanic.EventEmitter[Event],
) {
	nodes := make([]string, 0, len(pressure))
	for _, n := range input.Graph.Nodes() {
		if _, ok := pressure[n.ID]; ok {
			nodes = append(nodes, n.ID)
		}
	}

	for _, node := range nodes {
		p := pressure[node]
		if p <= 0 {
			continue
		}
		if c.IsActiveNode(node) {
			continue // already has a record; not eligible for a fresh trigger
		}
		if !input.Graph.HasNode(node) {
			continue
		}
		if !propagation.ShouldTriggerInfection(p) {
			continue
		}
		r := input.RNG.Uniform(input.Tick, c.ID, node)
		threshold := p
		if threshold > 1.0 {
			threshold = 1.0
		}
		if r < threshold {
			severity := propagation.CalculateInitialSeverity(p)
			c.activateNode(node)
			state.setRecord(c.ID, node, &InfectionRecord{
				State:           StateIncubating,
				Severity:        severity,
				IncubatingSince: input.Tick,
			})
			emitter.Emit(InfectionStarted{ContagionID: c.ID, NodeID: node, Severity: severity, Tick: input.Tick})
		}
	}
}

// progressActiveInfections implements spec §4.4 step 4 and the state
// machine of §4.5.
func (m Mechanic[Sp, Pg, Pr, Mu]) progressActiveInfections(
	config Config,
	state *State,
	c *Contagion,
	input Input,
	progression Pg,
	emitter mechanic.EventEmitter[Event],
) {
	for _, node := range c.ActiveNodes() {
		record, ok := state.Record(c.ID, node)
		if !ok {
			continue
		}
		switch record.State {
		case StateIncubating:
			if record.IncubatingSince == input.Tick {
				continue
			}
			newSeverity := progression.UpdateSeverity(record.Severity, input.resistanceAt(node))
			record.Severity = newSeverity
			incubationElapsed := input.Tick - record.IncubatingSince
			maxDur := progression.IncubationMaxDuration()
			if newSeverity >= progression.IncubationThreshold() || (maxDur > 0 && incubationElapsed >= maxDur) {
				record.State = StateActive
				record.ActiveSince = input.Tick
				emitter.Emit(ProgressionAdvanced{ContagionID: c.ID, NodeID: node, From: StateIncubating, To: StateActive, Severity: record.Severity, Tick: input.Tick})
			}
		case StateActive:
			if record.ActiveSince == input.Tick {
				continue
			}
			newSeverity := progression.UpdateSeverity(record.Severity, input.resistanceAt(node))
			activeElapsed := input.Tick - record.ActiveSince
			maxDur := progression.ActiveMaxDuration()
			if newSeverity != record.Severity {
				record.Severity = newSeverity
			}
			if newSeverity == 0 || (maxDur > 0 && activeElapsed >= maxDur) {
				record.State = StateRecovered
				record.RecoveredSince = input.Tick
				emitter.Emit(ProgressionAdvanced{ContagionID: c.ID, NodeID: node, From: StateActive, To: StateRecovered, Severity: record.Severity, Tick: input.Tick})
			}
		case StateRecovered:
			if config.ReinfectionEnabled {
				immuneElapsed := input.Tick - record.RecoveredSince
				if immuneElapsed >= config.ImmunityDurationTurns {
					c.deactivateNode(node)
					state.deleteRecord(c.ID, node)
					emitter.Emit(ProgressionAdvanced{ContagionID: c.ID, NodeID: node, From: StateRecovered, To: StateSusceptible, Tick: input.Tick})
				}
			}
		}
	}
}

// maybeMutate implements spec §4.4 step 5: with probability
// default_mutation_rate * edge_noise, sampled via the RNG stream, apply
// the mutation policy and emit Mutated if the content actually changed.
func (m Mechanic[Sp, Pg, Pr, Mu]) maybeMutate(
	config Config,
	c *Contagion,
	input Input,
	mutation Mu,
	emitter mechanic.EventEmitter[Event],
) {
	if config.DefaultMutationRate <= 0 {
		return
	}
	noise := input.mutationNoiseFor(c.ID)
	prob := clamp01(config.DefaultMutationRate * noise)
	if prob <= 0 {
		return
	}
	r := input.RNG.Uniform(input.Tick, c.ID, "mutation")
	if r >= prob {
		return
	}
	next, changed := mutation.Mutate(c.Content, noise)
	if !changed {
		return
	}
	old := c.Content
	c.Content = next
	emitter.Emit(Mutated{ContagionID: c.ID, Old: old, New: next, Tick: input.Tick})
}

// decayCredibility implements spec §4.4 step 6. It returns true if the
// contagion must be removed this tick.
func (m Mechanic[Sp, Pg, Pr, Mu]) decayCredibility(
	config Config,
	c *Contagion,
	input Input,
	emitter mechanic.EventEmitter[Event],
) bool {
	c.Credibility = c.Credibility * config.CredibilityDecayPerTick
	if c.Credibility < 0 {
		c.Credibility = 0
	}
	if c.Credibility < config.MinCredibility {
		emitter.Emit(ExtinctBelowThreshold{ContagionID: c.ID, Credibility: c.Credibility, Tick: input.Tick})
		return true
	}
	return false
}

// checkLifetime implements spec §4.4 step 7. It returns true if the
// contagion must be removed this tick.
func (m Mechanic[Sp, Pg, Pr, Mu]) checkLifetime(
	config Config,
	state *State,
	c *Contagion,
	input Input,
	emitter mechanic.EventEmitter[Event],
) bool {
	if input.Tick-c.BornAt < config.LifetimeTurns {
		return false
	}
	for _, node := range c.ActiveNodes() {
		if record, ok := state.Record(c.ID, node); ok && record.State == StateActive {
			return false
		}
	}
	emitter.Emit(Extinct{ContagionID: c.ID, Tick: input.Tick})
	return true
}

// safeFloat treats NaN/Inf policy returns as zero per spec §4.6 ("Policy
// returning NaN: treat as zero"), and reports whether it clamped so the
// caller can emit PolicyReturnedInvalid alongside (spec §4.6/§7).
func safeFloat(v float64) (value float64, clamped bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, true
	}
	return v, false
}
