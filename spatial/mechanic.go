package spatial

import "github.com/kentwait/issun-mechanics/mechanic"

// Mechanic is the generic spatial composer, parameterized over the two
// policy axes the original's SpatialMechanic<T, D> declares.
type Mechanic[T TopologyPolicy, D DistancePolicy] struct{}

// Step dispatches on the Query carried by Input and emits the matching
// answer event. Occupancy queries mutate State; every other query is a
// read against Input.Graph.
func (m Mechanic[T, D]) Step(config Config, state *State, input Input, emitter mechanic.EventEmitter[Event]) {
	var topology T
	var distance D
	g := input.Graph

	switch q := input.Query.(type) {
	case NeighborsQuery:
		emitter.Emit(NeighborsFound{Node: q.Node, Neighbors: topology.Neighbors(g, q.Node)})

	case AdjacencyQuery:
		emitter.Emit(AdjacencyChecked{From: q.From, To: q.To, Adjacent: topology.AreAdjacent(g, q.From, q.To)})

	case DistanceQuery:
		if d, ok := distance.CalculateDistance(g, q.From, q.To); ok {
			emitter.Emit(DistanceCalculated{From: q.From, To: q.To, Distance: d})
		} else {
			emitter.Emit(DistanceUnavailable{From: q.From, To: q.To})
		}

	case MovementCostQuery:
		if c, ok := distance.MovementCost(g, q.From, q.To); ok {
			emitter.Emit(MovementCostCalculated{From: q.From, To: q.To, Cost: c})
		} else {
			emitter.Emit(DistanceUnavailable{From: q.From, To: q.To})
		}

	case OccupyQuery:
		if !g.HasNode(q.Node) {
			emitter.Emit(OccupancyBlocked{EntityID: q.EntityID, Node: q.Node, Reason: BlockReasonNodeNotFound})
			break
		}
		occupants := state.occupants[q.Node]
		if config.ExclusiveOccupancy && len(occupants) > 0 && !(len(occupants) == 1 && occupants[0] == q.EntityID) {
			emitter.Emit(OccupancyBlocked{EntityID: q.EntityID, Node: q.Node, Reason: BlockReasonAlreadyOccupied})
			break
		}
		if oldNode, ok := state.occupantOf[q.EntityID]; ok {
			state.occupants[oldNode] = removeString(state.occupants[oldNode], q.EntityID)
		}
		state.occupantOf[q.EntityID] = q.Node
		state.occupants[q.Node] = append(state.occupants[q.Node], q.EntityID)
		emitter.Emit(EntityOccupied{EntityID: q.EntityID, Node: q.Node})

	case VacateQuery:
		node, ok := state.occupantOf[q.EntityID]
		if !ok {
			break
		}
		delete(state.occupantOf, q.EntityID)
		state.occupants[node] = removeString(state.occupants[node], q.EntityID)
		emitter.Emit(EntityVacated{EntityID: q.EntityID, Node: node})
	}
}

func removeString(s []string, v string) []string {
	out := s[:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
