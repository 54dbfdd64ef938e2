// Package spatial provides topology and distance queries over the
// §3.2 graph substrate (package graph), consolidating the territory,
// worldmap, and dungeon spatial logic the original groups under one
// mechanic.
//
// Grounded on
// original_source/crates/issun-core/src/mechanics/spatial/{mod,policies}.rs
// and strategies/{euclidean_distance,fixed_distance,graph_topology,
// manhattan_distance}.rs. Unlike the original, which owns a bespoke
// SpatialGraph/SpatialNode/SpatialEdge type family, this port queries
// the graph package directly — the same substrate contagion walks —
// rather than duplicating node/edge storage.
package spatial

import "github.com/kentwait/issun-mechanics/graph"

// NodeID aliases graph.Node's id type for readability in this package.
type NodeID = string

// Neighbor returns the endpoint of e that is not id: e.To when id is
// the edge's From, e.From otherwise. graph.Graph.OutgoingEdges and
// IncomingEdges report an edge's original From/To even when it is
// being traversed in the reverse (bidirectional) direction, so callers
// that want "the node on the other end" must resolve it this way
// rather than reading e.To directly.
func Neighbor(id string, e graph.Edge) string {
	if e.From == id {
		return e.To
	}
	return e.From
}

// BlockReason explains why an occupancy request was refused.
type BlockReason int

const (
	BlockReasonNodeNotFound BlockReason = iota
	BlockReasonAlreadyOccupied
)

// Config tunes occupancy behavior.
type Config struct {
	// ExclusiveOccupancy, when true, rejects occupying a node that
	// already holds a different entity.
	ExclusiveOccupancy bool
}

// DefaultConfig returns exclusive occupancy, the original's implicit
// behavior (one entity per node at a time).
func DefaultConfig() Config {
	return Config{ExclusiveOccupancy: true}
}

// State tracks which entity occupies which node.
type State struct {
	occupantOf map[string]string   // entityID -> nodeID
	occupants  map[string][]string // nodeID -> entityIDs
}

// NewState returns an empty occupancy State.
func NewState() *State {
	return &State{occupantOf: make(map[string]string), occupants: make(map[string][]string)}
}

// OccupantsOf returns the entities currently occupying node, in
// insertion order.
func (s *State) OccupantsOf(node string) []string {
	out := make([]string, len(s.occupants[node]))
	copy(out, s.occupants[node])
	return out
}

// NodeOf returns the node entityID currently occupies, if any.
func (s *State) NodeOf(entityID string) (string, bool) {
	node, ok := s.occupantOf[entityID]
	return node, ok
}

// Query is the sealed set of requests a spatial step can serve.
type Query interface{ isSpatialQuery() }

// NeighborsQuery asks for every node adjacent to Node.
type NeighborsQuery struct{ Node NodeID }

func (NeighborsQuery) isSpatialQuery() {}

// AdjacencyQuery asks whether two nodes are adjacent.
type AdjacencyQuery struct{ From, To NodeID }

func (AdjacencyQuery) isSpatialQuery() {}

// DistanceQuery asks for the distance between two nodes.
type DistanceQuery struct{ From, To NodeID }

func (DistanceQuery) isSpatialQuery() {}

// MovementCostQuery asks for the cost to move directly from From to To.
type MovementCostQuery struct{ From, To NodeID }

func (MovementCostQuery) isSpatialQuery() {}

// OccupyQuery asks to place EntityID at Node.
type OccupyQuery struct {
	EntityID string
	Node     NodeID
}

func (OccupyQuery) isSpatialQuery() {}

// VacateQuery asks to remove EntityID from wherever it is occupying.
type VacateQuery struct{ EntityID string }

func (VacateQuery) isSpatialQuery() {}

// Input is one spatial step's request against a graph.
type Input struct {
	Graph *graph.Graph
	Query Query
}

// Event is the sealed set of events a spatial step can emit.
type Event interface{ isSpatialEvent() }

// NeighborsFound answers a NeighborsQuery.
type NeighborsFound struct {
	Node      NodeID
	Neighbors []NodeID
}

func (NeighborsFound) isSpatialEvent() {}

// AdjacencyChecked answers an AdjacencyQuery.
type AdjacencyChecked struct {
	From, To NodeID
	Adjacent bool
}

func (AdjacencyChecked) isSpatialEvent() {}

// DistanceCalculated answers a DistanceQuery when a distance could be
// determined.
type DistanceCalculated struct {
	From, To NodeID
	Distance float64
}

func (DistanceCalculated) isSpatialEvent() {}

// DistanceUnavailable answers a DistanceQuery when no distance could be
// determined (missing position, unconnected nodes, or unknown ids).
type DistanceUnavailable struct{ From, To NodeID }

func (DistanceUnavailable) isSpatialEvent() {}

// MovementCostCalculated answers a MovementCostQuery.
type MovementCostCalculated struct {
	From, To NodeID
	Cost     float64
}

func (MovementCostCalculated) isSpatialEvent() {}

// EntityOccupied is emitted when an OccupyQuery succeeds.
type EntityOccupied struct {
	EntityID string
	Node     NodeID
}

func (EntityOccupied) isSpatialEvent() {}

// OccupancyBlocked is emitted when an OccupyQuery is refused.
type OccupancyBlocked struct {
	EntityID string
	Node     NodeID
	Reason   BlockReason
}

func (OccupancyBlocked) isSpatialEvent() {}

// EntityVacated is emitted when a VacateQuery removes an entity from
// its node.
type EntityVacated struct {
	EntityID string
	Node     NodeID
}

func (EntityVacated) isSpatialEvent() {}
