package spatial

import (
	"math"

	"github.com/kentwait/issun-mechanics/graph"
)

// GraphTopology determines adjacency from explicit edges, using
// Neighbor to resolve the correct endpoint regardless of which
// direction an edge is being traversed. It is the most flexible
// topology and the only one this port needs, since the graph substrate
// has no separate grid representation (the original's GridTopology has
// no counterpart here — see DESIGN.md).
type GraphTopology struct{}

// Neighbors collects every node reachable by one edge, in both the
// forward direction and the reverse of any bidirectional edge.
func (GraphTopology) Neighbors(g *graph.Graph, node NodeID) []NodeID {
	var neighbors []NodeID
	// OutgoingEdges already lists bidirectional edges from both ends.
	for _, e := range g.OutgoingEdges(node) {
		neighbors = append(neighbors, Neighbor(node, e))
	}
	return neighbors
}

// AreAdjacent reports whether a directly reaches b, including via the
// reverse of a bidirectional edge.
func (GraphTopology) AreAdjacent(g *graph.Graph, a, b NodeID) bool {
	for _, e := range g.OutgoingEdges(a) {
		if Neighbor(a, e) == b {
			return true
		}
	}
	for _, e := range g.IncomingEdges(a) {
		if e.Bidirectional && Neighbor(a, e) == b {
			return true
		}
	}
	return false
}

// FixedDistance treats the graph as unweighted: any two directly
// connected nodes are exactly 1.0 apart, regardless of edge weight.
// Distance between unconnected nodes is not determined (multi-hop
// pathfinding is out of scope for this mechanic).
type FixedDistance struct{}

func (FixedDistance) CalculateDistance(g *graph.Graph, from, to NodeID) (float64, bool) {
	if from == to {
		return 0, true
	}
	if (GraphTopology{}).AreAdjacent(g, from, to) {
		return 1.0, true
	}
	return 0, false
}

func (d FixedDistance) MovementCost(g *graph.Graph, from, to NodeID) (float64, bool) {
	return d.CalculateDistance(g, from, to)
}

// EuclideanDistance measures straight-line distance between node
// positions: √((x₁-x₂)²+(y₁-y₂)²+(z₁-z₂)²). Both nodes must have a
// position set.
type EuclideanDistance struct{}

func (EuclideanDistance) CalculateDistance(g *graph.Graph, from, to NodeID) (float64, bool) {
	if from == to {
		return 0, true
	}
	fromPos, toPos, ok := positionsOf(g, from, to)
	if !ok {
		return 0, false
	}
	dx := fromPos.X - toPos.X
	dy := fromPos.Y - toPos.Y
	dz := fromPos.Z - toPos.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz), true
}

func (d EuclideanDistance) MovementCost(g *graph.Graph, from, to NodeID) (float64, bool) {
	return d.CalculateDistance(g, from, to)
}

// ManhattanDistance measures grid (taxicab) distance between node
// positions: |x₁-x₂|+|y₁-y₂|. Useful for grid movement without
// diagonals; Z is ignored.
type ManhattanDistance struct{}

func (ManhattanDistance) CalculateDistance(g *graph.Graph, from, to NodeID) (float64, bool) {
	if from == to {
		return 0, true
	}
	fromPos, toPos, ok := positionsOf(g, from, to)
	if !ok {
		return 0, false
	}
	return math.Abs(fromPos.X-toPos.X) + math.Abs(fromPos.Y-toPos.Y), true
}

func (d ManhattanDistance) MovementCost(g *graph.Graph, from, to NodeID) (float64, bool) {
	return d.CalculateDistance(g, from, to)
}

func positionsOf(g *graph.Graph, from, to NodeID) (graph.Position, graph.Position, bool) {
	fromNode, ok := g.GetNode(from)
	if !ok || fromNode.Position == nil {
		return graph.Position{}, graph.Position{}, false
	}
	toNode, ok := g.GetNode(to)
	if !ok || toNode.Position == nil {
		return graph.Position{}, graph.Position{}, false
	}
	return *fromNode.Position, *toNode.Position, true
}
