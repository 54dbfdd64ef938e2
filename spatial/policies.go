package spatial

import "github.com/kentwait/issun-mechanics/graph"

// TopologyPolicy determines adjacency and neighbor relationships over a
// graph.
type TopologyPolicy interface {
	// Neighbors returns every node adjacent to node, in insertion order.
	Neighbors(g *graph.Graph, node NodeID) []NodeID

	// AreAdjacent reports whether a and b are directly connected.
	AreAdjacent(g *graph.Graph, a, b NodeID) bool
}

// DistancePolicy determines how distance and movement cost are measured
// between two nodes.
type DistancePolicy interface {
	// CalculateDistance returns the distance between from and to, and
	// whether one could be determined at all.
	CalculateDistance(g *graph.Graph, from, to NodeID) (float64, bool)

	// MovementCost returns the cost to move directly from from to to.
	MovementCost(g *graph.Graph, from, to NodeID) (float64, bool)
}
