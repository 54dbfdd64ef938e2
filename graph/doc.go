// Package graph is grounded on katalvlaran-lvlath's graph.Vertex/graph.Edge
// shape (ID + Metadata on nodes, From/To/Weight on edges) and on
// kentwait-contagion's network.go directed/weighted/bidirectional
// connection semantics, restructured into the spec's insertion-order
// arena-with-indices layout rather than lvlath's live map-of-maps
// adjacency list or the teacher's plain 2D map.
package graph
