package spatial

// GraphSpatialMechanic is graph topology with hop-count distance, for
// abstract graphs where only connectivity matters (mod.rs's quick-start
// example).
type GraphSpatialMechanic = Mechanic[GraphTopology, FixedDistance]

// GridSpatialMechanic is graph topology with Manhattan distance, for
// grid-based movement such as dungeon cells (mod.rs's "Grid-Based
// Dungeon" example names GridTopology, which this port does not
// reproduce — see DESIGN.md — so GraphTopology stands in for it here).
type GridSpatialMechanic = Mechanic[GraphTopology, ManhattanDistance]

// SpatialMechanic is the worldmap instantiation: graph topology with
// real-world Euclidean distance (mod.rs's "Graph-Based World Map"
// example).
type SpatialMechanic = Mechanic[GraphTopology, EuclideanDistance]
