package contagion

// infectionKey identifies a per-(contagion, node) record (spec §3.3
// ownership note: "per-node infection records ... keyed by (ContagionId,
// NodeId) and referenced by weak id only").
type infectionKey struct {
	contagionID string
	nodeID      string
}

// State is the mutable per-simulation registry a contagion mechanic
// operates on: the set of live contagions (in insertion order, for the
// tie-break rule of spec §4.4) and the per-(contagion, node) infection
// records, owned separately so a node's record lifecycle doesn't require
// a back-pointer into its contagion (spec §9 arena-with-indices note).
//
// Grounded on kentwait-contagion's host.go host-registry pattern,
// generalized from "one registry of hosts" to "one registry of
// contagions plus a side table of infection records."
type State struct {
	order       []string
	contagions  map[string]*Contagion
	infections  map[infectionKey]*InfectionRecord
}

// NewState returns an empty registry.
func NewState() *State {
	return &State{
		contagions: make(map[string]*Contagion),
		infections: make(map[infectionKey]*InfectionRecord),
	}
}

// Add inserts a new contagion into the registry and seeds its origin
// node's record in the Active state at severity 100, since a contagion's
// origin node is active from birth (spec §3.3).
func (s *State) Add(c *Contagion) {
	if _, exists := s.contagions[c.ID]; exists {
		return
	}
	s.order = append(s.order, c.ID)
	s.contagions[c.ID] = c
	s.infections[infectionKey{c.ID, c.OriginNodeID}] = &InfectionRecord{
		State:       StateActive,
		Severity:    100,
		ActiveSince: c.BornAt,
	}
}

// Contagions returns the live contagions in insertion order.
func (s *State) Contagions() []*Contagion {
	out := make([]*Contagion, 0, len(s.order))
	for _, id := range s.order {
		if c, ok := s.contagions[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Get returns the contagion with the given id.
func (s *State) Get(id string) (*Contagion, bool) {
	c, ok := s.contagions[id]
	return c, ok
}

// Record returns the infection record for (contagionID, nodeID).
func (s *State) Record(contagionID, nodeID string) (*InfectionRecord, bool) {
	r, ok := s.infections[infectionKey{contagionID, nodeID}]
	return r, ok
}

func (s *State) setRecord(contagionID, nodeID string, r *InfectionRecord) {
	s.infections[infectionKey{contagionID, nodeID}] = r
}

func (s *State) deleteRecord(contagionID, nodeID string) {
	delete(s.infections, infectionKey{contagionID, nodeID})
}

// Remove deletes a contagion and every infection record it owns.
func (s *State) Remove(id string) {
	c, ok := s.contagions[id]
	if !ok {
		return
	}
	for _, nodeID := range c.ActiveNodes() {
		s.deleteRecord(id, nodeID)
	}
	delete(s.contagions, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
