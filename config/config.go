// Package config loads a contagion scenario from a TOML file: the tick
// configuration, the node/edge substrate, and the seed contagions a host
// wants to run starting from tick zero (spec §6 "External interfaces").
//
// Grounded on kentwait-contagion's evoepi_config.go/evoepi_config_loader.go:
// a struct tree shaped by `toml:"..."` tags, a top-level Validate that
// walks each section, and pkg/errors-wrapped failures that name which
// section and which field rejected the value.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/kentwait/issun-mechanics/contagion"
	"github.com/kentwait/issun-mechanics/graph"
)

// ScenarioFile is the root of a contagion scenario TOML document.
//
//	[tick]
//	global_propagation_rate = 1.0
//	lifetime_turns = 20
//	min_credibility = 0.1
//
//	[[node]]
//	id = "A"
//
//	[[edge]]
//	id = "A->B"
//	from = "A"
//	to = "B"
//	weight = 0.8
//
//	[[contagion]]
//	id = "X"
//	origin = "A"
//	kind = "disease"
type ScenarioFile struct {
	Tick      tickConfig        `toml:"tick"`
	Nodes     []nodeConfig      `toml:"node"`
	Edges     []edgeConfig      `toml:"edge"`
	Contagion []contagionConfig `toml:"contagion"`

	validated bool
}

type tickConfig struct {
	GlobalPropagationRate      float64 `toml:"global_propagation_rate"`
	DefaultMutationRate        float64 `toml:"default_mutation_rate"`
	LifetimeTurns              uint64  `toml:"lifetime_turns"`
	MinCredibility             float64 `toml:"min_credibility"`
	IncubationTransmissionRate float64 `toml:"incubation_transmission_rate"`
	ActiveTransmissionRate     float64 `toml:"active_transmission_rate"`
	RecoveredTransmissionRate  float64 `toml:"recovered_transmission_rate"`
	PlainTransmissionRate      float64 `toml:"plain_transmission_rate"`
	CredibilityDecayPerTick    float64 `toml:"credibility_decay_per_tick"`
	ReinfectionEnabled         bool    `toml:"reinfection_enabled"`
	ImmunityDurationTurns      uint64  `toml:"immunity_duration_turns"`
}

type nodeConfig struct {
	ID   string `toml:"id"`
	Type string `toml:"type"`
}

type edgeConfig struct {
	ID            string  `toml:"id"`
	From          string  `toml:"from"`
	To            string  `toml:"to"`
	Weight        float64 `toml:"weight"`
	Bidirectional bool    `toml:"bidirectional"`
}

type contagionConfig struct {
	ID     string `toml:"id"`
	Origin string `toml:"origin"`
	Kind   string `toml:"kind"` // disease, product_reputation, political, market_trend
	BornAt uint64 `toml:"born_at"`
}

var nodeTypeByName = map[string]graph.NodeType{
	"":       graph.NodeTypeUnspecified,
	"city":   graph.NodeTypeCity,
	"cell":   graph.NodeTypeCell,
	"room":   graph.NodeTypeRoom,
	"region": graph.NodeTypeRegion,
}

// Load reads and validates a scenario TOML file at path.
func Load(path string) (*ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}
	var sf ScenarioFile
	if _, err := toml.Decode(string(data), &sf); err != nil {
		return nil, errors.Wrapf(err, "config: decode %s", path)
	}
	if err := sf.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config: validate %s", path)
	}
	return &sf, nil
}

// Validate checks every section and reports the first unrecognized
// reference or keyword it finds, following evoepi_config.go's per-section
// Validate chain.
func (sf *ScenarioFile) Validate() error {
	seen := make(map[string]bool, len(sf.Nodes))
	for _, n := range sf.Nodes {
		if n.ID == "" {
			return errors.New("config: node with empty id")
		}
		if seen[n.ID] {
			return errors.Errorf("config: duplicate node id %q", n.ID)
		}
		seen[n.ID] = true
		if _, ok := nodeTypeByName[n.Type]; !ok {
			return errors.Errorf("config: unrecognized node type %q for node %q", n.Type, n.ID)
		}
	}
	for _, e := range sf.Edges {
		if !seen[e.From] {
			return errors.Errorf("config: edge %q references unknown node %q", e.ID, e.From)
		}
		if !seen[e.To] {
			return errors.Errorf("config: edge %q references unknown node %q", e.ID, e.To)
		}
		if e.Weight < 0 {
			return errors.Errorf("config: edge %q has negative weight %f", e.ID, e.Weight)
		}
	}
	for _, c := range sf.Contagion {
		if !seen[c.Origin] {
			return errors.Errorf("config: contagion %q has unknown origin node %q", c.ID, c.Origin)
		}
		if _, err := contentFromKind(c.Kind); err != nil {
			return errors.Wrapf(err, "config: contagion %q", c.ID)
		}
	}
	sf.validated = true
	return nil
}

// Config returns the contagion.Config this scenario's tick section
// describes, clamped to safe ranges.
func (sf *ScenarioFile) Config() contagion.Config {
	t := sf.Tick
	return contagion.Config{
		GlobalPropagationRate:      t.GlobalPropagationRate,
		DefaultMutationRate:        t.DefaultMutationRate,
		LifetimeTurns:              t.LifetimeTurns,
		MinCredibility:             t.MinCredibility,
		IncubationTransmissionRate: t.IncubationTransmissionRate,
		ActiveTransmissionRate:     t.ActiveTransmissionRate,
		RecoveredTransmissionRate:  t.RecoveredTransmissionRate,
		PlainTransmissionRate:      t.PlainTransmissionRate,
		CredibilityDecayPerTick:    t.CredibilityDecayPerTick,
		ReinfectionEnabled:         t.ReinfectionEnabled,
		ImmunityDurationTurns:      t.ImmunityDurationTurns,
	}.Clamp()
}

// Graph builds the graph.Graph this scenario's node/edge sections
// describe, running Validate first if it has not yet succeeded.
func (sf *ScenarioFile) Graph() (*graph.Graph, error) {
	if !sf.validated {
		if err := sf.Validate(); err != nil {
			return nil, err
		}
	}
	g := graph.New()
	for _, n := range sf.Nodes {
		if err := g.AddNode(graph.Node{ID: n.ID, Type: nodeTypeByName[n.Type]}); err != nil {
			return nil, errors.Wrap(err, "config: build graph")
		}
	}
	for _, e := range sf.Edges {
		if err := g.AddEdge(graph.Edge{
			ID:            e.ID,
			From:          e.From,
			To:            e.To,
			Weight:        e.Weight,
			Bidirectional: e.Bidirectional,
		}); err != nil {
			return nil, errors.Wrap(err, "config: build graph")
		}
	}
	return g, nil
}

// Contagions builds this scenario's seed contagions, ready to be added to
// a freshly created contagion.State.
func (sf *ScenarioFile) Contagions() ([]*contagion.Contagion, error) {
	out := make([]*contagion.Contagion, 0, len(sf.Contagion))
	for _, c := range sf.Contagion {
		content, err := contentFromKind(c.Kind)
		if err != nil {
			return nil, errors.Wrapf(err, "config: contagion %q", c.ID)
		}
		out = append(out, contagion.NewContagion(c.ID, content, c.Origin, c.BornAt))
	}
	return out, nil
}

func contentFromKind(kind string) (contagion.Content, error) {
	switch kind {
	case "", "disease":
		return contagion.DiseaseContent{Severity: contagion.SeverityMild}, nil
	case "product_reputation":
		return contagion.ProductReputationContent{}, nil
	case "political":
		return contagion.PoliticalContent{}, nil
	case "market_trend":
		return contagion.MarketTrendContent{}, nil
	default:
		return nil, errors.Errorf("unrecognized contagion kind %q", kind)
	}
}
