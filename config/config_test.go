package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScenario = `
[tick]
global_propagation_rate = 1.0
lifetime_turns = 10
min_credibility = 0.1
active_transmission_rate = 1.0

[[node]]
id = "A"

[[node]]
id = "B"

[[edge]]
id = "AB"
from = "A"
to = "B"
weight = 0.8

[[contagion]]
id = "X"
origin = "A"
kind = "disease"
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadValidScenario(t *testing.T) {
	path := writeScenario(t, sampleScenario)
	sf, err := Load(path)
	require.NoError(t, err)

	g, err := sf.Graph()
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())

	contagions, err := sf.Contagions()
	require.NoError(t, err)
	require.Len(t, contagions, 1)
	assert.Equal(t, "X", contagions[0].ID)

	cfg := sf.Config()
	assert.Equal(t, 1.0, cfg.GlobalPropagationRate)
	assert.Equal(t, uint64(10), cfg.LifetimeTurns)
}

func TestLoadRejectsEdgeToUnknownNode(t *testing.T) {
	path := writeScenario(t, `
[[node]]
id = "A"

[[edge]]
id = "AB"
from = "A"
to = "B"
weight = 0.5
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnrecognizedContagionKind(t *testing.T) {
	path := writeScenario(t, `
[[node]]
id = "A"

[[contagion]]
id = "X"
origin = "A"
kind = "not_a_real_kind"
`)
	_, err := Load(path)
	assert.Error(t, err)
}
