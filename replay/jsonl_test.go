package replay

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/kentwait/issun-mechanics/contagion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLEmitterWritesOneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	e := NewJSONLEmitter(&buf)
	e.Emit(contagion.InfectionStarted{ContagionID: "X", NodeID: "B", Severity: 20, Tick: 1})
	e.Emit(contagion.Extinct{ContagionID: "X", Tick: 5})
	require.NoError(t, e.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	var first jsonlRecord
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "infection_started", first.Kind)
	assert.Equal(t, uint64(1), first.Tick)

	var second jsonlRecord
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "extinct", second.Kind)
	assert.Equal(t, uint64(5), second.Tick)
}

func TestEventKindCoversEverySumTypeVariant(t *testing.T) {
	cases := []struct {
		event contagion.Event
		want  string
	}{
		{contagion.InfectionStarted{}, "infection_started"},
		{contagion.ProgressionAdvanced{}, "progression_advanced"},
		{contagion.Mutated{}, "mutated"},
		{contagion.ExtinctBelowThreshold{}, "extinct_below_threshold"},
		{contagion.Extinct{}, "extinct"},
		{contagion.Rejected{}, "rejected"},
		{contagion.PolicyReturnedInvalid{}, "policy_returned_invalid"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, eventKind(c.event))
	}
}
