package mechanic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kentwait/issun-mechanics/mechanic"
)

func TestSliceEmitterCollectsInOrder(t *testing.T) {
	var e mechanic.SliceEmitter[int]
	e.Emit(1)
	e.Emit(2)
	e.Emit(3)
	assert.Equal(t, []int{1, 2, 3}, e.Events)
}

func TestEmitterFuncAdaptsPlainFunction(t *testing.T) {
	var got []string
	emitter := mechanic.EmitterFunc[string](func(e string) {
		got = append(got, e)
	})
	var sink mechanic.EventEmitter[string] = emitter
	sink.Emit("a")
	sink.Emit("b")
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestExecutionHintKinds(t *testing.T) {
	assert.Equal(t, mechanic.KindParallelSafe, mechanic.ParallelSafe{}.Kind())
	assert.Equal(t, mechanic.KindSequentialAfter, mechanic.SequentialAfter{Predecessor: "contagion"}.Kind())
	assert.Equal(t, mechanic.KindTransactional, mechanic.Transactional{}.Kind())
}
