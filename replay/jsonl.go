package replay

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/kentwait/issun-mechanics/contagion"
)

// JSONLEmitter writes one JSON object per line per event, for hosts that
// want a replay trail without a SQLite dependency (e.g. piping into a log
// aggregator).
type JSONLEmitter struct {
	w   *bufio.Writer
	err error
}

type jsonlRecord struct {
	Kind string          `json:"kind"`
	Tick uint64          `json:"tick"`
	Data json.RawMessage `json:"data"`
}

// NewJSONLEmitter wraps w, buffering writes.
func NewJSONLEmitter(w io.Writer) *JSONLEmitter {
	return &JSONLEmitter{w: bufio.NewWriter(w)}
}

func (e *JSONLEmitter) Emit(event contagion.Event) {
	if e.err != nil {
		return
	}
	r, err := toRow(event)
	if err != nil {
		e.err = err
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		e.err = errors.Wrap(err, "replay: marshal event")
		return
	}
	line, err := json.Marshal(jsonlRecord{Kind: eventKind(event), Tick: r.tick, Data: data})
	if err != nil {
		e.err = errors.Wrap(err, "replay: marshal record")
		return
	}
	if _, err := e.w.Write(line); err != nil {
		e.err = errors.Wrap(err, "replay: write record")
		return
	}
	if err := e.w.WriteByte('\n'); err != nil {
		e.err = errors.Wrap(err, "replay: write newline")
	}
}

// Flush flushes buffered output and returns the first error encountered
// by any prior Emit call, if any.
func (e *JSONLEmitter) Flush() error {
	if err := e.w.Flush(); err != nil {
		return errors.Wrap(err, "replay: flush")
	}
	return e.err
}
