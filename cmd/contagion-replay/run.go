package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kentwait/issun-mechanics/config"
	"github.com/kentwait/issun-mechanics/contagion"
	"github.com/kentwait/issun-mechanics/contagion/presets"
	"github.com/kentwait/issun-mechanics/logging"
	"github.com/kentwait/issun-mechanics/replay"
	"github.com/kentwait/issun-mechanics/streamrng"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Args:  cobra.NoArgs,
	Short: "Run a scenario for a fixed number of ticks",
	RunE:  runScenario,
}

func init() {
	runCmd.Flags().Int("ticks", 20, "number of ticks to simulate")
	runCmd.Flags().Int64("seed", 1, "deterministic RNG seed")
	runCmd.Flags().String("sqlite", "", "write events to this SQLite database")
	runCmd.Flags().String("jsonl", "", "write events to this JSON Lines file (use '-' for stdout)")
}

func runScenario(cmd *cobra.Command, args []string) error {
	if cfgFile == "" {
		return fmt.Errorf("--scenario flag is required")
	}
	ticks, _ := cmd.Flags().GetInt("ticks")
	seed, _ := cmd.Flags().GetInt64("seed")
	sqlitePath, _ := cmd.Flags().GetString("sqlite")
	jsonlPath, _ := cmd.Flags().GetString("jsonl")

	level := logging.LevelInfo
	if verbose {
		level = logging.LevelDebug
	}
	logger := logging.New(logging.Config{Level: level, Format: logging.FormatText})

	sf, err := config.Load(cfgFile)
	if err != nil {
		logger.Error("failed to load scenario", err, nil)
		return err
	}
	g, err := sf.Graph()
	if err != nil {
		logger.Error("failed to build graph", err, nil)
		return err
	}
	contagions, err := sf.Contagions()
	if err != nil {
		logger.Error("failed to build seed contagions", err, nil)
		return err
	}

	state := contagion.NewState()
	for _, c := range contagions {
		state.Add(c)
	}
	logger.Info("scenario loaded", logging.Fields("nodes", g.NodeCount(), "edges", g.EdgeCount(), "contagions", len(contagions)))

	var sinks []emitterCloser
	if sqlitePath != "" {
		s, err := replay.OpenSQLiteEmitter(sqlitePath)
		if err != nil {
			return err
		}
		sinks = append(sinks, emitterCloser{emit: s.Emit, close: s.Close})
	}
	if jsonlPath != "" {
		out := os.Stdout
		if jsonlPath != "-" {
			f, err := os.Create(jsonlPath)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		j := replay.NewJSONLEmitter(out)
		sinks = append(sinks, emitterCloser{emit: j.Emit, close: j.Flush})
	}
	emitter := &loggingEmitter{logger: logger, sinks: sinks}
	defer emitter.closeAll()

	cfg := sf.Config()
	rng := streamrng.New(seed)
	var mechanic presets.ClassicOutbreak

	for tick := uint64(1); tick <= uint64(ticks); tick++ {
		mechanic.Step(cfg, state, contagion.Input{Tick: tick, Graph: g, RNG: rng}, emitter)
	}
	logger.Info("run complete", logging.Fields("ticks", ticks, "live_contagions", len(state.Contagions())))
	return nil
}

type emitterCloser struct {
	emit  func(contagion.Event)
	close func() error
}

// loggingEmitter fans every event out to the structured logger and to
// every configured replay sink.
type loggingEmitter struct {
	logger *logging.Logger
	sinks  []emitterCloser
}

func (e *loggingEmitter) Emit(event contagion.Event) {
	e.logger.Debug(fmt.Sprintf("%T", event), logging.Fields("event", event))
	for _, s := range e.sinks {
		s.emit(event)
	}
}

func (e *loggingEmitter) closeAll() {
	for _, s := range e.sinks {
		if err := s.close(); err != nil {
			e.logger.Error("failed to close replay sink", err, nil)
		}
	}
}
