// Command contagion-replay loads a scenario TOML file, runs the
// contagion mechanic for a fixed number of ticks, and writes every event
// it emits to a replay sink. Grounded on jhkimqd-chaos-utils's
// cmd/chaos-runner (a cobra root command with persistent --verbose/
// --config flags delegating to one subcommand per file).
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "contagion-replay",
	Short:   "Deterministically replay a contagion mechanic scenario",
	Long:    "contagion-replay runs the contagion mechanic's Step over a scenario loaded from TOML, tick by tick, and writes the events it emits to a SQLite or JSONL replay sink.",
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "scenario", "", "path to a scenario TOML file (required)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
