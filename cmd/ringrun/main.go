// ringrun is a side-scrolling ring collector for the terminal.
//
// Usage:
//
//	ringrun play        - Play in this terminal
//	ringrun serve       - Start SSH server for remote play
//	ringrun simulate    - Run the simulation headless and report
//	ringrun config      - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible ring placement
//	--config <path>       - Use a custom runner.yaml
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ring-runner/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ringrun",
	Short: "Ring Runner - collect rings on a rolling landscape",
	Long: `Ring Runner is a side-scrolling terminal game. The runner stays put while
the landscape rolls by; jump to grab the rings streaming in from the right.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  simulate  - Run headless and report the score
  config    - Print the effective configuration

Examples:
  ringrun play
  ringrun play --seed 42 --mute
  ringrun serve --ssh :2222
  ringrun simulate --ticks 3600
  ringrun config > ~/.ringrun/configs/runner.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the CLI logger at the requested level.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("bad --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig loads the runner configuration from --config or the search path.
func loadConfig() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
