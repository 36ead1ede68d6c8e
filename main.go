// crawler is a terminal dungeon crawler: a random walk lays out a chain of
// rooms and the player walks it, fighting, drinking potions and collecting
// power-ups on the way.
//
// Usage:
//
//	crawler [play] [--config crawler.yaml] [--seed 1z141z3]
//	crawler generate --seed abc
//	crawler battle --enemy-health 5 --enemy-attack 2 --foresight
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"room-crawler/internal/config"
	"room-crawler/internal/logging"
)

var (
	configPath string
	verbose    bool
	seedFlag   string
	logFile    string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "crawler",
	Short: "Walk a randomly generated chain of rooms",
	Long: `crawler builds a dungeon as a random walk of rooms on a small grid.
Each room may hold a battle, a potion or a power-up.

Run without a subcommand to play in this terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		opts := logging.Options{Verbose: verbose}
		switch {
		case logFile != "":
			opts.OutputPaths = []string{logFile}
		case cmd.Name() == "play" || cmd.Name() == "crawler":
			// The console owns the terminal; log only when asked to.
			logger = zap.NewNop()
			return nil
		}
		var err error
		logger, err = logging.New(opts)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config laid over the built-in defaults")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging, including battle rounds")
	rootCmd.PersistentFlags().StringVarP(&seedFlag, "seed", "s", "", "Dungeon seed in base36 (random when empty)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(battleCmd)
}

// loadConfig reads --config over the defaults and applies --seed.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, err
		}
	}
	if seedFlag != "" {
		cfg.Seed = seedFlag
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
