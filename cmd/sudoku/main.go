// Package main provides the sudoku CLI: a 9x9 Sudoku solver with a
// SQLite-backed puzzle library. Puzzles are solved either by logical
// deduction strategies or by exhaustive backtracking.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/genghk79/Sudoku-Solver-2/internal/paths"
)

// version is the CLI version, overridable at build time via -ldflags.
var version = "1.0.0"

var (
	// Global flag values.
	flagConfigDir string
	flagDataDir   string
	flagVerbose   bool
	jsonOutput    bool

	// Initialized by initApp before any command runs.
	cfg     *viper.Viper
	logger  *zap.Logger
	dataDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Sudoku solves 9x9 puzzles by strategies or backtracking",
	Long: `Sudoku is a 9x9 puzzle solver with a local puzzle library.

Puzzles are plain text: nine lines of nine comma-separated digits, with 0
marking a blank cell. Imported puzzles are kept in a SQLite library so the
previous puzzle can be reused without naming it.

Two solving engines are available: "strategies" applies logical deduction
rules (singles, pairs, triplets, pointing sets) and never guesses;
"backtrack" searches exhaustively and always finds a solution if one exists.`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory holding the puzzle library")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(deleteCmd)
}

// initApp resolves directories, loads config.yaml, and builds the logger.
// Runs before every command.
func initApp(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	cfg, err = loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dataDir, err = paths.ResolveDataDir(flagDataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	logger, err = buildLogger(cfg, flagVerbose)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	return nil
}
