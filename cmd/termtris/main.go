// termtris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	termtris                 - Play (same as "termtris play")
//	termtris play            - Play a game
//	termtris serve           - Start SSH server for remote play
//	termtris history         - Browse recorded games
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.termtris/history.db)
//	--config <path>      - Use a custom tetris.yaml
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error (default: info)
//
// Every global flag can also be set with a TERMTRIS_* environment variable.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtris/internal/config"
	// Import games to register them
	_ "github.com/vovakirdan/termtris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string

	// env supplies flag defaults; envErr is reported once a command runs.
	env, envErr = config.LoadEnv()

	// closeLog is replaced by setupLogging once a command runs.
	closeLog = func() error { return nil }
)

func main() {
	err := rootCmd.Execute()
	if cerr := closeLog(); cerr != nil {
		fmt.Fprintln(os.Stderr, "close log file:", cerr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termtris",
	Short: "termtris - falling blocks in your terminal",
	Long: `termtris is a falling-block puzzle game for the terminal.

Pieces fall on their own; slide and rotate them so they complete rows.
Complete rows disappear. The game ends when a new piece has no room.

Available commands:
  play     - Play a game (default)
  serve    - Start SSH server for remote play
  history  - Browse recorded games

Examples:
  termtris
  termtris play --seed 42
  termtris serve --ssh :2222
  termtris history`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if envErr != nil {
			return envErr
		}
		cleanup, err := setupLogging(cmd)
		if err != nil {
			return err
		}
		closeLog = cleanup
		return nil
	},
	SilenceUsage: true,
	Run:          runPlay,
}

func init() {
	dbPath := env.DB
	if dbPath == "" {
		dbPath = filepath.Join(config.DataDir(), "history.db")
	}

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", env.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", env.Seed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", dbPath, "Path to history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", env.Config, "Path to custom tetris.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", env.LogFile, "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", env.LogLevel, "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}
