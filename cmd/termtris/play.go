package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/games/tetris"
	"github.com/vovakirdan/termtris/internal/platform/tui"
	"github.com/vovakirdan/termtris/internal/registry"
	"github.com/vovakirdan/termtris/internal/storage"
)

var flagGravity time.Duration

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game in the current terminal.

Controls:
  Left/H/A        - Move left
  Right/L/D       - Move right
  Down/J/S        - Move down one row
  Up/K/W/Z        - Rotate counterclockwise
  X               - Rotate clockwise
  P/Esc           - Pause
  R               - Restart (after game over)
  Ctrl+S          - Save a text screenshot
  Q/Ctrl+C        - Quit

Finished games are recorded in the history database.

Examples:
  termtris play
  termtris play --seed 42
  termtris play --gravity 500ms
  termtris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().DurationVar(&flagGravity, "gravity", 0, "Gravity interval (0 = from config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
	tetris.SetConfigPath(flagConfig)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	gravity := gameCfg.Gravity.Interval()
	if flagGravity > 0 {
		gravity = flagGravity
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Gravity:  gravity,
	}

	game, err := registry.Create(tetris.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		exit(1)
	}

	// Open history storage
	var recorder tui.SessionRecorder
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open history database", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		// Continue without storage - game still works
	} else {
		recorder = store
	}

	runErr := tui.Run(game, recorder, cfg, tui.WithTheme(tui.NewTheme(gameCfg.Theme)))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		exit(1)
	}

	st := game.State()
	fmt.Printf("%s  Pieces: %d  Rows: %d\n", game.Title(), st.Pieces, st.RowsCleared)
}
