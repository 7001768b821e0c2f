package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/games/tetris"
	"github.com/vovakirdan/termtris/internal/platform/tui"
	"github.com/vovakirdan/termtris/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded games",
	Long: `Show finished games from the history database.

By default opens an interactive table. Use --plain to print the most
recent games instead.

Examples:
  termtris history
  termtris history --plain --limit 5
  termtris history --db ./history.db`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print instead of opening the interactive table")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to print with --plain")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		exit(1)
	}
	defer store.Close()

	if flagPlain {
		if err := printHistory(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exit(1)
		}
		return
	}

	gameCfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, tetris.ID, tui.NewTheme(gameCfg.Theme), width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

// printHistory writes the most recent sessions to stdout.
func printHistory(store *storage.Store) error {
	sessions, err := store.RecentSessions(flagLimit)
	if err != nil {
		return err
	}
	stats, err := store.Stats(tetris.ID)
	if err != nil {
		return err
	}

	fmt.Println("Play History")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Run 'termtris play' and finish a game to see it here.")
		return nil
	}

	fmt.Printf("  %-5s  %-12s  %-6s  %-5s  %-6s  %-9s  %s\n", "ID", "Player", "Pieces", "Rows", "Time", "End", "Date")
	fmt.Printf("  %-5s  %-12s  %-6s  %-5s  %-6s  %-9s  %s\n", "--", "------", "------", "----", "----", "---", "----")
	for _, s := range sessions {
		secs := int(s.Duration.Seconds())
		fmt.Printf("  %-5d  %-12s  %-6d  %-5d  %-6s  %-9s  %s\n",
			s.ID,
			s.Player,
			s.Pieces,
			s.RowsCleared,
			fmt.Sprintf("%d:%02d", secs/60, secs%60),
			strings.ReplaceAll(s.EndReason, "_", " "),
			s.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	fmt.Printf("Games: %d  Best: %d rows  Total: %d rows\n", stats.Sessions, stats.BestRows, stats.TotalRows)
	return nil
}
