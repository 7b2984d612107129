package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-solitaire/internal/registry"
	"github.com/vovakirdan/tui-solitaire/internal/storage"
)

var (
	flagClear  bool
	flagRecent int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores and win statistics",
	Long: `Display the top 10 winning scores and the win record for a variant,
or a summary of every variant when none is given.

Examples:
  solitaire scores
  solitaire scores klondike
  solitaire scores klondike3 --recent 5
  solitaire scores klondike --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and results for the variant")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 0, "Also list this many recent games")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a variant")
			os.Exit(1)
		}
		printSummary(store)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'solitaire list' to see available variants.")
		os.Exit(1)
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Scores for %s cleared.\n", gameID)
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'solitaire play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	stats, err := store.GetWinStats(gameID)
	if err == nil && stats.Played > 0 {
		fmt.Println()
		fmt.Printf("Played: %d  Won: %d  Win rate: %.0f%%\n", stats.Played, stats.Won, stats.WinRate()*100)
		if stats.Won > 0 {
			fmt.Printf("Best time: %s  Fewest moves: %d\n", formatClock(stats.BestTime), stats.FewestMoves)
		}
	}

	if gs, gsErr := store.GetGameStats(gameID); gsErr == nil && gs.GamesCount > 0 {
		fmt.Printf("Average winning score: %.0f  Last win: %s\n",
			gs.AvgScore, gs.LastPlayed.Format("2006-01-02 15:04"))
	}

	if flagRecent > 0 {
		printRecent(store, gameID, flagRecent)
	}
}

func printSummary(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Statistics")
	fmt.Println()
	fmt.Printf("  %-10s  %-6s  %-6s  %-8s  %s\n", "Variant", "Played", "Won", "Win rate", "Best")
	fmt.Printf("  %-10s  %-6s  %-6s  %-8s  %s\n", "-------", "------", "---", "--------", "----")

	for _, g := range registry.List() {
		high := 0
		if s, ok := all[g.ID]; ok {
			high = s.HighScore
		}
		stats, statsErr := store.GetWinStats(g.ID)
		if statsErr != nil {
			continue
		}
		fmt.Printf("  %-10s  %-6d  %-6d  %-8s  %d\n",
			g.ID, stats.Played, stats.Won, fmt.Sprintf("%.0f%%", stats.WinRate()*100), high)
	}

	if flagRecent > 0 {
		printRecent(store, "", flagRecent)
	}
}

func printRecent(store *storage.Store, variant string, limit int) {
	results, err := store.RecentResults(variant, limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving recent games: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("Recent games:")
	if len(results) == 0 {
		fmt.Println("  none")
		return
	}
	for _, r := range results {
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		fmt.Printf("  %s  %-9s  %-4s  score %-5d  moves %-4d  %s  seed %d\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Variant, outcome,
			r.Score, r.Moves, formatClock(r.Duration), r.Seed)
	}
}

// formatClock renders a duration as mm:ss.
func formatClock(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
