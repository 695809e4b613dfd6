package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top scores for the specified mode.

Examples:
  t2048 scores 2048
  t2048 scores 2048_endless --limit 20
  t2048 scores 2048 --interactive
  t2048 scores 2048_campaign --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the scoreboard browser")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the mode")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of scores to show (0 = all)")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown mode %q, run 't2048 list' to see available modes", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", info.Title)
		return nil

	case flagInteractive:
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width, height = 80, 24
		}
		_, err = tui.RunScoreboard(store, width, height, gameID)
		return err
	}

	return printScores(store, info)
}

func printScores(store *storage.Store, info registry.GameInfo) error {
	var scores []storage.ScoreEntry
	var err error
	if flagLimit <= 0 {
		scores, err = store.AllScores(info.ID)
	} else {
		scores, err = store.TopScores(info.ID, flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play %s' to set the first high score!\n", info.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %-3s  %s\n", "Rank", "Score", "Tile", "Size", "Won", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %-3s  %s\n", "----", "-----", "----", "----", "---", "----")
	for i, e := range scores {
		won := ""
		if e.Won {
			won = "yes"
		}
		size := fmt.Sprintf("%dx%d", e.BoardSize, e.BoardSize)
		fmt.Printf("  %-4d  %-8d  %-6d  %-5s  %-3s  %s\n",
			i+1, e.Score, e.MaxTile, size, won, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore(info.ID)
	if err != nil {
		return err
	}
	stats, err := store.GetGameStats(info.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Wins: %d  Best tile: %d  Average: %.0f\n",
		best, stats.GamesCount, stats.Wins, stats.BestTile, stats.AvgScore)
	return nil
}
