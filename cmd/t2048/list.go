package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long: `Shows every registered 2048 mode, with games played and best score
when the scores database is available.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	stats := map[string]*storage.GameStats{}
	if store, err := storage.Open(flagDBPath); err == nil {
		if all, err := store.GetAllGamesStats(); err == nil {
			stats = all
		}
		store.Close()
	}

	maxIDLen, maxTitleLen := len("ID"), len("Title")
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Println("Available modes:")
	fmt.Println()
	fmt.Printf("  %-*s  %-*s  %6s  %7s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Played", "Best", "Description")
	fmt.Printf("  %-*s  %-*s  %6s  %7s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------", "----", "-----------")
	for _, g := range games {
		played, best := 0, 0
		if s, ok := stats[g.ID]; ok {
			played, best = s.GamesCount, s.HighScore
		}
		fmt.Printf("  %-*s  %-*s  %6d  %7d  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, played, best, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play <id>' to play a mode.")
}
