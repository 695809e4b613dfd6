package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var (
	flagSize  int
	flagLevel int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play 2048",
	Long: `Start playing 2048. Without a mode, a menu lets you pick one,
choose a campaign level or browse the scoreboard.

Modes:
  2048           - Classic: reach the 2048 tile
  2048_campaign  - Ten levels with rising target tiles
  2048_endless   - No winning tile, play until the board is stuck

Controls:
  Arrows/WASD/HJKL  - Tilt the board
  P/Esc             - Pause
  R                 - Restart
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options (odds of a 4 instead of a 2):
  easy   - Fewer 4s, slow ramp
  normal - Default ramp with score
  hard   - More 4s from the start
  fixed  - No ramp, config odds only

Examples:
  t2048 play
  t2048 play 2048 --size 5
  t2048 play 2048_campaign --level 4
  t2048 play 2048_endless --difficulty hard --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, fmt.Sprintf("Board size 2-%d (0 = config default)", config.MaxBoardSize))
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start at (1-based)")
}

func runPlay(_ *cobra.Command, args []string) error {
	if flagSize != 0 && (flagSize < 2 || flagSize > config.MaxBoardSize) {
		return fmt.Errorf("--size must be between 2 and %d, got %d", config.MaxBoardSize, flagSize)
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  flagFPS,
		Seed:      flagSeed,
		BoardSize: flagSize,
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger := log.Default()
	if len(args) == 0 {
		return tui.RunSession(store, cfg, gameCfg, logger)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 't2048 list' to see available modes", gameID)
	}
	game, err := tui.NewGame(gameID, flagLevel, gameCfg, logger)
	if err != nil {
		return err
	}
	return tui.Run(game, store, cfg, logger)
}
