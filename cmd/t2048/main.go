// t2048 is the 2048 sliding tile game for the terminal.
//
// Usage:
//
//	t2048 play [mode]        - Play a mode, or pick one from the menu
//	t2048 list               - List available modes
//	t2048 scores <mode>      - Show high scores for a mode
//	t2048 serve              - Start SSH server for remote play
//	t2048 config             - Print the effective game config
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 30)
//	--seed <value>         - Set RNG seed for reproducible games
//	--db <path>            - Set database path (default: ~/.t2048/scores.db)
//	--config <path>        - Use a custom game config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--debug                - Log at debug level
//	--log-file <path>      - Log destination (default: ~/.t2048/t2048.log)
//
// Flags take precedence over the T2048_* environment variables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register game modes
	_ "github.com/vovakirdan/tui-2048/internal/games/t2048"
)

const defaultLogFile = "~/.t2048/t2048.log"

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		closeLog()
		os.Exit(1)
	}
	closeLog()
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `2048 is the sliding tile puzzle for the terminal.

Tilt the board to slide every tile as far as it goes. Two equal tiles
that collide merge into one, adding its value to your score. A new tile
appears after every move that changed the board.

Available commands:
  play     - Play a mode directly, or pick one from the menu
  list     - Show all modes
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective game config

Examples:
  t2048 play
  t2048 play 2048_endless --size 5
  t2048 scores 2048 --interactive
  t2048 serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "~/.t2048/scores.db", "Path to scores database")
	flags.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.BoolVar(&flagDebug, "debug", false, "Log at debug level")
	flags.StringVar(&flagLogFile, "log-file", defaultLogFile, "Path to log file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
