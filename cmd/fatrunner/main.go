// fatrunner is a lane runner for the terminal: food falls down five lanes,
// eating it heals, and a full health bar ends the run.
//
// Usage:
//
//	fatrunner list              - List registered games
//	fatrunner play              - Play Fat Runner
//	fatrunner menu              - Pick a difficulty, play, repeat
//	fatrunner serve             - Start SSH server for remote play
//	fatrunner simulate          - Run a headless session and print a summary
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/fat-runner/internal/games/fatrunner"
)

// defaultGame is the game played when none is named.
const defaultGame = "fatrunner"

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fatrunner",
	Short: "Fat Runner - dodge the food in your terminal",
	Long: `Fat Runner is a five-lane runner played in the terminal.

Food falls down the lanes. Every bite heals you, your health drains a
little every tick, and the run ends when the health bar fills up. Dodge
through the gap in each wave for as long as you can.

Available commands:
  list      - Show registered games
  play      - Play directly
  menu      - Difficulty picker and session scoreboard
  serve     - Start SSH server for remote play
  simulate  - Headless run for tuning configs

Examples:
  fatrunner play
  fatrunner play --difficulty hard --sound
  fatrunner menu
  fatrunner serve --ssh :2222
  fatrunner simulate --ticks 6000 --seed 7 --autopilot`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}
