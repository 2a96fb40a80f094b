// crossroad is a terminal "cross the road" arcade game: hop up through the
// traffic and get as far as you can before the clock runs out.
//
// Usage:
//
//	crossroad                - Play the standard board
//	crossroad list           - List board variants
//	crossroad config         - Print the built-in configuration
//
// Flags:
//
//	--variant <id>      - Board variant (default: crossroad)
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
//	--config <path>     - Path to a custom YAML or TOML config
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible traffic
//	--sound             - Play sound cues (default: true)
//	--log-file <path>   - Write a debug log to this file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-crossroad/internal/games/crossroad"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossroad",
	Short: "Crossroad - cross the road in your terminal",
	Long: `Crossroad is a terminal arcade game. Hop forward lane by lane,
dodge the cars and reach the furthest row before time runs out.

Controls:
  W/Up, S/Down, A/Left, D/Right - Move one tile
  Enter                         - Start / play again
  R                             - Restart
  P/Esc                         - Pause
  H/F1                          - Toggle hitboxes
  Q/Ctrl+C                      - Quit

Difficulty options:
  easy   - Slower traffic growth and ten extra seconds
  normal - Traffic speeds up with every new row
  hard   - Faster start, steeper growth, busier roads
  fixed  - Traffic speed never changes

Examples:
  crossroad
  crossroad --variant crossroad_classic
  crossroad --difficulty hard --seed 42
  crossroad --config ./my-crossroad.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
