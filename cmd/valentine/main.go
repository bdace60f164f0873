// valentine is a four-scene terminal game that ends by asking the player a
// question and posting the answer to a form endpoint.
//
// Usage:
//
//	valentine play             - Play locally, starting at the first scene
//	valentine serve            - Start SSH server for remote play
//	valentine collect          - Run the form endpoint that stores answers
//	valentine responses        - Show stored answers
//	valentine scenes           - List scenes in play order
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible layouts
//	--config <path>       - Custom scenes YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/valentine-arcade/internal/games/jigsaw"
	_ "github.com/vovakirdan/valentine-arcade/internal/games/memory"
	_ "github.com/vovakirdan/valentine-arcade/internal/games/tomato"
	_ "github.com/vovakirdan/valentine-arcade/internal/games/valentine"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "valentine",
	Short: "Valentine - four little games and one question",
	Long: `Valentine is a terminal game in four scenes: Memory Match, Jigsaw,
Tomato Toss and a final question. Finishing a scene shows a "Play Next"
button that hands off to the next one.

Available commands:
  play       - Play in this terminal
  serve      - Start SSH server for remote play
  collect    - Run the answer collector
  responses  - Show collected answers
  scenes     - List scenes in play order

Examples:
  valentine play
  valentine play --scene tomato --difficulty easy
  valentine serve --ssh :2222
  valentine collect --addr :8087
  valentine responses --tui`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom scenes YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(responsesCmd)
	rootCmd.AddCommand(scenesCmd)
}
