package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/valentine-arcade/internal/platform/tui"
	"github.com/vovakirdan/valentine-arcade/internal/storage"
)

var (
	flagResponsesTUI   bool
	flagResponsesLimit int
	flagResponsesClear bool
)

var responsesCmd = &cobra.Command{
	Use:   "responses",
	Short: "Show collected answers",
	Long: `Show the answers stored by the collector.

Examples:
  valentine responses
  valentine responses --limit 20
  valentine responses --tui
  valentine responses --clear`,
	Args: cobra.NoArgs,
	RunE: runResponses,
}

func init() {
	responsesCmd.Flags().BoolVar(&flagResponsesTUI, "tui", false, "Show interactive table")
	responsesCmd.Flags().IntVar(&flagResponsesLimit, "limit", 50, "Number of responses to show")
	responsesCmd.Flags().BoolVar(&flagResponsesClear, "clear", false, "Delete all stored responses")
	responsesCmd.Flags().StringVar(&flagCollectDB, "db", "", "Responses database (default ~/.valentine/responses.db)")
}

func runResponses(_ *cobra.Command, _ []string) error {
	cfg, err := collectConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagResponsesClear {
		if err := store.ClearResponses(); err != nil {
			return err
		}
		fmt.Println("All responses cleared.")
		return nil
	}

	if flagResponsesTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunResponses(store, flagResponsesLimit, width, height)
	}

	counts, err := store.AnswerCounts()
	if err != nil {
		return err
	}
	responses, err := store.RecentResponses(flagResponsesLimit)
	if err != nil {
		return err
	}

	if len(responses) == 0 {
		fmt.Println("No responses recorded yet.")
		return nil
	}

	fmt.Println("Answers:")
	for _, c := range counts {
		fmt.Printf("  %-8s %5d  (last %s)\n", c.Answer, c.Count, c.Last.Format("Jan 02 15:04"))
	}
	fmt.Println()

	fmt.Printf("  %-6s  %-8s  %-16s  %s\n", "#", "Answer", "From", "Date")
	fmt.Printf("  %-6s  %-8s  %-16s  %s\n", "-", "------", "----", "----")
	for _, r := range responses {
		from := r.RemoteAddr
		if from == "" {
			from = "-"
		}
		fmt.Printf("  %-6d  %-8s  %-16s  %s\n", r.ID, r.Answer, from, r.CreatedAt.Format("Jan 02 15:04"))
	}
	return nil
}
